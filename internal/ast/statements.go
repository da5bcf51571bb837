package ast

import (
	"strings"

	"github.com/arabicc/arabicc/internal/token"
)

// VarDecl declares a new local variable with an initializing expression:
// متغير name = value;
type VarDecl struct {
	Token token.Token // the 'متغير' keyword token
	Name  string
	Value Expression
}

func (*VarDecl) statementNode()         {}
func (v *VarDecl) Pos() token.Position  { return v.Token.Pos }
func (v *VarDecl) TokenLiteral() string { return v.Token.Literal }
func (v *VarDecl) String() string {
	return "var " + v.Name + " = " + v.Value.String() + ";"
}

// Assign assigns to an already-declared variable: name = value;
type Assign struct {
	Token token.Token // the identifier token being assigned to
	Name  string
	Value Expression
}

func (*Assign) statementNode()         {}
func (a *Assign) Pos() token.Position  { return a.Token.Pos }
func (a *Assign) TokenLiteral() string { return a.Token.Literal }
func (a *Assign) String() string {
	return a.Name + " = " + a.Value.String() + ";"
}

// If is a conditional with an optional else branch. There is no dangling-else
// ambiguity: the grammar attaches a trailing والا directly to the preceding
// اذا at the same nesting level.
type If struct {
	Token     token.Token // the 'اذا' keyword token
	Condition Expression
	Then      *Block
	Else      *Block // nil when there is no والا clause
}

func (*If) statementNode()         {}
func (i *If) Pos() token.Position  { return i.Token.Pos }
func (i *If) TokenLiteral() string { return i.Token.Literal }
func (i *If) String() string {
	var sb strings.Builder
	sb.WriteString("if (")
	sb.WriteString(i.Condition.String())
	sb.WriteString(") ")
	sb.WriteString(i.Then.String())
	if i.Else != nil {
		sb.WriteString(" else ")
		sb.WriteString(i.Else.String())
	}
	return sb.String()
}

// While is a pre-tested loop: بينما (condition) { body }
type While struct {
	Token     token.Token // the 'بينما' keyword token
	Condition Expression
	Body      *Block
}

func (*While) statementNode()         {}
func (w *While) Pos() token.Position  { return w.Token.Pos }
func (w *While) TokenLiteral() string { return w.Token.Literal }
func (w *While) String() string {
	return "while (" + w.Condition.String() + ") " + w.Body.String()
}

// Return exits the enclosing function with a value: ارجع value;
type Return struct {
	Token token.Token // the 'ارجع' keyword token
	Value Expression
}

func (*Return) statementNode()         {}
func (r *Return) Pos() token.Position  { return r.Token.Pos }
func (r *Return) TokenLiteral() string { return r.Token.Literal }
func (r *Return) String() string {
	return "return " + r.Value.String() + ";"
}

// Print writes a single integer value followed by a newline: اطبع(value);
type Print struct {
	Token token.Token // the 'اطبع' keyword token
	Value Expression
}

func (*Print) statementNode()         {}
func (p *Print) Pos() token.Position  { return p.Token.Pos }
func (p *Print) TokenLiteral() string { return p.Token.Literal }
func (p *Print) String() string {
	return "print(" + p.Value.String() + ");"
}
