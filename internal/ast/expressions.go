package ast

import (
	"strconv"
	"strings"

	"github.com/arabicc/arabicc/internal/token"
)

// Number is an integer literal.
type Number struct {
	Token token.Token
	Value int64
}

func (*Number) expressionNode()        {}
func (n *Number) Pos() token.Position  { return n.Token.Pos }
func (n *Number) TokenLiteral() string { return n.Token.Literal }
func (n *Number) String() string       { return strconv.FormatInt(n.Value, 10) }

// Ident is a reference to a variable or parameter by name.
type Ident struct {
	Token token.Token
	Name  string
}

func (*Ident) expressionNode()        {}
func (i *Ident) Pos() token.Position  { return i.Token.Pos }
func (i *Ident) TokenLiteral() string { return i.Token.Literal }
func (i *Ident) String() string       { return i.Name }

// Binary is a two-operand operation: left op right. Op is one of
// "+" "-" "*" "/" "==" "!=" ">" "<" ">=" "<=".
type Binary struct {
	Token token.Token // the operator token
	Left  Expression
	Op    string
	Right Expression
}

func (*Binary) expressionNode()        {}
func (b *Binary) Pos() token.Position  { return b.Token.Pos }
func (b *Binary) TokenLiteral() string { return b.Token.Literal }
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}

// Unary is a single-operand prefix operation. Op is "-" (the only unary
// operator the grammar accepts; unary negation stacks, so --x is valid).
type Unary struct {
	Token   token.Token // the operator token
	Op      string
	Operand Expression
}

func (*Unary) expressionNode()        {}
func (u *Unary) Pos() token.Position  { return u.Token.Pos }
func (u *Unary) TokenLiteral() string { return u.Token.Literal }
func (u *Unary) String() string {
	return "(" + u.Op + u.Operand.String() + ")"
}

// FunctionCall invokes a named function with ordered argument expressions.
// It implements both Expression (used within a larger expression) and
// Statement (used bare as a call statement), matching the grammar's
// single production for "name(args)" in both positions.
type FunctionCall struct {
	Token token.Token // the identifier token naming the callee
	Name  string
	Args  []Expression
}

func (*FunctionCall) expressionNode()        {}
func (*FunctionCall) statementNode()         {}
func (c *FunctionCall) Pos() token.Position  { return c.Token.Pos }
func (c *FunctionCall) TokenLiteral() string { return c.Token.Literal }
func (c *FunctionCall) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
