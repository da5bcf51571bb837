// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the semantic analyzer and the code generator.
//
// Every node kind is a concrete struct; Statement and Expression are
// closed marker interfaces over the fixed set of variants named in the
// language's grammar: their unexported marker methods keep types outside
// this package from implementing them, so a consumer can switch over the
// concrete types. The Go compiler does not check such a switch for a
// missing case.
package ast

import (
	"strings"

	"github.com/arabicc/arabicc/internal/token"
)

// Node is implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the token the node is
	// built from, mainly useful for debugging and test failure messages.
	TokenLiteral() string
	Pos() token.Position
	String() string
}

// Statement is implemented by every statement-level node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression-level node.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered sequence of function definitions.
type Program struct {
	Functions []*Function
}

func (p *Program) Pos() token.Position {
	if len(p.Functions) > 0 {
		return p.Functions[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) TokenLiteral() string {
	if len(p.Functions) > 0 {
		return p.Functions[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, fn := range p.Functions {
		sb.WriteString(fn.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Function is a top-level function definition: name, ordered parameter
// names, and a body block.
type Function struct {
	Token  token.Token // the 'دالة' (function) keyword token
	Name   string
	Params []string
	Body   *Block
}

func (f *Function) Pos() token.Position  { return f.Token.Pos }
func (f *Function) TokenLiteral() string { return f.Token.Literal }

func (f *Function) String() string {
	var sb strings.Builder
	sb.WriteString("function ")
	sb.WriteString(f.Name)
	sb.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p)
	}
	sb.WriteString(") ")
	sb.WriteString(f.Body.String())
	return sb.String()
}

// Block is an ordered sequence of statements delimited by `{` `}`.
type Block struct {
	LBrace     token.Token
	Statements []Statement
}

func (b *Block) Pos() token.Position  { return b.LBrace.Pos }
func (b *Block) TokenLiteral() string { return b.LBrace.Literal }

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, s := range b.Statements {
		sb.WriteString(s.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}
