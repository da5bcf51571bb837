package parser

import (
	"strconv"

	"github.com/arabicc/arabicc/internal/ast"
	"github.com/arabicc/arabicc/internal/token"
)

var comparisonOps = map[token.Kind]string{
	token.EQ: "==", token.NE: "!=",
	token.GT: ">", token.LT: "<",
	token.GE: ">=", token.LE: "<=",
}

var additiveOps = map[token.Kind]string{
	token.PLUS: "+", token.MINUS: "-",
}

var multiplicativeOps = map[token.Kind]string{
	token.MULTIPLY: "*", token.DIVIDE: "/",
}

// parseExpression is the grammar's entry point: Expr := Comparison.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseComparison()
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := comparisonOps[p.curToken.Kind]
		if !ok {
			return left, nil
		}
		opTok := p.curToken
		p.nextToken()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: opTok, Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := additiveOps[p.curToken.Kind]
		if !ok {
			return left, nil
		}
		opTok := p.curToken
		p.nextToken()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: opTok, Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := multiplicativeOps[p.curToken.Kind]
		if !ok {
			return left, nil
		}
		opTok := p.curToken
		p.nextToken()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: opTok, Left: left, Op: op, Right: right}
	}
}

// parseUnary handles right-associative (stacking) unary minus: --x parses
// as Unary{-, Unary{-, Ident{x}}}.
func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.curIs(token.MINUS) {
		opTok := p.curToken
		p.nextToken()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Token: opTok, Op: "-", Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.curToken.Kind {
	case token.NUMBER:
		tok := p.curToken
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, newError(tok.Pos, "invalid integer literal "+tok.Literal)
		}
		p.nextToken()
		return &ast.Number{Token: tok, Value: value}, nil

	case token.IDENT:
		if p.peekIs(token.LPAREN) {
			return p.parseFunctionCall()
		}
		tok := p.curToken
		p.nextToken()
		return &ast.Ident{Token: tok, Name: tok.Literal}, nil

	case token.LPAREN:
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, newError(p.curToken.Pos, "unexpected token in expression: "+p.curToken.Kind.String())
	}
}

func (p *Parser) parseFunctionCall() (*ast.FunctionCall, error) {
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var args []ast.Expression
	if !p.curIs(token.RPAREN) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.curIs(token.COMMA) {
			p.nextToken()
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Token: nameTok, Name: nameTok.Literal, Args: args}, nil
}
