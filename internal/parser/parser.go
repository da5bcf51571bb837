// Package parser builds an ast.Program from a token stream using
// recursive descent with a precedence-climbing expression grammar. The
// parser holds curToken/peekToken the way a classic hand-written
// recursive-descent parser does; there is exactly one token of
// lookahead anywhere in the grammar.
//
// The parser never recovers from a syntax error: the first one
// encountered is returned immediately and parsing stops.
package parser

import (
	"github.com/arabicc/arabicc/internal/ast"
	"github.com/arabicc/arabicc/internal/token"
)

// Parser consumes a pre-lexed token stream (already terminated by an
// EOF token) and produces an *ast.Program.
type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token
}

// New creates a Parser over tokens, which must end with a token.EOF.
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}
	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	} else {
		p.peekToken = p.tokens[len(p.tokens)-1] // EOF, held in place
	}
}

func (p *Parser) curIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peekToken.Kind == k }

// expect advances past curToken if it has kind k, otherwise returns a
// parse error naming what was expected.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.curIs(k) {
		return token.Token{}, newError(p.curToken.Pos,
			"expected "+k.String()+", got "+p.curToken.Kind.String())
	}
	tok := p.curToken
	p.nextToken()
	return tok, nil
}

// Parse parses the entire token stream into a Program: zero or more
// function definitions followed by EOF.
func Parse(tokens []token.Token) (*ast.Program, error) {
	p := New(tokens)
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		prog.Functions = append(prog.Functions, fn)
	}
	return prog, nil
}

func (p *Parser) parseFunction() (*ast.Function, error) {
	fnTok, err := p.expect(token.FUNCTION)
	if err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var params []string
	if !p.curIs(token.RPAREN) {
		tok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, tok.Literal)
		for p.curIs(token.COMMA) {
			p.nextToken()
			tok, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			params = append(params, tok.Literal)
		}
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Token: fnTok, Name: nameTok.Literal, Params: params, Body: body}, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	lbrace, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}

	block := &ast.Block{LBrace: lbrace}
	for !p.curIs(token.RBRACE) {
		if p.curIs(token.EOF) {
			return nil, newError(p.curToken.Pos, "unexpected end of file, expected }")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}

	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Kind {
	case token.VAR:
		return p.parseVarDecl()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.RETURN:
		return p.parseReturn()
	case token.PRINT:
		return p.parsePrint()
	case token.IDENT:
		if p.peekIs(token.ASSIGN) {
			return p.parseAssign()
		}
		if p.peekIs(token.LPAREN) {
			call, err := p.parseFunctionCall()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.SEMICOLON); err != nil {
				return nil, err
			}
			return call, nil
		}
		return nil, newError(p.curToken.Pos, "unexpected identifier "+p.curToken.Literal)
	default:
		return nil, newError(p.curToken.Pos, "unexpected token "+p.curToken.Kind.String())
	}
}

func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	varTok, err := p.expect(token.VAR)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Token: varTok, Name: nameTok.Literal, Value: value}, nil
}

func (p *Parser) parseAssign() (*ast.Assign, error) {
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Assign{Token: nameTok, Name: nameTok.Literal, Value: value}, nil
}

func (p *Parser) parseIf() (*ast.If, error) {
	ifTok, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock *ast.Block
	if p.curIs(token.ELSE) {
		p.nextToken()
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.If{Token: ifTok, Condition: cond, Then: thenBlock, Else: elseBlock}, nil
}

func (p *Parser) parseWhile() (*ast.While, error) {
	whileTok, err := p.expect(token.WHILE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Token: whileTok, Condition: cond, Body: body}, nil
}

func (p *Parser) parseReturn() (*ast.Return, error) {
	retTok, err := p.expect(token.RETURN)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Return{Token: retTok, Value: value}, nil
}

func (p *Parser) parsePrint() (*ast.Print, error) {
	printTok, err := p.expect(token.PRINT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Print{Token: printTok, Value: value}, nil
}
