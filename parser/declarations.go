package parser

import (
	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/token"
)

// declaration → funDecl | varDecl | statement
func (p *Parser) declaration() (ast.Statement, error) {
	if p.check(token.FN) {
		return p.funDecl()
	}
	if p.check(token.LET) {
		return p.varDecl()
	}
	return p.statement()
}

// funDecl → "fn" ID "(" params? ")" block
func (p *Parser) funDecl() (ast.Statement, error) {
	p.advance() // "fn"
	name, err := p.expect(token.IDENT, "expect function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN, "expect '(' after function name"); err != nil {
		return nil, err
	}

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArity {
				return nil, p.errorAt(p.cur(), "can't have more than 255 parameters")
			}
			param, err := p.expect(token.IDENT, "expect parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(token.RPAREN, "expect ')' after parameters"); err != nil {
		return nil, err
	}
	body, err := p.blockBody()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{Name: name, Params: params, Body: body}, nil
}

// varDecl → "let" ID ( "=" expr )? ";"
func (p *Parser) varDecl() (ast.Statement, error) {
	p.advance() // "let"
	name, err := p.expect(token.IDENT, "expect variable name")
	if err != nil {
		return nil, err
	}

	var init ast.Expression
	if p.match(token.ASSIGN) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON, "expect ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: name, Initializer: init}, nil
}
