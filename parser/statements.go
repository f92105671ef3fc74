package parser

import (
	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/token"
)

// statement → printStmt | ifStmt | whileStmt | returnStmt | block | exprStmt
func (p *Parser) statement() (ast.Statement, error) {
	switch p.cur().Kind {
	case token.PRINT:
		return p.printStmt()
	case token.IF:
		return p.ifStmt()
	case token.WHILE:
		return p.whileStmt()
	case token.RETURN:
		return p.returnStmt()
	case token.LBRACE:
		return p.block()
	default:
		return p.exprStmt()
	}
}

// printStmt → "print" "(" expr ")" ";"
func (p *Parser) printStmt() (ast.Statement, error) {
	p.advance() // "print"
	if _, err := p.expect(token.LPAREN, "expect '(' after 'print'"); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "expect ')' after print expression"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, "expect ';' after print statement"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expr: value}, nil
}

// ifStmt → "if" "(" expr ")" statement ( "else" statement )?
func (p *Parser) ifStmt() (ast.Statement, error) {
	p.advance() // "if"
	if _, err := p.expect(token.LPAREN, "expect '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "expect ')' after if condition"); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Statement
	if p.match(token.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Condition: cond, Then: thenBranch, Else: elseBranch}, nil
}

// whileStmt → "while" "(" expr ")" statement
func (p *Parser) whileStmt() (ast.Statement, error) {
	p.advance() // "while"
	if _, err := p.expect(token.LPAREN, "expect '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "expect ')' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: cond, Body: body}, nil
}

// returnStmt → "return" expr? ";"
func (p *Parser) returnStmt() (ast.Statement, error) {
	keyword := p.advance() // "return"
	var value ast.Expression
	if !p.check(token.SEMICOLON) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON, "expect ';' after return value"); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

// block → "{" declaration* "}"
func (p *Parser) block() (ast.Statement, error) {
	stmts, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return &ast.Block{Statements: stmts}, nil
}

// blockBody parses the declaration* between an already-pending "{" and its
// matching "}", consuming both braces. Shared by block() and funDecl(),
// which both need the bare statement slice.
func (p *Parser) blockBody() ([]ast.Statement, error) {
	if _, err := p.expect(token.LBRACE, "expect '{'"); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.RBRACE, "expect '}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

// exprStmt → expr ";"
func (p *Parser) exprStmt() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, "expect ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expr: expr}, nil
}
