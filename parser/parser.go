// Package parser implements a recursive-descent parser with Pratt-style
// precedence climbing for expressions, following the grammar in spec §4.2.
//
// Unlike the teacher's parser, which collects errors into a slice and
// keeps going, this parser raises on the first malformed construct and
// stops (spec §4.2, "Failure mode"): there is no error-recovery story in
// this spec.
package parser

import (
	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/lexer"
	"github.com/lumen-lang/lumen/token"
)

const maxArity = 255

// Parser holds the token-stream cursor used by recursive descent.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over an already-lexed token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes src and parses it into a Program in one call. This is
// the entry point most callers want.
func Parse(src string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(tokens).ParseProgram()
}

// ParseProgram consumes declaration* EOF and returns the root node.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.check(token.EOF) {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) prev() token.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) check(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.check(token.EOF) {
		p.pos++
	}
	return p.prev()
}

// match advances and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect advances past the current token if it has the expected kind,
// otherwise raises a parse Error carrying msg.
func (p *Parser) expect(kind token.Kind, msg string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, &Error{Token: p.cur(), Msg: msg}
}

func (p *Parser) errorAt(tok token.Token, msg string) error {
	return &Error{Token: tok, Msg: msg}
}
