// Package lexer turns Lumen source text into a token stream.
//
// The scanner is a single-pass, hand-written reader over the source
// bytes; it tracks line/column as it goes so every token and every
// lexical error can be pinned to a precise source position.
package lexer

import (
	"fmt"

	"github.com/lumen-lang/lumen/token"
)

// Error reports an unrecognized character at a source position.
type Error struct {
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d:%d] lexical error: %s", e.Line, e.Column, e.Msg)
}

// Lexer scans Lumen source code one byte at a time, producing tokens on
// demand via NextToken.
type Lexer struct {
	src     string
	current byte
	pos     int
	length  int
	line    int
	column  int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lx := &Lexer{src: src, length: len(src), line: 1, column: 1}
	if lx.length > 0 {
		lx.current = src[0]
	}
	return lx
}

// Tokenize scans the entire source and returns the resulting token
// sequence, always terminated by a single EOF token. It stops at the
// first unrecognized character.
func Tokenize(src string) ([]token.Token, error) {
	lx := New(src)
	tokens := make([]token.Token, 0, len(src)/4+1)
	for {
		tok, err := lx.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// peek looks at the next byte without consuming it, returning 0 past the
// end of source.
func (lx *Lexer) peek() byte {
	if lx.pos+1 >= lx.length {
		return 0
	}
	return lx.src[lx.pos+1]
}

// advance consumes the current byte and moves to the next one.
func (lx *Lexer) advance() {
	lx.pos++
	lx.column++
	if lx.pos >= lx.length {
		lx.current = 0
		lx.pos = lx.length
		return
	}
	lx.current = lx.src[lx.pos]
}

// skipWhitespaceAndComments advances past spaces, tabs, CRs, newlines,
// and `//`/`#` line comments, updating line/column as it goes.
func (lx *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case lx.current == '\n':
			lx.line++
			lx.column = 1
			lx.pos++
			if lx.pos >= lx.length {
				lx.current = 0
				lx.pos = lx.length
			} else {
				lx.current = lx.src[lx.pos]
			}
		case lx.current == ' ' || lx.current == '\t' || lx.current == '\r':
			lx.advance()
		case lx.current == '/' && lx.peek() == '/':
			lx.skipLineComment()
		case lx.current == '#':
			lx.skipLineComment()
		default:
			return
		}
	}
}

func (lx *Lexer) skipLineComment() {
	for lx.current != '\n' && lx.current != 0 {
		lx.advance()
	}
}

// two registers a two-character operator if the peeked byte matches next,
// otherwise falls back to the single-character kind.
func (lx *Lexer) two(next byte, twoKind token.Kind, oneKind token.Kind, lexeme2, lexeme1 string) token.Token {
	line, col := lx.line, lx.column
	if lx.peek() == next {
		lx.advance()
		return token.New(twoKind, lexeme2, line, col)
	}
	return token.New(oneKind, lexeme1, line, col)
}

// NextToken scans and returns the next token, or a lexical Error if the
// current character doesn't match any recognized pattern.
func (lx *Lexer) NextToken() (token.Token, error) {
	lx.skipWhitespaceAndComments()

	line, col := lx.line, lx.column

	switch lx.current {
	case 0:
		return token.New(token.EOF, "", line, col), nil
	case '"':
		return lx.readString()
	case '(':
		lx.advance()
		return token.New(token.LPAREN, "(", line, col), nil
	case ')':
		lx.advance()
		return token.New(token.RPAREN, ")", line, col), nil
	case '{':
		lx.advance()
		return token.New(token.LBRACE, "{", line, col), nil
	case '}':
		lx.advance()
		return token.New(token.RBRACE, "}", line, col), nil
	case '[':
		lx.advance()
		return token.New(token.LBRACKET, "[", line, col), nil
	case ']':
		lx.advance()
		return token.New(token.RBRACKET, "]", line, col), nil
	case ',':
		lx.advance()
		return token.New(token.COMMA, ",", line, col), nil
	case '.':
		lx.advance()
		return token.New(token.DOT, ".", line, col), nil
	case ':':
		lx.advance()
		return token.New(token.COLON, ":", line, col), nil
	case ';':
		lx.advance()
		return token.New(token.SEMICOLON, ";", line, col), nil
	case '+':
		lx.advance()
		return token.New(token.PLUS, "+", line, col), nil
	case '-':
		lx.advance()
		return token.New(token.MINUS, "-", line, col), nil
	case '*':
		lx.advance()
		return token.New(token.MULTIPLY, "*", line, col), nil
	case '/':
		lx.advance()
		return token.New(token.DIVIDE, "/", line, col), nil
	case '=':
		tok := lx.two('=', token.EQ, token.ASSIGN, "==", "=")
		lx.advance()
		return tok, nil
	case '!':
		tok := lx.two('=', token.NEQ, token.NOT, "!=", "!")
		lx.advance()
		return tok, nil
	case '<':
		tok := lx.two('=', token.LTE, token.LT, "<=", "<")
		lx.advance()
		return tok, nil
	case '>':
		tok := lx.two('=', token.GTE, token.GT, ">=", ">")
		lx.advance()
		return tok, nil
	case '&':
		if lx.peek() == '&' {
			lx.advance()
			lx.advance()
			return token.New(token.AND, "&&", line, col), nil
		}
		return token.Token{}, &Error{line, col, "unexpected character '&'"}
	case '|':
		if lx.peek() == '|' {
			lx.advance()
			lx.advance()
			return token.New(token.OR, "||", line, col), nil
		}
		return token.Token{}, &Error{line, col, "unexpected character '|'"}
	}

	if isDigit(lx.current) {
		return lx.readNumber()
	}
	if isAlpha(lx.current) || lx.current == '_' {
		return lx.readIdentifier()
	}

	return token.Token{}, &Error{line, col, fmt.Sprintf("unexpected character %q", lx.current)}
}
