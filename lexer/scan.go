package lexer

import (
	"strings"

	"github.com/lumen-lang/lumen/token"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// readNumber scans an INT or FLOAT literal. spec §4.1: an integer is
// `[0-9]+` not followed by `.[0-9]`; a float is `[0-9]+\.[0-9]+`.
func (lx *Lexer) readNumber() (token.Token, error) {
	line, col := lx.line, lx.column
	start := lx.pos

	for isDigit(lx.current) {
		lx.advance()
	}

	isFloat := false
	if lx.current == '.' && isDigit(lx.peek()) {
		isFloat = true
		lx.advance() // consume '.'
		for isDigit(lx.current) {
			lx.advance()
		}
	}

	lexeme := lx.src[start:lx.pos]
	kind := token.INT
	if isFloat {
		kind = token.FLOAT
	}
	return token.New(kind, lexeme, line, col), nil
}

// readIdentifier scans `[A-Za-z_][A-Za-z0-9_]*` and classifies it as a
// keyword or a plain identifier.
func (lx *Lexer) readIdentifier() (token.Token, error) {
	line, col := lx.line, lx.column
	start := lx.pos

	for isAlphanumeric(lx.current) {
		lx.advance()
	}

	lexeme := lx.src[start:lx.pos]
	return token.New(token.LookupIdent(lexeme), lexeme, line, col), nil
}

// readString scans a double-quoted string literal. A backslash escapes
// the following character verbatim into the stored lexeme — per spec §4.1
// this spec does not interpret escapes such as \n; the raw character
// after the backslash is kept, and the backslash itself is dropped.
func (lx *Lexer) readString() (token.Token, error) {
	line, col := lx.line, lx.column
	lx.advance() // consume opening quote

	var b strings.Builder
	for lx.current != '"' {
		if lx.current == 0 {
			return token.Token{}, &Error{lx.line, lx.column, "unterminated string literal"}
		}
		if lx.current == '\\' {
			lx.advance()
			if lx.current == 0 {
				return token.Token{}, &Error{lx.line, lx.column, "unterminated string literal"}
			}
			b.WriteByte(lx.current)
			lx.advance()
			continue
		}
		if lx.current == '\n' {
			lx.line++
			lx.column = 0
		}
		b.WriteByte(lx.current)
		lx.advance()
	}
	lx.advance() // consume closing quote

	return token.New(token.STRING, b.String(), line, col), nil
}
