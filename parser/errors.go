package parser

import (
	"fmt"

	"github.com/lumen-lang/lumen/token"
)

// Error is a parse-time failure anchored to the offending token. The
// parser does not attempt error recovery: it raises on the first
// malformed construct (spec §4.2).
type Error struct {
	Token token.Token
	Msg   string
}

func (e *Error) Error() string {
	if e.Token.Kind == token.EOF {
		return fmt.Sprintf("[line %d] parse error at end: %s", e.Token.Line, e.Msg)
	}
	return fmt.Sprintf("[line %d] parse error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Msg)
}
