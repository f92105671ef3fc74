package eval

import (
	"fmt"

	"github.com/lumen-lang/lumen/token"
)

// RuntimeError is raised for a failure discovered only while executing a
// well-formed program: an undefined name, a division by zero, an
// operator applied to the wrong kinds of values, a call to a
// non-callable, or a `return` outside any function (spec §4.3).
type RuntimeError struct {
	Line int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] runtime error: %s", e.Line, e.Msg)
}

func runtimeErrorAt(tok token.Token, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{Line: tok.Line, Msg: fmt.Sprintf(format, a...)}
}
