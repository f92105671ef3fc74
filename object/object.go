// Package object defines Lumen's runtime value representation: the
// tagged union of values produced by evaluation, and the environment
// (scope chain) that binds names to them.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lumen-lang/lumen/ast"
)

// Type identifies the runtime kind of a Value.
type Type string

const (
	NilType      Type = "nil"
	BoolType     Type = "bool"
	IntType      Type = "int"
	FloatType    Type = "float"
	StringType   Type = "string"
	FunctionType Type = "function"
)

// Value is the interface implemented by every runtime value kind: Nil,
// Bool, Int, Float, Str, and *Function.
type Value interface {
	Type() Type
	String() string
}

// Nil is the absence of a value.
type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }

// Bool is a boolean value.
type Bool struct{ Value bool }

func (b Bool) Type() Type { return BoolType }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Int is a 64-bit signed integer value.
type Int struct{ Value int64 }

func (i Int) Type() Type     { return IntType }
func (i Int) String() string { return strconv.FormatInt(i.Value, 10) }

// Float is a 64-bit IEEE-754 value.
type Float struct{ Value float64 }

func (f Float) Type() Type { return FloatType }

// String renders the float with 'g' formatting, except that an
// integral value (e.g. 2.0) keeps an explicit ".0" suffix — 'g' alone
// would print "2", indistinguishable from an Int (spec §4.3 keeps Int
// and Float distinct kinds even when equal in value).
func (f Float) String() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") { // already has a point, exponent, Inf, or NaN
		return s
	}
	return s + ".0"
}

// Str is an immutable string value.
type Str struct{ Value string }

func (s Str) Type() Type     { return StringType }
func (s Str) String() string { return s.Value }

// Function is a closure: a function declaration paired with the
// environment that was current when the declaration executed. Multiple
// call sites share the same closure handle and therefore the same
// captured environment — see Environment's doc comment on why this must
// not be copied.
type Function struct {
	Name   string
	Params []string
	Body   []ast.Statement
	Env    *Environment
}

func (f *Function) Type() Type { return FunctionType }
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s/%d>", f.Name, len(f.Params))
}

// Truthy implements the language's truthiness rule: only Nil and a false
// Bool are falsy; every other value, including 0, 0.0, and "", is
// truthy (spec §4.3, overriding the original implementation's
// host-boolean-conversion behavior — see DESIGN.md).
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Bool:
		return val.Value
	default:
		return true
	}
}

// Equal implements the language's `==`/`!=` structural equality rule:
// differing kinds compare unequal, except that an Int and a Float of
// equal mathematical value compare equal.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Value == bv.Value
	case Str:
		bv, ok := b.(Str)
		return ok && av.Value == bv.Value
	case Int:
		switch bv := b.(type) {
		case Int:
			return av.Value == bv.Value
		case Float:
			return float64(av.Value) == bv.Value
		}
		return false
	case Float:
		switch bv := b.(type) {
		case Float:
			return av.Value == bv.Value
		case Int:
			return av.Value == float64(bv.Value)
		}
		return false
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	}
	return false
}
