// Package eval walks the AST produced by parser.Parse and executes it
// against a chain of object.Environment scopes.
//
// Non-local `return` is represented the way spec §9 asks for — a closed
// sum type rather than a Go panic/recover or sentinel error — via
// execResult, which every statement-evaluating method returns alongside
// its error. A `{Normal}` result carries Returning == false; a
// `{Return(v)}` result carries Returning == true and Value == v. Callers
// that can see a return (blocks, if/while bodies, function calls) check
// Returning and stop; callers that cannot (the top-level program loop)
// never need to, because depth tracking turns a stray `return` into a
// RuntimeError before it ever produces one.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/object"
	"github.com/lumen-lang/lumen/parser"
)

// Interpreter holds the state needed to execute a program: the global
// scope and the output destination for `print`.
type Interpreter struct {
	Global *object.Environment
	Writer io.Writer
	depth  int // number of enclosing function calls; 0 at top level
}

// New creates an Interpreter with a fresh global environment, writing
// `print` output to os.Stdout.
func New() *Interpreter {
	return &Interpreter{
		Global: object.New(nil),
		Writer: os.Stdout,
	}
}

// SetWriter redirects `print` output, e.g. to a bytes.Buffer in tests.
func (in *Interpreter) SetWriter(w io.Writer) {
	in.Writer = w
}

// Run parses and evaluates source in one call against a fresh
// Interpreter. This is the entry point one-shot callers want.
func Run(source string) error {
	return New().RunSource(source)
}

// RunSource parses and evaluates source against this Interpreter's
// existing global environment, so a REPL can call it repeatedly and
// accumulate bindings across lines.
func (in *Interpreter) RunSource(source string) error {
	prog, err := parser.Parse(source)
	if err != nil {
		return err
	}
	return in.Eval(prog)
}

// Eval executes every top-level statement in prog against the global
// environment, in order, stopping at the first error.
func (in *Interpreter) Eval(prog *ast.Program) error {
	for _, stmt := range prog.Statements {
		if _, err := in.execStmt(stmt, in.Global); err != nil {
			return err
		}
	}
	return nil
}

// execResult is the evaluator's in-band representation of whether a
// statement completed normally or unwound via `return`.
type execResult struct {
	Value     object.Value
	Returning bool
}

func normal() (execResult, error) {
	return execResult{}, nil
}

func returning(v object.Value) (execResult, error) {
	return execResult{Value: v, Returning: true}, nil
}

func fail(err error) (execResult, error) {
	return execResult{}, err
}

// execStmt dispatches on the statement's concrete type via an exhaustive
// type switch over the closed ast.Statement union (spec §9), rather than
// a visitor table.
func (in *Interpreter) execStmt(stmt ast.Statement, env *object.Environment) (execResult, error) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		return in.execVarDecl(n, env)
	case *ast.FunctionDecl:
		return in.execFunctionDecl(n, env)
	case *ast.ExpressionStatement:
		if _, err := in.evalExpr(n.Expr, env); err != nil {
			return fail(err)
		}
		return normal()
	case *ast.PrintStmt:
		return in.execPrintStmt(n, env)
	case *ast.Block:
		return in.execBlock(n.Statements, object.New(env))
	case *ast.IfStmt:
		return in.execIfStmt(n, env)
	case *ast.WhileStmt:
		return in.execWhileStmt(n, env)
	case *ast.ReturnStmt:
		return in.execReturnStmt(n, env)
	default:
		return fail(fmt.Errorf("eval: unhandled statement type %T", stmt))
	}
}

func (in *Interpreter) execVarDecl(n *ast.VarDecl, env *object.Environment) (execResult, error) {
	var value object.Value = object.Nil{}
	if n.Initializer != nil {
		v, err := in.evalExpr(n.Initializer, env)
		if err != nil {
			return fail(err)
		}
		value = v
	}
	env.Define(n.Name.Lexeme, value)
	return normal()
}

func (in *Interpreter) execFunctionDecl(n *ast.FunctionDecl, env *object.Environment) (execResult, error) {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Lexeme
	}
	fn := &object.Function{
		Name:   n.Name.Lexeme,
		Params: params,
		Body:   n.Body,
		Env:    env, // captured directly, never copied — see object.Environment
	}
	env.Define(n.Name.Lexeme, fn)
	return normal()
}

func (in *Interpreter) execPrintStmt(n *ast.PrintStmt, env *object.Environment) (execResult, error) {
	value, err := in.evalExpr(n.Expr, env)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(in.Writer, value.String())
	return normal()
}

// execBlock runs stmts in order against env (a scope already freshly
// created for this block by the caller), stopping as soon as one
// statement returns.
func (in *Interpreter) execBlock(stmts []ast.Statement, env *object.Environment) (execResult, error) {
	for _, stmt := range stmts {
		res, err := in.execStmt(stmt, env)
		if err != nil {
			return fail(err)
		}
		if res.Returning {
			return res, nil
		}
	}
	return normal()
}

func (in *Interpreter) execIfStmt(n *ast.IfStmt, env *object.Environment) (execResult, error) {
	cond, err := in.evalExpr(n.Condition, env)
	if err != nil {
		return fail(err)
	}
	if object.Truthy(cond) {
		return in.execStmt(n.Then, env)
	}
	if n.Else != nil {
		return in.execStmt(n.Else, env)
	}
	return normal()
}

func (in *Interpreter) execWhileStmt(n *ast.WhileStmt, env *object.Environment) (execResult, error) {
	for {
		cond, err := in.evalExpr(n.Condition, env)
		if err != nil {
			return fail(err)
		}
		if !object.Truthy(cond) {
			return normal()
		}
		res, err := in.execStmt(n.Body, env)
		if err != nil {
			return fail(err)
		}
		if res.Returning {
			return res, nil
		}
	}
}

func (in *Interpreter) execReturnStmt(n *ast.ReturnStmt, env *object.Environment) (execResult, error) {
	if in.depth == 0 {
		return fail(runtimeErrorAt(n.Keyword, "return outside function"))
	}
	var value object.Value = object.Nil{}
	if n.Value != nil {
		v, err := in.evalExpr(n.Value, env)
		if err != nil {
			return fail(err)
		}
		value = v
	}
	return returning(value)
}
