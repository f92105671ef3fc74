package eval

import (
	"fmt"
	"strconv"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/object"
	"github.com/lumen-lang/lumen/token"
)

const maxArity = 255

func (in *Interpreter) evalExpr(expr ast.Expression, env *object.Environment) (object.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return evalLiteral(n)
	case *ast.Identifier:
		return in.evalIdentifier(n, env)
	case *ast.Assign:
		return in.evalAssign(n, env)
	case *ast.BinaryOp:
		return in.evalBinaryOp(n, env)
	case *ast.UnaryOp:
		return in.evalUnaryOp(n, env)
	case *ast.Call:
		return in.evalCall(n, env)
	default:
		return nil, fmt.Errorf("eval: unhandled expression type %T", expr)
	}
}

func evalLiteral(n *ast.Literal) (object.Value, error) {
	switch n.Token.Kind {
	case token.INT:
		v, err := strconv.ParseInt(n.Token.Lexeme, 10, 64)
		if err != nil {
			return nil, runtimeErrorAt(n.Token, "malformed integer literal %q", n.Token.Lexeme)
		}
		return object.Int{Value: v}, nil
	case token.FLOAT:
		v, err := strconv.ParseFloat(n.Token.Lexeme, 64)
		if err != nil {
			return nil, runtimeErrorAt(n.Token, "malformed float literal %q", n.Token.Lexeme)
		}
		return object.Float{Value: v}, nil
	case token.STRING:
		return object.Str{Value: n.Token.Lexeme}, nil
	case token.TRUE:
		return object.Bool{Value: true}, nil
	case token.FALSE:
		return object.Bool{Value: false}, nil
	case token.NIL:
		return object.Nil{}, nil
	default:
		return nil, runtimeErrorAt(n.Token, "unrecognized literal kind %s", n.Token.Kind)
	}
}

func (in *Interpreter) evalIdentifier(n *ast.Identifier, env *object.Environment) (object.Value, error) {
	v, ok := env.Get(n.Name.Lexeme)
	if !ok {
		return nil, runtimeErrorAt(n.Name, "undefined variable '%s'", n.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalAssign(n *ast.Assign, env *object.Environment) (object.Value, error) {
	value, err := in.evalExpr(n.Value, env)
	if err != nil {
		return nil, err
	}
	if !env.Assign(n.Target.Lexeme, value) {
		return nil, runtimeErrorAt(n.Target, "undefined variable '%s'", n.Target.Lexeme)
	}
	return value, nil
}

func (in *Interpreter) evalUnaryOp(n *ast.UnaryOp, env *object.Environment) (object.Value, error) {
	right, err := in.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Kind {
	case token.MINUS:
		switch v := right.(type) {
		case object.Int:
			return object.Int{Value: -v.Value}, nil
		case object.Float:
			return object.Float{Value: -v.Value}, nil
		default:
			return nil, runtimeErrorAt(n.Operator, "operand of unary '-' must be a number")
		}
	case token.NOT:
		return object.Bool{Value: !object.Truthy(right)}, nil
	default:
		return nil, runtimeErrorAt(n.Operator, "unrecognized unary operator '%s'", n.Operator.Lexeme)
	}
}

func (in *Interpreter) evalBinaryOp(n *ast.BinaryOp, env *object.Environment) (object.Value, error) {
	left, err := in.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Kind {
	case token.EQ:
		return object.Bool{Value: object.Equal(left, right)}, nil
	case token.NEQ:
		return object.Bool{Value: !object.Equal(left, right)}, nil
	case token.PLUS:
		return evalPlus(n.Operator, left, right)
	case token.MINUS, token.MULTIPLY, token.DIVIDE:
		return evalArithmetic(n.Operator, left, right)
	case token.LT, token.LTE, token.GT, token.GTE:
		return evalComparison(n.Operator, left, right)
	default:
		return nil, runtimeErrorAt(n.Operator, "unrecognized binary operator '%s'", n.Operator.Lexeme)
	}
}

// evalPlus handles "+" specially: it is overloaded for string
// concatenation in addition to numeric addition (spec §4.3).
func evalPlus(op token.Token, left, right object.Value) (object.Value, error) {
	ls, lok := left.(object.Str)
	rs, rok := right.(object.Str)
	if lok && rok {
		return object.Str{Value: ls.Value + rs.Value}, nil
	}
	if isNumeric(left) && isNumeric(right) {
		return evalArithmetic(op, left, right)
	}
	return nil, runtimeErrorAt(op, "operands of '+' must both be numbers or both be strings")
}

func isNumeric(v object.Value) bool {
	switch v.(type) {
	case object.Int, object.Float:
		return true
	default:
		return false
	}
}

// evalArithmetic implements "-", "*", "/", and the numeric half of "+":
// int op int stays an int (truncating division, per spec §4.3), any
// float operand promotes both sides to float.
func evalArithmetic(op token.Token, left, right object.Value) (object.Value, error) {
	li, liok := left.(object.Int)
	ri, riok := right.(object.Int)
	if liok && riok {
		if op.Kind == token.DIVIDE && ri.Value == 0 {
			return nil, runtimeErrorAt(op, "division by zero")
		}
		switch op.Kind {
		case token.PLUS:
			return object.Int{Value: li.Value + ri.Value}, nil
		case token.MINUS:
			return object.Int{Value: li.Value - ri.Value}, nil
		case token.MULTIPLY:
			return object.Int{Value: li.Value * ri.Value}, nil
		case token.DIVIDE:
			return object.Int{Value: li.Value / ri.Value}, nil
		}
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, runtimeErrorAt(op, "operands of '%s' must be numbers", op.Lexeme)
	}
	if op.Kind == token.DIVIDE && rf == 0 {
		return nil, runtimeErrorAt(op, "division by zero")
	}
	switch op.Kind {
	case token.PLUS:
		return object.Float{Value: lf + rf}, nil
	case token.MINUS:
		return object.Float{Value: lf - rf}, nil
	case token.MULTIPLY:
		return object.Float{Value: lf * rf}, nil
	case token.DIVIDE:
		return object.Float{Value: lf / rf}, nil
	}
	return nil, runtimeErrorAt(op, "unrecognized arithmetic operator '%s'", op.Lexeme)
}

// evalComparison implements "<", "<=", ">", ">=". spec §4.3 defines these
// on numeric pairs and on string pairs, ordering strings lexicographically
// on code units (matching Go's native string comparison) — mirrors the
// string special-case in evalPlus.
func evalComparison(op token.Token, left, right object.Value) (object.Value, error) {
	ls, lok := left.(object.Str)
	rs, rok := right.(object.Str)
	if lok && rok {
		switch op.Kind {
		case token.LT:
			return object.Bool{Value: ls.Value < rs.Value}, nil
		case token.LTE:
			return object.Bool{Value: ls.Value <= rs.Value}, nil
		case token.GT:
			return object.Bool{Value: ls.Value > rs.Value}, nil
		case token.GTE:
			return object.Bool{Value: ls.Value >= rs.Value}, nil
		default:
			return nil, runtimeErrorAt(op, "unrecognized comparison operator '%s'", op.Lexeme)
		}
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, runtimeErrorAt(op, "operands of '%s' must both be numbers or both be strings", op.Lexeme)
	}
	switch op.Kind {
	case token.LT:
		return object.Bool{Value: lf < rf}, nil
	case token.LTE:
		return object.Bool{Value: lf <= rf}, nil
	case token.GT:
		return object.Bool{Value: lf > rf}, nil
	case token.GTE:
		return object.Bool{Value: lf >= rf}, nil
	default:
		return nil, runtimeErrorAt(op, "unrecognized comparison operator '%s'", op.Lexeme)
	}
}

func asFloat(v object.Value) (float64, bool) {
	switch n := v.(type) {
	case object.Int:
		return float64(n.Value), true
	case object.Float:
		return n.Value, true
	default:
		return 0, false
	}
}

// evalCall implements function invocation: arity checking, a fresh call
// frame rooted at the closure's captured environment (never the
// caller's environment — that would break lexical scoping), and
// unwrapping of a non-local return into the call's value.
func (in *Interpreter) evalCall(n *ast.Call, env *object.Environment) (object.Value, error) {
	callee, err := in.evalExpr(n.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*object.Function)
	if !ok {
		return nil, runtimeErrorAt(n.Paren, "'%s' is not callable", callee.String())
	}
	if len(n.Args) != len(fn.Params) {
		return nil, runtimeErrorAt(n.Paren, "expected %d argument(s), got %d", len(fn.Params), len(n.Args))
	}
	if len(n.Args) > maxArity {
		return nil, runtimeErrorAt(n.Paren, "can't call with more than %d arguments", maxArity)
	}

	callEnv := object.New(fn.Env)
	for i, param := range fn.Params {
		arg, err := in.evalExpr(n.Args[i], env)
		if err != nil {
			return nil, err
		}
		callEnv.Define(param, arg)
	}

	in.depth++
	res, err := in.execBlock(fn.Body, callEnv)
	in.depth--
	if err != nil {
		return nil, err
	}
	if res.Returning {
		return res.Value, nil
	}
	return object.Nil{}, nil
}
