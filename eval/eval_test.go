package eval_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/eval"
)

// run evaluates src against a fresh Interpreter and returns everything
// written via `print`.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	in := eval.New()
	var buf bytes.Buffer
	in.SetWriter(&buf)
	err := in.RunSource(src)
	return buf.String(), err
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print(1 + 2 * 3);`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestEval_LetBindingAndReassignment(t *testing.T) {
	out, err := run(t, `
		let x = 10;
		x = x + 5;
		print(x);
	`)
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)
}

func TestEval_FunctionCallReturnsValue(t *testing.T) {
	out, err := run(t, `
		fn add(a, b) {
			return a + b;
		}
		print(add(2, 3));
	`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestEval_ClosureCapturesAndCounterIncrements(t *testing.T) {
	out, err := run(t, `
		fn makeCounter() {
			let count = 0;
			fn increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		let counter = makeCounter();
		print(counter());
		print(counter());
		print(counter());
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestEval_TwoClosuresFromSameFactoryHaveIndependentState(t *testing.T) {
	out, err := run(t, `
		fn makeCounter() {
			let count = 0;
			fn increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		let a = makeCounter();
		let b = makeCounter();
		print(a());
		print(a());
		print(b());
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n1\n", out)
}

func TestEval_IfElseBranching(t *testing.T) {
	out, err := run(t, `
		let x = 5;
		if (x > 3) {
			print("big");
		} else {
			print("small");
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "big\n", out)
}

func TestEval_WhileLoop(t *testing.T) {
	out, err := run(t, `
		let i = 0;
		while (i < 3) {
			print(i);
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEval_StringOrdering(t *testing.T) {
	out, err := run(t, `
		print("a" < "b");
		print("b" < "a");
		print("abc" <= "abc");
		print("z" > "a");
	`)
	require.NoError(t, err)
	assert.Equal(t, "true\nfalse\ntrue\ntrue\n", out)
}

func TestEval_WholeValuedFloatPrintsWithDecimalPoint(t *testing.T) {
	out, err := run(t, `print(1.0 + 1.0);`)
	require.NoError(t, err)
	assert.Equal(t, "2.0\n", out)
}

func TestEval_StringConcatenation(t *testing.T) {
	out, err := run(t, `print("foo" + "bar");`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestEval_DivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print(1 / 0);`)
	require.Error(t, err)
	var rerr *eval.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "division by zero")
}

func TestEval_FloatDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print(1.0 / 0.0);`)
	require.Error(t, err)
	var rerr *eval.RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestEval_IntFloatPromotion(t *testing.T) {
	out, err := run(t, `print(1 + 2.5);`)
	require.NoError(t, err)
	assert.Equal(t, "3.5\n", out)
}

func TestEval_IntDivisionTruncatesTowardZero(t *testing.T) {
	out, err := run(t, `print(7 / 2); print(-7 / 2);`)
	require.NoError(t, err)
	assert.Equal(t, "3\n-3\n", out)
}

func TestEval_TruthinessOnlyNilAndFalseAreFalsy(t *testing.T) {
	out, err := run(t, `
		if (0) { print("zero is truthy"); }
		if ("") { print("empty string is truthy"); }
		if (!false) { print("not false is truthy"); }
		if (!nil) { print("not nil is truthy"); }
	`)
	require.NoError(t, err)
	assert.Equal(t, "zero is truthy\nempty string is truthy\nnot false is truthy\nnot nil is truthy\n", out)
}

func TestEval_BlockScopeDoesNotLeakOutward(t *testing.T) {
	_, err := run(t, `
		{
			let x = 1;
		}
		print(x);
	`)
	require.Error(t, err)
	var rerr *eval.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "undefined variable")
}

func TestEval_EmptyProgramSucceeds(t *testing.T) {
	out, err := run(t, ``)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEval_VarDeclWithoutInitializerIsNil(t *testing.T) {
	out, err := run(t, `let x; print(x);`)
	require.NoError(t, err)
	assert.Equal(t, "nil\n", out)
}

func TestEval_ReturnWithoutValueIsNil(t *testing.T) {
	out, err := run(t, `
		fn f() {
			return;
		}
		print(f());
	`)
	require.NoError(t, err)
	assert.Equal(t, "nil\n", out)
}

func TestEval_ReturnOutsideFunctionIsRuntimeError(t *testing.T) {
	_, err := run(t, `return 1;`)
	require.Error(t, err)
	var rerr *eval.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "return outside function")
}

func TestEval_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print(doesNotExist);`)
	require.Error(t, err)
	var rerr *eval.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "undefined variable")
}

func TestEval_CallingNonFunctionIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		let x = 1;
		x();
	`)
	require.Error(t, err)
	var rerr *eval.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "not callable")
}

func TestEval_WrongArityIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fn add(a, b) { return a + b; }
		add(1);
	`)
	require.Error(t, err)
	var rerr *eval.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "expected 2 argument")
}

func TestEval_ReturnEarlyInsideWhileStopsLoop(t *testing.T) {
	out, err := run(t, `
		fn firstOver(limit) {
			let i = 0;
			while (true) {
				if (i > limit) {
					return i;
				}
				i = i + 1;
			}
		}
		print(firstOver(3));
	`)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestEval_RecursiveFunction(t *testing.T) {
	out, err := run(t, `
		fn fact(n) {
			if (n <= 1) {
				return 1;
			}
			return n * fact(n - 1);
		}
		print(fact(5));
	`)
	require.NoError(t, err)
	assert.Equal(t, "120\n", out)
}

func TestEval_RedeclaringInSameScopeOverwrites(t *testing.T) {
	out, err := run(t, `
		let x = 1;
		let x = 2;
		print(x);
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEval_EqualityAcrossIntAndFloat(t *testing.T) {
	out, err := run(t, `print(1 == 1.0); print(1 == 2);`)
	require.NoError(t, err)
	assert.Equal(t, "true\nfalse\n", out)
}
