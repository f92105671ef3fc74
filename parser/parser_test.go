package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/parser"
	"github.com/lumen-lang/lumen/token"
)

// ignoreLineColumn lets structural AST comparisons in tests below focus on
// shape (kind, lexeme, nesting), not the exact source position — position
// is already exercised directly by the lexer's own tests.
var ignoreLineColumn = cmpopts.IgnoreFields(token.Token{}, "Line", "Column")

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	require.NotNil(t, prog)
	return prog
}

func TestParse_VarDeclWithInitializer(t *testing.T) {
	prog := parse(t, `let x = 1 + 2;`)
	require.Len(t, prog.Statements, 1)
	decl, ok := prog.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name.Lexeme)
	require.NotNil(t, decl.Initializer)
	bin, ok := decl.Initializer.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Operator.Lexeme)
}

func TestParse_VarDeclWithoutInitializer(t *testing.T) {
	prog := parse(t, `let x;`)
	decl, ok := prog.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Nil(t, decl.Initializer)
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3), not (1 + 2) * 3
	prog := parse(t, `1 + 2 * 3;`)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	top, ok := stmt.Expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", top.Operator.Lexeme)

	right, ok := top.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", right.Operator.Lexeme)

	_, leftIsLiteral := top.Left.(*ast.Literal)
	assert.True(t, leftIsLiteral)
}

func TestParse_UnaryBindsTighterThanBinary(t *testing.T) {
	prog := parse(t, `-1 + 2;`)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	bin := stmt.Expr.(*ast.BinaryOp)
	_, ok := bin.Left.(*ast.UnaryOp)
	assert.True(t, ok)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	prog := parse(t, `a = b = 1;`)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	outer, ok := stmt.Expr.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Target.Lexeme)
	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Target.Lexeme)
}

func TestParse_InvalidAssignmentTargetIsParseError(t *testing.T) {
	_, err := parser.Parse(`1 = 2;`)
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "invalid assignment target")
}

func TestParse_CallChaining(t *testing.T) {
	prog := parse(t, `f()();`)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	outer, ok := stmt.Expr.(*ast.Call)
	require.True(t, ok)
	_, ok = outer.Callee.(*ast.Call)
	assert.True(t, ok)
}

func TestParse_FunctionDecl(t *testing.T) {
	prog := parse(t, `
		fn add(a, b) {
			return a + b;
		}
	`)
	decl, ok := prog.Statements[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "add", decl.Name.Lexeme)
	require.Len(t, decl.Params, 2)
	assert.Equal(t, "a", decl.Params[0].Lexeme)
	assert.Equal(t, "b", decl.Params[1].Lexeme)
	require.Len(t, decl.Body, 1)
	_, ok = decl.Body[0].(*ast.ReturnStmt)
	assert.True(t, ok)
}

func TestParse_FunctionDeclWithNoParams(t *testing.T) {
	prog := parse(t, `fn noop() { print(1); }`)
	decl, ok := prog.Statements[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Empty(t, decl.Params)
	require.Len(t, decl.Body, 1)
}

func TestParse_IfElse(t *testing.T) {
	prog := parse(t, `
		if (x) {
			print(1);
		} else {
			print(2);
		}
	`)
	stmt, ok := prog.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
	require.NotNil(t, stmt.Then)
	require.NotNil(t, stmt.Else)
}

func TestParse_IfWithoutElse(t *testing.T) {
	prog := parse(t, `if (x) { print(1); }`)
	stmt, ok := prog.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.Nil(t, stmt.Else)
}

func TestParse_While(t *testing.T) {
	prog := parse(t, `while (x) { x = x - 1; }`)
	stmt, ok := prog.Statements[0].(*ast.WhileStmt)
	require.True(t, ok)
	require.NotNil(t, stmt.Condition)
	require.NotNil(t, stmt.Body)
}

func TestParse_ReturnWithValue(t *testing.T) {
	prog := parse(t, `
		fn f() {
			return 1;
		}
	`)
	fn := prog.Statements[0].(*ast.FunctionDecl)
	ret := fn.Body[0].(*ast.ReturnStmt)
	require.NotNil(t, ret.Value)
}

func TestParse_ReturnWithoutValue(t *testing.T) {
	prog := parse(t, `
		fn f() {
			return;
		}
	`)
	fn := prog.Statements[0].(*ast.FunctionDecl)
	ret := fn.Body[0].(*ast.ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestParse_BlockScoping(t *testing.T) {
	prog := parse(t, `{ let x = 1; }`)
	_, ok := prog.Statements[0].(*ast.Block)
	assert.True(t, ok)
}

func TestParse_TooManyParametersIsParseError(t *testing.T) {
	src := "fn f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "a" + string(rune('0'+i%10))
	}
	src += ") { return 1; }"

	_, err := parser.Parse(src)
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "255 parameters")
}

func TestParse_MissingSemicolonIsParseError(t *testing.T) {
	_, err := parser.Parse(`let x = 1`)
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "expect ';' after variable declaration", perr.Msg)
}

func TestParse_UnterminatedBlockIsParseError(t *testing.T) {
	_, err := parser.Parse(`fn f() { return 1;`)
	require.Error(t, err)
}

func TestParse_EmptyProgramParsesToZeroStatements(t *testing.T) {
	prog := parse(t, ``)
	assert.Empty(t, prog.Statements)
}

func TestParse_FullExpressionShape(t *testing.T) {
	prog := parse(t, `let result = (1 + 2) * a;`)

	want := &ast.Program{
		Statements: []ast.Statement{
			&ast.VarDecl{
				Name: token.Token{Kind: token.IDENT, Lexeme: "result"},
				Initializer: &ast.BinaryOp{
					Left: &ast.BinaryOp{
						Left:     &ast.Literal{Token: token.Token{Kind: token.INT, Lexeme: "1"}},
						Operator: token.Token{Kind: token.PLUS, Lexeme: "+"},
						Right:    &ast.Literal{Token: token.Token{Kind: token.INT, Lexeme: "2"}},
					},
					Operator: token.Token{Kind: token.MULTIPLY, Lexeme: "*"},
					Right:    &ast.Identifier{Name: token.Token{Kind: token.IDENT, Lexeme: "a"}},
				},
			},
		},
	}

	if diff := cmp.Diff(want, prog, ignoreLineColumn); diff != "" {
		t.Errorf("unexpected AST shape (-want +got):\n%s", diff)
	}
}

func TestParse_StringAndBooleanLiterals(t *testing.T) {
	prog := parse(t, `print("hi"); print(true); print(nil);`)
	require.Len(t, prog.Statements, 3)
	for _, s := range prog.Statements {
		p := s.(*ast.PrintStmt)
		_, ok := p.Expr.(*ast.Literal)
		assert.True(t, ok)
	}
}
