// Package ast defines the abstract syntax tree produced by the parser and
// walked by the evaluator.
//
// Per spec, dispatch over node kinds uses a closed tagged union with an
// exhaustive type switch in the evaluator rather than a visitor-table
// (the teacher's NodeVisitor approach is intentionally not carried over
// here — see DESIGN.md).
package ast

import "github.com/lumen-lang/lumen/token"

// Node is the root marker implemented by every AST node.
type Node interface {
	node()
}

// Statement is implemented by every statement-level node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression-level node.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of a parsed source file: an ordered sequence of
// top-level statements.
type Program struct {
	Statements []Statement
}

func (*Program) node() {}

// VarDecl declares a new binding, e.g. `let x = 1;` or `let x;`.
type VarDecl struct {
	Name        token.Token // IDENT token carrying the variable's name
	Initializer Expression  // nil when no initializer is given
}

func (*VarDecl) node()          {}
func (*VarDecl) statementNode() {}

// FunctionDecl declares a named function and binds it in the current
// scope as a closure over that scope.
type FunctionDecl struct {
	Name   token.Token
	Params []token.Token // IDENT tokens, in declared order
	Body   []Statement
}

func (*FunctionDecl) node()          {}
func (*FunctionDecl) statementNode() {}

// ExpressionStatement evaluates an expression and discards the result.
type ExpressionStatement struct {
	Expr Expression
}

func (*ExpressionStatement) node()          {}
func (*ExpressionStatement) statementNode() {}

// PrintStmt evaluates an expression and writes its rendered form followed
// by a newline.
type PrintStmt struct {
	Expr Expression
}

func (*PrintStmt) node()          {}
func (*PrintStmt) statementNode() {}

// Block is a `{ ... }` sequence of statements executed in a fresh child
// environment.
type Block struct {
	Statements []Statement
}

func (*Block) node()          {}
func (*Block) statementNode() {}

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Condition Expression
	Then      Statement
	Else      Statement // nil when there is no else branch
}

func (*IfStmt) node()          {}
func (*IfStmt) statementNode() {}

// WhileStmt loops Body while Condition evaluates truthy.
type WhileStmt struct {
	Condition Expression
	Body      Statement
}

func (*WhileStmt) node()          {}
func (*WhileStmt) statementNode() {}

// ReturnStmt unwinds non-locally to the nearest enclosing call with an
// optional value (Nil when Value is nil).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expression
}

func (*ReturnStmt) node()          {}
func (*ReturnStmt) statementNode() {}

// Literal is a constant value token: INT, FLOAT, STRING, TRUE, FALSE, or
// NIL.
type Literal struct {
	Token token.Token
}

func (*Literal) node()           {}
func (*Literal) expressionNode() {}

// Identifier references a binding by name.
type Identifier struct {
	Name token.Token
}

func (*Identifier) node()           {}
func (*Identifier) expressionNode() {}

// Assign mutates an existing binding, evaluating to the assigned value.
type Assign struct {
	Target token.Token // IDENT token of the assignment target
	Value  Expression
}

func (*Assign) node()           {}
func (*Assign) expressionNode() {}

// BinaryOp applies a binary operator to two operands.
type BinaryOp struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (*BinaryOp) node()           {}
func (*BinaryOp) expressionNode() {}

// UnaryOp applies a prefix operator (`-` or `!`) to one operand.
type UnaryOp struct {
	Operator token.Token
	Right    Expression
}

func (*UnaryOp) node()           {}
func (*UnaryOp) expressionNode() {}

// Call invokes Callee with Args. Paren is the closing `)` token, kept so
// the evaluator can cite a line number for arity/callability errors.
type Call struct {
	Callee Expression
	Paren  token.Token
	Args   []Expression
}

func (*Call) node()           {}
func (*Call) expressionNode() {}
