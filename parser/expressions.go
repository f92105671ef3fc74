package parser

import (
	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/token"
)

// expr → assignment
func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

// assignment → equality ( "=" assignment )?
//
// The left-hand side is parsed as an ordinary expression first; only
// once we see "=" do we check whether it was syntactically an
// Identifier (spec §4.2's non-LL(1) lookahead: validity of the
// assignment target is decided after the fact, not predicted).
func (p *Parser) assignment() (ast.Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.check(token.ASSIGN) {
		eq := p.advance()
		value, err := p.assignment() // right-associative
		if err != nil {
			return nil, err
		}
		ident, ok := expr.(*ast.Identifier)
		if !ok {
			return nil, p.errorAt(eq, "invalid assignment target")
		}
		return &ast.Assign{Target: ident.Name, Value: value}, nil
	}
	return expr, nil
}

// equality → comparison ( ("==" | "!=") comparison )*
func (p *Parser) equality() (ast.Expression, error) {
	return p.leftAssocBinary(p.comparison, token.EQ, token.NEQ)
}

// comparison → term ( ("<" | "<=" | ">" | ">=") term )*
func (p *Parser) comparison() (ast.Expression, error) {
	return p.leftAssocBinary(p.term, token.LT, token.LTE, token.GT, token.GTE)
}

// term → factor ( ("+" | "-") factor )*
func (p *Parser) term() (ast.Expression, error) {
	return p.leftAssocBinary(p.factor, token.PLUS, token.MINUS)
}

// factor → unary ( ("*" | "/") unary )*
func (p *Parser) factor() (ast.Expression, error) {
	return p.leftAssocBinary(p.unary, token.MULTIPLY, token.DIVIDE)
}

// leftAssocBinary implements one precedence level shared by equality,
// comparison, term, and factor: parse one operand via next, then fold in
// as many (operator operand) pairs as are present, left-associatively.
func (p *Parser) leftAssocBinary(next func() (ast.Expression, error), ops ...token.Kind) (ast.Expression, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.matchAny(ops...) {
		op := p.prev()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryOp{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) matchAny(kinds ...token.Kind) bool {
	return p.match(kinds...)
}

// unary → ("!" | "-") unary | call
func (p *Parser) unary() (ast.Expression, error) {
	if p.check(token.NOT) || p.check(token.MINUS) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Operator: op, Right: right}, nil
	}
	return p.call()
}

// call → primary ( "(" args? ")" )*
func (p *Parser) call() (ast.Expression, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.check(token.LPAREN) {
		p.advance()
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// args → expr ( "," expr )*     // max 255
func (p *Parser) finishCall(callee ast.Expression) (ast.Expression, error) {
	var args []ast.Expression
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArity {
				return nil, p.errorAt(p.cur(), "can't have more than 255 arguments")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, err := p.expect(token.RPAREN, "expect ')' after arguments")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Args: args}, nil
}

// primary → INTEGER | FLOAT | STRING | "true" | "false" | "nil"
//         | ID | "(" expr ")"
func (p *Parser) primary() (ast.Expression, error) {
	switch p.cur().Kind {
	case token.INT, token.FLOAT, token.STRING, token.TRUE, token.FALSE, token.NIL:
		return &ast.Literal{Token: p.advance()}, nil
	case token.IDENT:
		return &ast.Identifier{Name: p.advance()}, nil
	case token.LPAREN:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "expect ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.errorAt(p.cur(), "expect expression")
	}
}
