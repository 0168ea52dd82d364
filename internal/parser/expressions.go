package parser

import (
	"github.com/tacscript/tac/internal/ast"
	"github.com/tacscript/tac/internal/compileerr"
	"github.com/tacscript/tac/internal/token"
)

// precedenceBands lists operator groups from lowest to highest
// precedence. The expression parser always splits on the
// lowest-precedence band that has a match in the current token run,
// which is why the resulting tree is right-leaning for operators of
// equal precedence: see §9 of the design notes.
var precedenceBands = [][]token.Type{
	{token.ASSIGN},
	{token.PLUS, token.MINUS},
	{token.STAR, token.SLASH},
	{token.INCREMENT, token.DECREMENT, token.GT, token.GTE, token.LT, token.LTE, token.EQ},
	{token.INCREASE_BY, token.DECREASE_BY, token.NOT},
}

// isExprTerminator reports whether typ ends an expression run.
func isExprTerminator(typ token.Type) bool {
	return typ == token.EOF || typ == token.SEMICOLON || typ == token.PAREN_CLOSE
}

// parseExpr collects the token run starting at the parser's current
// position, up to (but not including) the next EOF/';'/')', and
// parses it as an expression. The terminator itself is left
// unconsumed for the caller.
func (p *Parser) parseExpr() (ast.SyntaxComponent, error) {
	p.logger.Debug("Parsing expression")
	start := p.pos
	for !isExprTerminator(p.cur().Type) {
		p.advance()
	}
	p.logger.Debug("Parsing expression with %d tokens", p.pos-start)
	return parseExprRun(p.tokens[start:p.pos])
}

// parseExprRun recursively splits run on the first operator found in
// the lowest-precedence band present, building the corresponding
// node and recursing into the left and right halves.
func parseExprRun(run []token.Token) (ast.SyntaxComponent, error) {
	if len(run) == 0 {
		return nil, compileerr.New("parse", "expected expression operand")
	}

	if len(run) == 1 {
		return parseLeaf(run[0])
	}

	for _, band := range precedenceBands {
		pos, found := findFirst(run, band)
		if !found {
			continue
		}
		operator := run[pos]
		left := run[:pos]
		right := run[pos+1:]

		if isUnaryOperator(operator.Type) {
			var operand []token.Token
			if len(left) > 0 {
				operand = left
			} else {
				operand = right
			}
			node, err := parseExprRun(operand)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryOperation{Operator: operator.Type, Operand: node}, nil
		}

		if len(left) == 0 || len(right) == 0 {
			return nil, compileerr.New("parse", "operator %s requires an operand on each side", operator.Type)
		}
		leftNode, err := parseExprRun(left)
		if err != nil {
			return nil, err
		}
		rightNode, err := parseExprRun(right)
		if err != nil {
			return nil, err
		}
		return buildBinary(operator.Type, leftNode, rightNode), nil
	}

	return nil, compileerr.New("parse", "unrecognized expression")
}

func parseLeaf(tok token.Token) (ast.SyntaxComponent, error) {
	switch tok.Type {
	case token.CONSTANT:
		return &ast.Constant{Number: tok.Number}, nil
	case token.TRUE:
		return &ast.Constant{IsBoolean: true, Boolean: true}, nil
	case token.FALSE:
		return &ast.Constant{IsBoolean: true, Boolean: false}, nil
	case token.IDENTIFIER:
		return &ast.Identifier{Name: tok.Literal}, nil
	case token.NUMTYPE, token.BOOLTYPE:
		return nil, compileerr.New("parse", "type token %s cannot appear outside a declaration", tok.Type)
	default:
		return nil, compileerr.New("parse", "expected constant or identifier as operand, got %s", tok.Type)
	}
}

func isUnaryOperator(typ token.Type) bool {
	return typ == token.INCREMENT || typ == token.DECREMENT || typ == token.NOT
}

func buildBinary(op token.Type, left, right ast.SyntaxComponent) ast.SyntaxComponent {
	switch op {
	case token.ASSIGN:
		return &ast.Assignment{Target: left, Value: right}
	case token.GT, token.GTE, token.LT, token.LTE, token.EQ, token.NEQ:
		return &ast.Relation{Operator: op, Left: left, Right: right}
	default:
		return &ast.BinaryOperation{Operator: op, Left: left, Right: right}
	}
}

// findFirst returns the index of the first token in run whose type
// appears in band.
func findFirst(run []token.Token, band []token.Type) (int, bool) {
	for i, tok := range run {
		for _, typ := range band {
			if tok.Type == typ {
				return i, true
			}
		}
	}
	return 0, false
}
