package irgen

import (
	"fmt"

	"github.com/tacscript/tac/internal/ast"
	"github.com/tacscript/tac/internal/compileerr"
	"github.com/tacscript/tac/internal/token"
)

// Generate lowers root, a well-typed program (the caller is expected
// to have already run it through semantic analysis), into a flat
// sequence of TAC instructions.
func Generate(root ast.SyntaxComponent) ([]Code, error) {
	g := &generator{symbols: NewSymbolTable(), logger: compileerr.NewLogger()}
	return g.lower(root)
}

type generator struct {
	symbols *SymbolTable
	logger  *compileerr.Logger
}

// lower produces the statement-level code for node: the side-effecting
// instructions a statement contributes to the program, in order.
func (g *generator) lower(node ast.SyntaxComponent) ([]Code, error) {
	switch n := node.(type) {
	case ast.Null:
		return nil, nil

	case *ast.Sequence:
		g.logger.Trace("Generating code for sequence")
		saved := g.symbols
		g.symbols = saved.Clone()
		defer func() { g.symbols = saved }()

		var out []Code
		for _, stmt := range n.Statements {
			code, err := g.lower(stmt)
			if err != nil {
				return nil, err
			}
			out = append(out, code...)
		}
		return out, nil

	case *ast.Declaration:
		g.logger.Trace("Generating code for declaration")
		idAddress := g.symbols.NewTemp()
		g.symbols.Bind(n.Name, idAddress)

		if _, isNull := n.Initializer.(ast.Null); isNull {
			return nil, nil
		}

		var out []Code
		valueAddress, code, err := g.extractValue(n.Initializer)
		if err != nil {
			return nil, err
		}
		out = append(out, code...)
		out = append(out, ThreeAddress{Op: Copy, Operand1: valueAddress, Result: idAddress})
		return out, nil

	case *ast.Assignment:
		g.logger.Trace("Generating code for assignment")
		target, ok := n.Target.(*ast.Identifier)
		if !ok {
			return nil, compileerr.New("irgen", "assignment target must be an identifier")
		}
		targetAddress, ok := g.symbols.Lookup(target.Name)
		if !ok {
			return nil, compileerr.New("irgen", "undeclared identifier %s", target.Name)
		}

		valueAddress, out, err := g.extractValue(n.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, ThreeAddress{Op: Copy, Operand1: valueAddress, Result: targetAddress})
		return out, nil

	case *ast.If:
		g.logger.Trace("Generating code for if statement")
		label := fmt.Sprintf("if_before_%d", g.symbols.NewIfLabel())

		condAddress, condCode, err := g.extractValue(n.Condition)
		if err != nil {
			return nil, err
		}
		bodyCode, err := g.lower(n.Body)
		if err != nil {
			return nil, err
		}

		var out []Code
		out = append(out, condCode...)
		out = append(out, JumpIfFalse{Cond: condAddress, Label: label})
		out = append(out, bodyCode...)
		out = append(out, Label{Name: label})
		return out, nil

	case *ast.For:
		g.logger.Trace("Generating code for for statement")
		id := g.symbols.NewForLabels()
		before := fmt.Sprintf("for_before_%d", id)
		after := fmt.Sprintf("for_after_%d", id)

		initCode, err := g.lower(n.Init)
		if err != nil {
			return nil, err
		}
		condAddress, condCode, err := g.extractValue(n.Condition)
		if err != nil {
			return nil, err
		}
		bodyCode, err := g.lower(n.Body)
		if err != nil {
			return nil, err
		}
		postCode, err := g.lower(n.Post)
		if err != nil {
			return nil, err
		}

		var out []Code
		out = append(out, initCode...)
		out = append(out, Label{Name: before})
		out = append(out, condCode...)
		out = append(out, JumpIfFalse{Cond: condAddress, Label: after})
		out = append(out, bodyCode...)
		out = append(out, postCode...)
		out = append(out, Jump{Label: before})
		out = append(out, Label{Name: after})
		return out, nil

	case *ast.Relation, *ast.BinaryOperation, *ast.UnaryOperation, *ast.Identifier:
		g.logger.Trace("Generating code for valuable")
		_, out, err := g.extractValue(n)
		return out, err

	case ast.TypeNode, *ast.Constant:
		return nil, compileerr.New("irgen", "cannot generate code for a bare %T at statement level", node)

	default:
		return nil, compileerr.New("irgen", "unrecognized node %T", node)
	}
}

// extractValue lowers an expression node to the Address that holds
// its result, plus whatever code must run first to make that address
// valid.
func (g *generator) extractValue(node ast.SyntaxComponent) (Address, []Code, error) {
	switch n := node.(type) {
	case *ast.Constant:
		if n.IsBoolean {
			g.logger.Trace("extracting address for a boolean")
			if n.Boolean {
				return ConstAddress(1.0), nil, nil
			}
			return ConstAddress(0.0), nil, nil
		}
		g.logger.Trace("extracting address for a float")
		return ConstAddress(n.Number), nil, nil

	case *ast.Identifier:
		g.logger.Trace("extracting address for an identifier")
		addr, ok := g.symbols.Lookup(n.Name)
		if !ok {
			return Address{}, nil, compileerr.New("irgen", "undeclared identifier %s", n.Name)
		}
		return addr, nil, nil

	case *ast.BinaryOperation:
		return g.extractBinary(n)

	case *ast.UnaryOperation:
		return g.extractUnary(n)

	case *ast.Relation:
		return g.extractRelation(n)

	default:
		return Address{}, nil, compileerr.New("irgen", "cannot extract a value address from %T", node)
	}
}

// compoundTarget lowers the left-hand side of a compound-assignment
// operator, requiring it to be an already-bound identifier.
func (g *generator) compoundTarget(left ast.SyntaxComponent) (Address, error) {
	id, ok := left.(*ast.Identifier)
	if !ok {
		return Address{}, compileerr.New("irgen", "compound assignment target must be an identifier")
	}
	addr, ok := g.symbols.Lookup(id.Name)
	if !ok {
		return Address{}, compileerr.New("irgen", "undeclared identifier %s", id.Name)
	}
	return addr, nil
}

func (g *generator) extractBinary(n *ast.BinaryOperation) (Address, []Code, error) {
	switch n.Operator {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH:
		g.logger.Trace("extracting address for %s", arithmeticTraceName(n.Operator))
		leftAddr, leftCode, err := g.extractValue(n.Left)
		if err != nil {
			return Address{}, nil, err
		}
		rightAddr, rightCode, err := g.extractValue(n.Right)
		if err != nil {
			return Address{}, nil, err
		}
		result := g.symbols.NewTemp()
		out := append([]Code{}, leftCode...)
		out = append(out, rightCode...)
		out = append(out, ThreeAddress{Op: arithmeticOp(n.Operator), Operand1: leftAddr, Operand2: rightAddr, Result: result})
		return result, out, nil

	case token.INCREASE_BY, token.DECREASE_BY, token.MULTIPLY_BY, token.DIVIDE_BY:
		g.logger.Trace("extracting address for %s", compoundTraceName(n.Operator))
		targetAddr, err := g.compoundTarget(n.Left)
		if err != nil {
			return Address{}, nil, err
		}
		valueAddr, valueCode, err := g.extractValue(n.Right)
		if err != nil {
			return Address{}, nil, err
		}
		out := append([]Code{}, valueCode...)
		// DecreaseBy/DivideBy are corrected here to emit Sub/Div: the
		// original source's evident intent, not its Add/Mul output on
		// some paths. See the design ledger for the exact bug sites.
		out = append(out, ThreeAddress{Op: compoundOp(n.Operator), Operand1: targetAddr, Operand2: valueAddr, Result: targetAddr})
		return targetAddr, out, nil

	default:
		return Address{}, nil, compileerr.New("irgen", "unrecognized binary operator %s", n.Operator)
	}
}

func arithmeticOp(op token.Type) Op {
	switch op {
	case token.PLUS:
		return Add
	case token.MINUS:
		return Sub
	case token.STAR:
		return Mul
	default:
		return Div
	}
}

func arithmeticTraceName(op token.Type) string {
	switch op {
	case token.PLUS:
		return "an addition"
	case token.MINUS:
		return "a subtraction operation"
	case token.STAR:
		return "a multiplication operation"
	default:
		return "a division operation"
	}
}

func compoundTraceName(op token.Type) string {
	switch op {
	case token.INCREASE_BY:
		return "an increment operation"
	case token.DECREASE_BY:
		return "a decrement operation"
	case token.MULTIPLY_BY:
		return "a multiplication operation"
	default:
		return "a division operation"
	}
}

func compoundOp(op token.Type) Op {
	switch op {
	case token.INCREASE_BY:
		return Add
	case token.DECREASE_BY:
		return Sub
	case token.MULTIPLY_BY:
		return Mul
	default:
		return Div
	}
}

func (g *generator) extractUnary(n *ast.UnaryOperation) (Address, []Code, error) {
	switch n.Operator {
	case token.INCREMENT, token.DECREMENT:
		if n.Operator == token.DECREMENT {
			g.logger.Trace("extracting address for a unary decrement operation")
		} else {
			g.logger.Trace("extracting address for a unary increment operation")
		}
		targetAddr, err := g.compoundTarget(n.Operand)
		if err != nil {
			return Address{}, nil, err
		}
		op := Add
		if n.Operator == token.DECREMENT {
			op = Sub
		}
		out := []Code{ThreeAddress{Op: op, Operand1: targetAddr, Operand2: ConstAddress(1.0), Result: targetAddr}}
		return targetAddr, out, nil

	case token.NOT:
		g.logger.Trace("extracting address for a unary negation operation")
		operandAddr, operandCode, err := g.extractValue(n.Operand)
		if err != nil {
			return Address{}, nil, err
		}
		// Corrected: allocate a fresh temporary rather than writing
		// back through the operand, which '!' (Boolean -> Boolean)
		// never mutates.
		result := g.symbols.NewTemp()
		out := append([]Code{}, operandCode...)
		out = append(out, ThreeAddress{Op: Neg, Operand1: operandAddr, Result: result})
		return result, out, nil

	default:
		return Address{}, nil, compileerr.New("irgen", "unrecognized unary operator %s", n.Operator)
	}
}

func (g *generator) extractRelation(n *ast.Relation) (Address, []Code, error) {
	g.logger.Trace("extracting address for %s", relationTraceName(n.Operator))
	leftAddr, leftCode, err := g.extractValue(n.Left)
	if err != nil {
		return Address{}, nil, err
	}
	rightAddr, rightCode, err := g.extractValue(n.Right)
	if err != nil {
		return Address{}, nil, err
	}
	op, err := relationOp(n.Operator)
	if err != nil {
		return Address{}, nil, err
	}
	result := g.symbols.NewTemp()
	out := append(append([]Code{}, leftCode...), rightCode...)
	out = append(out, ThreeAddress{Op: op, Operand1: leftAddr, Operand2: rightAddr, Result: result})
	return result, out, nil
}

func relationTraceName(typ token.Type) string {
	switch typ {
	case token.GT:
		return "a greater than operation"
	case token.GTE:
		return "a greater than or equal operation"
	case token.LT:
		return "a less than operation"
	case token.LTE:
		return "a less than or equal operation"
	case token.EQ:
		return "an equals operation"
	default:
		return "a not-equal-to operation"
	}
}

func relationOp(typ token.Type) (Op, error) {
	switch typ {
	case token.GT:
		return GT, nil
	case token.GTE:
		return GTE, nil
	case token.LT:
		return LT, nil
	case token.LTE:
		return LTE, nil
	case token.EQ:
		return EQ, nil
	case token.NEQ:
		return NEQ, nil
	default:
		return 0, compileerr.New("irgen", "unrecognized relational operator %s", typ)
	}
}
