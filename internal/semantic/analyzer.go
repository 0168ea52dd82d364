// Package semantic implements the single-pass type checker: a
// recursive traversal that computes a ReturnType for every node and
// rejects type mismatches, undeclared identifiers and non-identifier
// targets of '=', '++' and '--'.
package semantic

import (
	"github.com/tacscript/tac/internal/ast"
	"github.com/tacscript/tac/internal/compileerr"
	"github.com/tacscript/tac/internal/token"
)

// ReturnType is the result type computed for a node.
type ReturnType int

const (
	Void ReturnType = iota
	Number
	Boolean
)

func (r ReturnType) String() string {
	switch r {
	case Number:
		return "num"
	case Boolean:
		return "bool"
	default:
		return "void"
	}
}

func fromTypeKind(k ast.TypeKind) ReturnType {
	if k == ast.BooleanType {
		return Boolean
	}
	return Number
}

// Analyzer walks the AST once, threading a SymbolTable that is
// cloned on every block entry.
type Analyzer struct {
	symbols *SymbolTable
}

// NewAnalyzer returns an Analyzer with an empty top-level scope.
func NewAnalyzer() *Analyzer {
	return &Analyzer{symbols: NewSymbolTable()}
}

// Analyze type-checks the program rooted at root and returns the first
// error encountered, or nil for a well-typed program.
func Analyze(root ast.SyntaxComponent) error {
	a := NewAnalyzer()
	_, err := a.analyze(root)
	return err
}

func (a *Analyzer) analyze(node ast.SyntaxComponent) (ReturnType, error) {
	switch n := node.(type) {
	case ast.Null:
		return Void, nil

	case *ast.Sequence:
		saved := a.symbols
		a.symbols = saved.Clone()
		defer func() { a.symbols = saved }()
		for _, stmt := range n.Statements {
			if _, err := a.analyze(stmt); err != nil {
				return Void, err
			}
		}
		return Void, nil

	case *ast.If:
		condType, err := a.analyze(n.Condition)
		if err != nil {
			return Void, err
		}
		if condType != Boolean {
			return Void, compileerr.New("semantic", "if condition must be bool, got %s", condType)
		}
		if _, err := a.analyze(n.Body); err != nil {
			return Void, err
		}
		return Void, nil

	case *ast.For:
		initType, err := a.analyze(n.Init)
		if err != nil {
			return Void, err
		}
		if initType != Void {
			return Void, compileerr.New("semantic", "for-loop initializer must not produce a value, got %s", initType)
		}
		condType, err := a.analyze(n.Condition)
		if err != nil {
			return Void, err
		}
		if condType != Boolean {
			return Void, compileerr.New("semantic", "for condition must be bool, got %s", condType)
		}
		postType, err := a.analyze(n.Post)
		if err != nil {
			return Void, err
		}
		if postType != Void {
			return Void, compileerr.New("semantic", "for-loop post-statement must not produce a value, got %s", postType)
		}
		if _, err := a.analyze(n.Body); err != nil {
			return Void, err
		}
		return Void, nil

	case *ast.Declaration:
		declType := fromTypeKind(n.Type.Kind)
		if _, isNull := n.Initializer.(ast.Null); !isNull {
			initType, err := a.analyze(n.Initializer)
			if err != nil {
				return Void, err
			}
			if initType != declType {
				return Void, compileerr.New("semantic", "cannot initialize %s %s with %s value", n.Type.Kind, n.Name, initType)
			}
		}
		a.symbols.Define(n.Name, n.Type.Kind)
		return Void, nil

	case *ast.Assignment:
		target, ok := n.Target.(*ast.Identifier)
		if !ok {
			return Void, compileerr.New("semantic", "assignment target must be an identifier")
		}
		targetType, err := a.analyze(target)
		if err != nil {
			return Void, err
		}
		valueType, err := a.analyze(n.Value)
		if err != nil {
			return Void, err
		}
		if targetType != valueType {
			return Void, compileerr.New("semantic", "cannot assign %s to %s %s", valueType, targetType, target.Name)
		}
		return Void, nil

	case *ast.Relation:
		leftType, err := a.analyze(n.Left)
		if err != nil {
			return Void, err
		}
		rightType, err := a.analyze(n.Right)
		if err != nil {
			return Void, err
		}
		if leftType != rightType {
			return Void, compileerr.New("semantic", "relational operands must have the same type, got %s and %s", leftType, rightType)
		}
		return Boolean, nil

	case *ast.BinaryOperation:
		leftType, err := a.analyze(n.Left)
		if err != nil {
			return Void, err
		}
		rightType, err := a.analyze(n.Right)
		if err != nil {
			return Void, err
		}
		if leftType != Number || rightType != Number {
			return Void, compileerr.New("semantic", "arithmetic operands must be num, got %s and %s", leftType, rightType)
		}
		return Number, nil

	case *ast.UnaryOperation:
		operandType, err := a.analyze(n.Operand)
		if err != nil {
			return Void, err
		}
		switch n.Operator {
		case token.INCREMENT, token.DECREMENT:
			if _, ok := n.Operand.(*ast.Identifier); !ok {
				return Void, compileerr.New("semantic", "%s target must be an identifier", n.Operator)
			}
			if operandType != Number {
				return Void, compileerr.New("semantic", "%s operand must be num, got %s", n.Operator, operandType)
			}
			return Void, nil
		case token.NOT:
			if operandType != Boolean {
				return Void, compileerr.New("semantic", "! operand must be bool, got %s", operandType)
			}
			return Boolean, nil
		default:
			return Void, compileerr.New("semantic", "unrecognized unary operator %s", n.Operator)
		}

	case *ast.Constant:
		if n.IsBoolean {
			return Boolean, nil
		}
		return Number, nil

	case *ast.Identifier:
		sym, ok := a.symbols.Lookup(n.Name)
		if !ok {
			return Void, compileerr.New("semantic", "undeclared identifier %s", n.Name)
		}
		return fromTypeKind(sym.Type), nil

	case ast.TypeNode:
		return Void, nil

	default:
		return Void, compileerr.New("semantic", "unrecognized node %T", node)
	}
}
