package ast

import (
	"strings"
	"testing"
)

func TestSequenceString(t *testing.T) {
	seq := &Sequence{Statements: []SyntaxComponent{
		&Declaration{Type: TypeNode{Kind: NumberType}, Name: "x", Initializer: Null{}},
		&Assignment{
			Target: &Identifier{Name: "x"},
			Value:  &Constant{Number: 1},
		},
	}}
	out := seq.String()
	if !strings.Contains(out, "Declaration(num x = Null)") {
		t.Errorf("expected declaration in output, got %s", out)
	}
	if !strings.Contains(out, "Assignment(Identifier(x) Constant(1))") {
		t.Errorf("expected assignment in output, got %s", out)
	}
}

func TestIfString(t *testing.T) {
	ifNode := &If{
		Condition: &Constant{IsBoolean: true, Boolean: true},
		Body:      &Sequence{},
	}
	out := ifNode.String()
	if !strings.Contains(out, "Body: Sequence") {
		t.Errorf("expected body in output, got %s", out)
	}
}

func TestConstantString(t *testing.T) {
	num := &Constant{Number: 3.5}
	if num.String() != "Constant(3.5)" {
		t.Errorf("got %s", num.String())
	}
	b := &Constant{IsBoolean: true, Boolean: true}
	if b.String() != "Constant(true)" {
		t.Errorf("got %s", b.String())
	}
}

func TestTypeKindString(t *testing.T) {
	if NumberType.String() != "num" {
		t.Errorf("got %s", NumberType.String())
	}
	if BooleanType.String() != "bool" {
		t.Errorf("got %s", BooleanType.String())
	}
}
