package semantic

import (
	"testing"

	"github.com/tacscript/tac/internal/lexer"
	"github.com/tacscript/tac/internal/parser"
)

func analyzeSource(t *testing.T, src string) error {
	t.Helper()
	prog, err := parser.ParseProgram(lexer.New(src))
	if err != nil {
		t.Fatalf("ParseProgram(%q) error: %v", src, err)
	}
	return Analyze(prog)
}

func TestAssignNumToBoolFails(t *testing.T) {
	err := analyzeSource(t, "bool b; b = 1;")
	if err == nil {
		t.Fatal("expected type mismatch error")
	}
}

func TestUndeclaredIdentifierFails(t *testing.T) {
	err := analyzeSource(t, "x = 1;")
	if err == nil {
		t.Fatal("expected undeclared identifier error")
	}
}

func TestNonBooleanConditionFails(t *testing.T) {
	tests := []string{
		"num x = 1; if (x) {}",
		"for (; 1; ) {}",
	}
	for _, src := range tests {
		if err := analyzeSource(t, src); err == nil {
			t.Errorf("analyzeSource(%q) expected error for non-bool condition, got none", src)
		}
	}
}

func TestBlockScopingDoesNotLeak(t *testing.T) {
	err := analyzeSource(t, "{ num x = 1; } x = 2;")
	if err == nil {
		t.Fatal("expected undeclared identifier error after block exit")
	}
}

func TestOuterBindingsVisibleInBlock(t *testing.T) {
	err := analyzeSource(t, "num x = 1; { x = 2; }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWellTypedProgram(t *testing.T) {
	src := `
num x;
x = 0;
bool done;
done = false;
for (x = 0; x < 10; x++) {
    if (x == 5) {
        done = true;
    }
}
`
	if err := analyzeSource(t, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNotOperandMustBeBool(t *testing.T) {
	err := analyzeSource(t, "num x = 1; bool b = !x;")
	if err == nil {
		t.Fatal("expected error for '!' on a num operand")
	}
}

func TestIncrementOperandMustBeNumber(t *testing.T) {
	err := analyzeSource(t, "bool b = true; b++;")
	if err == nil {
		t.Fatal("expected error for '++' on a bool operand")
	}
}

func TestCompoundAssignAsForPostIsATypeError(t *testing.T) {
	// BinaryOperation (which += lowers to) always yields Number, never
	// Void, so it cannot serve as a for-loop post-statement; only the
	// Void-yielding ++/-- unary forms can.
	err := analyzeSource(t, "num x; for (x = 0; x < 10; x += 1) {}")
	if err == nil {
		t.Fatal("expected type error using '+=' as a for-loop post-statement")
	}
}

func TestAssignmentTargetMustBeIdentifier(t *testing.T) {
	err := analyzeSource(t, "1 = 2;")
	if err == nil {
		t.Fatal("expected error for non-identifier assignment target")
	}
}
