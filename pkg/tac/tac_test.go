package tac

import (
	"testing"

	"github.com/tacscript/tac/internal/token"
)

func TestCompileWellTypedProgram(t *testing.T) {
	code, err := Compile(`
num x = 0;
for (x = 0; x < 10; x++) {
    if (x == 5) {
        x = x + 1;
    }
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) == 0 {
		t.Fatal("expected non-empty code sequence")
	}
}

func TestCompileRejectsTypeErrors(t *testing.T) {
	if _, err := Compile("bool b; b = 1;"); err == nil {
		t.Fatal("expected a type error")
	}
}

func TestCompileRejectsParseErrors(t *testing.T) {
	if _, err := Compile("num;"); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestCheckReturnsAnalyzedTree(t *testing.T) {
	prog, err := Check("num x = 1;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
}

func TestTokenizeIncludesTrailingEOF(t *testing.T) {
	toks, err := Tokenize("num x;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) == 0 || toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("expected EOF-terminated token stream, got %v", toks)
	}
}
