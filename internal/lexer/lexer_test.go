package lexer

import (
	"testing"

	"github.com/tacscript/tac/internal/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := New(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}
	return toks
}

func assertTypes(t *testing.T, toks []token.Token, want ...token.Type) {
	t.Helper()
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Type, typ)
		}
	}
}

func TestOperatorLattice(t *testing.T) {
	src := "= == != < <= > >= ! + - * / ++ -- += -= *= /="
	toks := tokenize(t, src)
	assertTypes(t, toks,
		token.ASSIGN, token.EQ, token.NEQ, token.LT, token.LTE, token.GT, token.GTE,
		token.NOT, token.PLUS, token.MINUS, token.STAR, token.SLASH,
		token.INCREMENT, token.DECREMENT, token.INCREASE_BY, token.DECREASE_BY,
		token.MULTIPLY_BY, token.DIVIDE_BY, token.EOF,
	)
}

func TestOperatorsWithoutWhitespace(t *testing.T) {
	// no space separates operands from operators: each must still
	// commit at the correct boundary.
	toks := tokenize(t, "a=1+2;")
	assertTypes(t, toks,
		token.IDENTIFIER, token.ASSIGN, token.CONSTANT, token.PLUS,
		token.CONSTANT, token.SEMICOLON, token.EOF,
	)
}

func TestMultiDigitNumberAfterAssign(t *testing.T) {
	// regression for the guard-pattern bug: a multi-digit number must
	// not be split into single-character tokens after '='.
	toks := tokenize(t, "x=123;")
	if toks[2].Type != token.CONSTANT || toks[2].Number != 123 {
		t.Fatalf("expected CONSTANT(123), got %+v", toks[2])
	}
}

func TestLineComment(t *testing.T) {
	toks := tokenize(t, "num x; // this is a comment\nx = 1;")
	assertTypes(t, toks,
		token.NUMTYPE, token.IDENTIFIER, token.SEMICOLON,
		token.IDENTIFIER, token.ASSIGN, token.CONSTANT, token.SEMICOLON, token.EOF,
	)
}

func TestBlockComment(t *testing.T) {
	toks := tokenize(t, "num /* inline ** comment */ x;")
	assertTypes(t, toks, token.NUMTYPE, token.IDENTIFIER, token.SEMICOLON, token.EOF)
}

func TestUnterminatedBlockCommentErrors(t *testing.T) {
	_, err := New("num x; /* oops").Tokenize()
	if err == nil {
		t.Fatal("expected error for unterminated block comment")
	}
}

func TestNumberParsing(t *testing.T) {
	tests := []struct {
		src  string
		want float32
	}{
		{"123.4", 123.4},
		{"42", 42.0},
	}
	for _, tt := range tests {
		toks := tokenize(t, tt.src)
		if len(toks) != 2 || toks[0].Type != token.CONSTANT {
			t.Fatalf("tokenize(%q) = %v, want single CONSTANT", tt.src, toks)
		}
		if toks[0].Number != tt.want {
			t.Errorf("tokenize(%q).Number = %v, want %v", tt.src, toks[0].Number, tt.want)
		}
	}
}

func TestDanglingDecimalPointErrors(t *testing.T) {
	_, err := New("1. x").Tokenize()
	if err == nil {
		t.Fatal("expected error for dangling '.'")
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := tokenize(t, "if for true false num bool foobar")
	assertTypes(t, toks,
		token.IF, token.FOR, token.TRUE, token.FALSE, token.NUMTYPE, token.BOOLTYPE,
		token.IDENTIFIER, token.EOF,
	)
	if toks[6].Literal != "foobar" {
		t.Errorf("identifier literal = %q, want %q", toks[6].Literal, "foobar")
	}
}

func TestFullProgram(t *testing.T) {
	src := `
num x;
x = 0;
for (x = 0; x < 10; x += 1) {
    if (x == 5) {
        bool done;
    }
}
`
	toks := tokenize(t, src)
	if toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("expected trailing EOF, got %v", toks[len(toks)-1])
	}
	if toks[0].Type != token.NUMTYPE {
		t.Fatalf("expected first token NUMTYPE, got %v", toks[0])
	}
}

func TestInvalidCharacterErrors(t *testing.T) {
	_, err := New("num x = @;").Tokenize()
	if err == nil {
		t.Fatal("expected error for unexpected character")
	}
}

func TestInvalidOperatorCombinationErrors(t *testing.T) {
	_, err := New("x *< y;").Tokenize()
	if err == nil {
		t.Fatal("expected error for '*<' which is not a valid token")
	}
}
