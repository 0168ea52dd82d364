// Package tac is the public facade over the compiler's four phases:
// lexing, parsing, semantic analysis and three-address-code
// generation. It exists so that cmd/tac and external callers have a
// single import instead of reaching into internal/.
package tac

import (
	"github.com/tacscript/tac/internal/ast"
	"github.com/tacscript/tac/internal/irgen"
	"github.com/tacscript/tac/internal/lexer"
	"github.com/tacscript/tac/internal/parser"
	"github.com/tacscript/tac/internal/semantic"
	"github.com/tacscript/tac/internal/token"
)

// Tokenize lexes src in full and returns every token, including the
// trailing EOF.
func Tokenize(src string) ([]token.Token, error) {
	return lexer.New(src).Tokenize()
}

// Parse lexes and parses src, returning the root Sequence.
func Parse(src string) (*ast.Sequence, error) {
	return parser.ParseProgram(lexer.New(src))
}

// Check parses src and runs semantic analysis over the result,
// returning the checked AST.
func Check(src string) (*ast.Sequence, error) {
	prog, err := Parse(src)
	if err != nil {
		return nil, err
	}
	if err := semantic.Analyze(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

// Compile runs the full pipeline — lex, parse, type-check, generate —
// and returns the resulting three-address code.
func Compile(src string) ([]irgen.Code, error) {
	prog, err := Check(src)
	if err != nil {
		return nil, err
	}
	return irgen.Generate(prog)
}
