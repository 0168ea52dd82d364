package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacscript/tac/internal/compileerr"
	"github.com/tacscript/tac/internal/irgen"
	"github.com/tacscript/tac/internal/lexer"
	"github.com/tacscript/tac/internal/parser"
	"github.com/tacscript/tac/internal/semantic"
)

var compileExpression string

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a program to three-address code",
	Long: `Compile lexes, parses, type-checks and lowers a program to
three-address code, printing the resulting instruction sequence to
standard output.

This is the same pipeline the root command runs with no subcommand;
it exists under its own name for scripts that prefer an explicit verb.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&compileExpression, "eval", "e", "", "compile inline code instead of reading from a file or stdin")
}

// runCompile implements the shared root/compile pipeline: read source,
// run it through the lexer, parser, semantic analyser and IR
// generator in turn, and disassemble the result to stdout. Any phase
// error is logged at error level and turned into a non-zero exit.
func runCompile(cmd *cobra.Command, args []string) error {
	applyVerbosity(cmd)
	logger := compileerr.NewLogger()

	logger.Trace("Starting input from standard input")
	input, err := readSource(compileExpression, args)
	if err != nil {
		return err
	}

	logger.Trace("Staring lexical analysis")
	l := lexer.New(input)
	prog, err := parser.ParseProgram(l)
	if err != nil {
		logger.Error("parse error: %v", err)
		return fmt.Errorf("parsing failed")
	}
	logger.Trace("Lexical analysis completed")

	if err := semantic.Analyze(prog); err != nil {
		logger.Error("semantic error: %v", err)
		return fmt.Errorf("semantic analysis failed")
	}

	code, err := irgen.Generate(prog)
	if err != nil {
		logger.Error("code generation error: %v", err)
		return fmt.Errorf("code generation failed")
	}

	return irgen.NewDisassembler(os.Stdout).Disassemble(code)
}
