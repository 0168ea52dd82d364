package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacscript/tac/internal/lexer"
	"github.com/tacscript/tac/internal/parser"
)

var parseExpression string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a program and display the syntax tree",
	Long: `Parse a program and display its syntax tree.

If no file is provided, reads from stdin.
Use -e to parse inline source code given on the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpression, "eval", "e", "", "parse inline code instead of reading from a file or stdin")
}

func runParse(cmd *cobra.Command, args []string) error {
	applyVerbosity(cmd)

	input, err := readSource(parseExpression, args)
	if err != nil {
		return err
	}

	program, err := parser.ParseProgram(lexer.New(input))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		return fmt.Errorf("parsing failed")
	}

	fmt.Println(program.String())
	return nil
}
