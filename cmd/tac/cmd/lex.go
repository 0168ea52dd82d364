package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacscript/tac/internal/lexer"
	"github.com/tacscript/tac/internal/token"
)

var (
	evalExpr string
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a program and print the resulting tokens",
	Long: `Tokenize (lex) a program and print the resulting tokens, one per
line, terminated by EOF.

This command is useful for debugging the lexer and understanding how
source is tokenized.

Examples:
  # Tokenize a source file
  tac lex program.tac

  # Tokenize inline code
  tac lex -e "num x = 1 + 2;"

  # Tokenize standard input
  echo "num x;" | tac lex

  # Show token type names alongside each token
  tac lex --show-type program.tac`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "lex inline code instead of reading from a file or stdin")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	toks, err := lexer.New(input).Tokenize()
	if err != nil {
		return fmt.Errorf("lex: %w", err)
	}

	for _, tok := range toks {
		printToken(tok)
	}

	return nil
}

// readSource resolves the program source from, in order of
// preference: an inline -e expression, a file argument, or standard
// input read to EOF — matching the way every subcommand in this CLI
// accepts its input.
func readSource(eval string, args []string) (string, error) {
	if eval != "" {
		return eval, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(content), nil
}

func printToken(tok token.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}

	switch {
	case tok.Type == token.EOF:
		output += " EOF"
	case tok.Type == token.IDENTIFIER:
		output += fmt.Sprintf(" %q", tok.Literal)
	case tok.Type == token.CONSTANT:
		output += fmt.Sprintf(" %g", tok.Number)
	default:
		output += fmt.Sprintf(" %s", tok.Type)
	}

	fmt.Println(output)
}
