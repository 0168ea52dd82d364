package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tac",
	Short: "A three-address-code compiler for a small C-like expression language",
	Long: `tac lexes, parses, type-checks and lowers a small C-like language
(num/bool declarations, if/for, arithmetic, relational and compound
assignment) into three-address code.

With no subcommand, it reads source from standard input until EOF and
prints the generated instruction sequence to standard output, one
record per line. Use the lex and parse subcommands to inspect earlier
phases of the pipeline.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runCompile,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// applyVerbosity raises the TAC_LOG floor to at least debug when the
// --verbose persistent flag is set, so every compileerr.Logger built
// for the remainder of this invocation (by this command and by the
// parser/irgen packages it calls into) picks up the raised threshold.
// It never lowers an explicit TAC_LOG=trace already present in the
// environment.
func applyVerbosity(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TAC_LOG"))) {
	case "debug", "trace":
		return
	}
	os.Setenv("TAC_LOG", "debug")
}
