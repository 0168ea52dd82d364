// Command tac is the compiler's command-line entry point. See
// cmd/tac/cmd for the actual subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/tacscript/tac/cmd/tac/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
