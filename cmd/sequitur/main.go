// sequitur is a console driver over grammar.Engine: it builds a grammar
// from a file's byte content and reports on the result.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// sessionID tags one invocation's output, so a batch of runs can be
// correlated in a log even though this tool writes no log of its own.
var sessionID = uuid.New().String()

var rootCmd = &cobra.Command{
	Use:   "sequitur",
	Short: "Build and inspect Sequitur grammars over file content",
}

func main() {
	rootCmd.AddCommand(statsCmd, rulesCmd, compressCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
