package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Print grammar size statistics for a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	e, err := buildEngine(args[0])
	if err != nil {
		return err
	}

	st := e.Stats()
	fmt.Printf("session: %s\n", sessionID)
	fmt.Printf("input length: %d\n", st.InputLength)
	fmt.Printf("rule count: %d\n", st.RuleCount)
	fmt.Printf("grammar symbols: %d\n", st.GrammarSymbolCount)
	fmt.Printf("compression ratio: %.4f\n", st.CompressionRatio)
	fmt.Printf("fingerprint: %016x\n", e.Fingerprint())
	return nil
}
