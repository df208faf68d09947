package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules <file>",
	Short: "Print the rule table produced from a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	e, err := buildEngine(args[0])
	if err != nil {
		return err
	}

	v := e.Rules()
	for _, id := range v.IDs() {
		count, _ := v.UseCount(id)
		syms, _ := v.Symbols(id)

		label := fmt.Sprintf("R%d", id)
		if v.IsTop(id) {
			label = "top"
		}

		fmt.Printf("%s (uses=%d):", label, count)
		for _, s := range syms {
			if s.IsTerminal {
				fmt.Printf(" %q", rune(s.Value))
			} else {
				fmt.Printf(" R%d", s.RuleRef)
			}
		}
		fmt.Println()
	}
	return nil
}
