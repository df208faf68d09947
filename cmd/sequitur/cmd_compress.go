package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var compressOut string

var compressCmd = &cobra.Command{
	Use:   "compress <file>",
	Short: "Write a file's Sequitur grammar as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompress,
}

func init() {
	compressCmd.Flags().StringVarP(&compressOut, "output", "o", "", "output file name, default is stdout")
}

type ruleJSON struct {
	ID       uint32    `json:"id"`
	Top      bool      `json:"top,omitempty"`
	UseCount int       `json:"use_count"`
	Body     []symJSON `json:"body"`
}

type symJSON struct {
	Terminal *int    `json:"terminal,omitempty"`
	RuleRef  *uint32 `json:"rule_ref,omitempty"`
}

func runCompress(cmd *cobra.Command, args []string) error {
	e, err := buildEngine(args[0])
	if err != nil {
		return err
	}

	v := e.Rules()
	var rules []ruleJSON
	for _, id := range v.IDs() {
		count, _ := v.UseCount(id)
		syms, _ := v.Symbols(id)

		var body []symJSON
		for _, s := range syms {
			if s.IsTerminal {
				val := int(s.Value)
				body = append(body, symJSON{Terminal: &val})
			} else {
				ref := s.RuleRef
				body = append(body, symJSON{RuleRef: &ref})
			}
		}

		rules = append(rules, ruleJSON{
			ID:       id,
			Top:      v.IsTop(id),
			UseCount: count,
			Body:     body,
		})
	}

	content, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return err
	}
	content = append(content, '\n')

	if compressOut == "" {
		_, err = os.Stdout.Write(content)
		return err
	}
	return os.WriteFile(compressOut, content, 0o666)
}
