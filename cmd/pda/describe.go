package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlekbai/pushdown/languages"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <language>",
		Short: "Print the configuration and rules of a language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := languages.Lookup(args[0])
			if err != nil {
				return err
			}

			info := lang.Rules.Info()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", lang.Name, lang.Description)
			fmt.Fprintf(out, "initial state: %s\n", lang.Initial)
			fmt.Fprintf(out, "initial stack: %v\n", lang.Stack)
			fmt.Fprintf(out, "states: %v\n", info.States)
			fmt.Fprintf(out, "input symbols: %v\n", info.InputSymbols)
			fmt.Fprintf(out, "stack symbols: %v\n", info.StackSymbols)
			fmt.Fprintln(out, "rules:")
			for _, line := range lang.Describe() {
				fmt.Fprintf(out, "  %s\n", line)
			}
			return nil
		},
	}
}
