package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/atlekbai/pushdown"
	"github.com/atlekbai/pushdown/languages"
	"github.com/atlekbai/pushdown/metrics"
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <language> [word...]",
		Short: "Run words through a language's automaton",
		Long: `Runs every word through the automaton of the named language and prints one verdict per word.
Without words, the language's sample words are used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxSteps, _ := cmd.Flags().GetInt("max-steps")
			trace, _ := cmd.Flags().GetBool("trace")
			showMetrics, _ := cmd.Flags().GetBool("metrics")

			lang, err := languages.Lookup(args[0])
			if err != nil {
				return err
			}
			logger, err := commandLogger(cmd)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			collector, err := metrics.NewCollector(reg)
			if err != nil {
				return fmt.Errorf("register metrics: %w", err)
			}

			words := args[1:]
			if len(words) == 0 {
				words = append(append([]string{}, lang.Accepted...), lang.Rejected...)
			}

			out := cmd.OutOrStdout()
			var errs []error
			for _, word := range words {
				result, err := lang.Recognize(word, maxSteps,
					pushdown.WithLogger(logger.With("language", lang.Name, "word", word)),
					pushdown.WithObserver(collector),
				)
				if err != nil {
					logger.Error("run failed", "word", word, "error", err)
					errs = append(errs, fmt.Errorf("%q: %w", word, err))
					fmt.Fprintf(out, "%-7s %q (%d steps)\n", "limit", word, result.Steps)
					continue
				}
				printResult(out, result, trace)
			}

			if showMetrics {
				if err := writeMetrics(out, reg); err != nil {
					return err
				}
			}
			return errors.Join(errs...)
		},
	}

	runCmd.Flags().Int("max-steps", 0, "Step budget per word (0 runs to completion)")
	runCmd.Flags().Bool("trace", false, "Print every step of every run")
	runCmd.Flags().Bool("metrics", false, "Print run metrics after all words")
	return runCmd
}

func printResult(out io.Writer, result languages.Result, trace bool) {
	label := "reject"
	if result.Accepted {
		label = "accept"
	}
	fmt.Fprintf(out, "%-7s %q (%d steps)\n", label, result.Word, result.Steps)
	if trace {
		for _, line := range result.Trace {
			fmt.Fprintf(out, "        %s\n", line)
		}
	}
}

// writeMetrics prints the gathered metrics in the Prometheus text format.
func writeMetrics(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
