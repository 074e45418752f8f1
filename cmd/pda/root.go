package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/atlekbai/pushdown/internal/logging"
)

// newRootCmd builds the command tree. Output goes to stdout, logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pda",
		Short:         "pda runs built-in pushdown automata over words",
		Long:          `pda drives the pushdown engine over words for a set of built-in languages, printing verdicts, step traces and run metrics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored log output")

	rootCmd.AddCommand(newListCmd(), newDescribeCmd(), newRunCmd())
	return rootCmd
}

// commandLogger builds the logger configured by the persistent flags.
func commandLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	noColor, _ := cmd.Flags().GetBool("no-color")

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return logging.New(cmd.ErrOrStderr(), level, noColor), nil
}

// Execute runs the root command with the process arguments.
func Execute() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
