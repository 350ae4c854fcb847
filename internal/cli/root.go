// Package cli provides the Cobra command structure for mdprefix.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdprefix/internal/logging"
	"github.com/yaklabco/mdprefix/internal/ui/pretty"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdprefix command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdprefix",
		Short: "Show the block container markers at the start of Markdown lines",
		Long: `mdprefix reports the blockquote, list and task markers a CommonMark
block parser sees at the start of every line, with tab-expanded columns.

It scans files concurrently, summarizes marker usage, and can cross-check
its findings against goldmark with --verify.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if debug {
				level = "debug"
				logging.SetLevel(level)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logging.NewWithWriter(cmd.ErrOrStderr(), level)))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(ExitInvalidUsage, err)
	})

	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newLineCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	applyHelpStyles(rootCmd, pretty.IsColorEnabled(color, os.Stdout))

	return rootCmd
}
