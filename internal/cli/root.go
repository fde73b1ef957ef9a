// Package cli provides the Cobra command structure for gomdcore.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdcore/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gomdcore command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gomdcore",
		Short: "A Markdown parsing and HTML rendering core",
		Long: `gomdcore parses Markdown source into a block/inline element tree and
renders it to HTML5.

It implements a hand-written lexer, a context-sensitive block grouper, and
a delimiter-stack emphasis resolver, approximating CommonMark rather than
chasing strict conformance. Diagnostics the core reports along the way are
always advisory: they never change what gets rendered.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newTreeCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
