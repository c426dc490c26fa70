// Package cli provides the Cobra command structure for discolog.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/chatlogkit/discolog/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root discolog command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "discolog",
		Short: "Render Discord chat markdown to HTML or plain text",
		Long: `discolog renders Discord-flavored markdown the way the client does:
with an ordered set of regular-expression matchers applied sequentially
instead of a grammar, so ambiguous nesting comes out exactly as it does
in the app.

Mentions, custom emoji and timestamps resolve against an offline guild
metadata file, letting chat logs render without any network access.`,
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
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(&color))
	rootCmd.AddCommand(newExtractCommand(&color))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
