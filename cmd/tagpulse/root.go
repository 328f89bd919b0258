package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// NewRootCmd creates the root command for tagpulse.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tagpulse",
		Short: "Directional sentiment read on a hashtag's public posts",
		Long: `tagpulse drives a remote Browserbase browser session through an X hashtag
search, extracts a deduplicated set of posts, scores each for stance
(positive/negative/neutral), ranks discussion themes, and writes a labeled
CSV dataset plus a one-sentence summary.

Credentials come from the environment or a .env file:
  BROWSERBASE_API_KEY     (required)
  BROWSERBASE_PROJECT_ID  (required)
  BROWSERBASE_CONTEXT_ID  (optional; created and reported when absent)`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewHistoryCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
