package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tagpulse/internal/config"
	"tagpulse/internal/store"
)

// NewHistoryCmd creates the history command, which lists archived run
// aggregates for a hashtag.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived run aggregates",
		Long: `History lists run aggregates previously recorded with run --archive,
newest first.

Examples:
  tagpulse history --archive runs.db
  tagpulse history --archive runs.db --hashtag Inflation --limit 5`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().String("archive", "", "SQLite run archive to read (required)")
	cmd.Flags().StringP("hashtag", "t", config.DefaultHashtag, "Hashtag to list runs for (without the #)")
	cmd.Flags().IntP("limit", "n", 10, "Maximum number of runs to list")
	_ = cmd.MarkFlagRequired("archive")

	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	archivePath, _ := cmd.Flags().GetString("archive")
	hashtag, _ := cmd.Flags().GetString("hashtag")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := store.New(archivePath)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.RecentRuns(hashtag, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Printf("No archived runs for #%s\n", hashtag)
		return nil
	}

	for _, r := range runs {
		themes := strings.Join(r.Themes, ", ")
		if themes == "" {
			themes = "-"
		}
		fmt.Printf("%s  #%s  collected=%d  +%d/-%d/=%d  skew=%s  themes: %s\n",
			r.RanAt.Format("2006-01-02 15:04"), r.Hashtag, r.Collected,
			r.Positive, r.Negative, r.Neutral, r.Skew, themes)
		fmt.Printf("    %s\n", r.Summary)
	}
	return nil
}
