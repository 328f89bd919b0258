package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"tagpulse/internal/app"
	"tagpulse/internal/config"
	"tagpulse/internal/store"
	"tagpulse/internal/themes"
)

// NewRunCmd creates the run command, which performs one full batch run.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Collect, classify, and summarize posts for a hashtag",
		Long: `Run performs a single batch: open a Browserbase session, wait briefly for
a login signal (a stored context usually carries one from a prior manual
login via the Live viewer), load the hashtag's live search results, extract
and deduplicate posts, classify each for stance, rank themes, and write a
timestamped CSV plus a console report.

Examples:
  # Default read on #Tariffs
  tagpulse run

  # Different hashtag, results under ./out, archived run history
  tagpulse run --hashtag Inflation --out-dir out --archive runs.db

  # Custom theme table
  tagpulse run --themes themes.toml`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	cmd.Flags().StringP("hashtag", "t", config.DefaultHashtag, "Hashtag to search (without the #)")
	cmd.Flags().Duration("login-timeout", config.DefaultLoginTimeout, "How long to poll for a login signal")
	cmd.Flags().StringP("out-dir", "o", ".", "Directory for the exported CSV")
	cmd.Flags().String("themes", "", "TOML file overriding the built-in theme table")
	cmd.Flags().String("archive", "", "SQLite file to append this run's aggregates to")
	cmd.Flags().IntP("top-themes", "k", config.DefaultTopThemes, "How many ranked themes to mention in the summary")

	return cmd
}

func runRunCmd(cmd *cobra.Command, _ []string) error {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Config errors surface before any session is opened.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cfg.Hashtag, _ = cmd.Flags().GetString("hashtag")
	cfg.LoginTimeout, _ = cmd.Flags().GetDuration("login-timeout")
	cfg.OutDir, _ = cmd.Flags().GetString("out-dir")
	cfg.ThemesFile, _ = cmd.Flags().GetString("themes")
	cfg.ArchivePath, _ = cmd.Flags().GetString("archive")
	cfg.TopThemes, _ = cmd.Flags().GetInt("top-themes")

	table := themes.Default()
	if cfg.ThemesFile != "" {
		if table, err = themes.LoadFile(cfg.ThemesFile); err != nil {
			return err
		}
	}

	var archive *store.Store
	if cfg.ArchivePath != "" {
		if archive, err = store.New(cfg.ArchivePath); err != nil {
			return err
		}
		defer archive.Close()
	}

	return app.New(cfg, table, archive).Run(context.Background())
}
