// Package app wires the full pipeline for one batch run: provision a remote
// session, detect login, load search results, extract posts, classify,
// rank themes, aggregate, and export. Everything runs on a single task;
// each page interaction settles before the next begins.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tagpulse/internal/auth"
	"tagpulse/internal/browser"
	"tagpulse/internal/classify"
	"tagpulse/internal/config"
	"tagpulse/internal/export"
	"tagpulse/internal/report"
	"tagpulse/internal/scraper"
	"tagpulse/internal/session"
	"tagpulse/internal/store"
	"tagpulse/internal/themes"
	"tagpulse/internal/types"
)

// homeSettle is the render wait after loading the home page before login
// detection starts polling.
const homeSettle = time.Second

// App holds the pieces of one tagpulse run.
type App struct {
	cfg        *config.Config
	sessions   *session.Client
	classifier *classify.Classifier
	themes     themes.Table
	archive    *store.Store // nil when archiving is disabled
}

// New assembles an App. The classifier's lexicon setup happens here, before
// any classification call. archive may be nil.
func New(cfg *config.Config, table themes.Table, archive *store.Store) *App {
	return &App{
		cfg:        cfg,
		sessions:   session.New(cfg.APIKey),
		classifier: classify.New(),
		themes:     table,
		archive:    archive,
	}
}

// Run executes one full batch run.
func (a *App) Run(ctx context.Context) error {
	contextID := a.cfg.ContextID
	if contextID == "" {
		id, err := a.sessions.CreateContext(ctx, a.cfg.ProjectID)
		if err != nil {
			return err
		}
		contextID = id
		log.Printf("[CTX] Created Context ID: %s (add this to .env as %s)", contextID, config.EnvContextID)
	}

	sess, err := a.sessions.CreateSession(ctx, a.cfg.ProjectID, contextID)
	if err != nil {
		return err
	}
	log.Printf("[BB] Session ID: %s (open in Dashboard > Sessions > Live if you need to interact)", sess.ID)

	// Releasing the session must never mask the run's outcome.
	defer func() {
		if err := a.sessions.Release(context.Background(), a.cfg.ProjectID, sess.ID); err != nil {
			log.Printf("[BB] Session release failed (ignored): %v", err)
		} else {
			log.Println("[BB] Session released.")
		}
	}()

	page, detach, err := browser.Attach(ctx, sess.ConnectURL)
	if err != nil {
		return err
	}
	defer detach()

	return a.run(ctx, page)
}

// run drives the pipeline against an attached page. Split out from Run so
// the session plumbing stays separate from the pipeline order.
func (a *App) run(ctx context.Context, page *browser.Page) error {
	if err := page.Navigate("https://x.com/home", homeSettle); err != nil {
		return err
	}

	// Best-effort readiness signal; the run continues either way.
	auth.DetectLogin(ctx, page, a.cfg.LoginTimeout)

	if err := scraper.LoadResults(page, a.cfg.Hashtag); err != nil {
		if errors.Is(err, scraper.ErrNoContent) {
			return fmt.Errorf("still gated by X after login, refresh the Live viewer and re-run: %w", err)
		}
		return err
	}

	posts, err := scraper.ScrapePosts(page)
	if err != nil {
		return err
	}
	log.Printf("[SCRAPE] Collected %d posts", len(posts))

	classified := make([]types.ClassifiedPost, 0, len(posts))
	var counts types.Counts
	texts := make([]string, 0, len(posts))
	for _, p := range posts {
		stance := a.classifier.Classify(p.Text)
		counts.Add(stance)
		classified = append(classified, types.ClassifiedPost{Post: p, Stance: stance})
		texts = append(texts, p.Text)
	}

	ranked := a.themes.Rank(texts, a.cfg.TopThemes)
	rep := report.Build(a.cfg.Hashtag, counts, ranked)

	prefix := strings.ToLower(a.cfg.Hashtag) + "_posts"
	csvPath, err := export.WriteCSV(a.cfg.OutDir, prefix, classified)
	if err != nil {
		return err
	}

	fmt.Println("\n=== One-sentence summary ===")
	fmt.Println(rep.Summary)
	fmt.Println("\n=== Counts ===")
	fmt.Printf("positive=%d negative=%d neutral=%d\n", counts.Positive, counts.Negative, counts.Neutral)
	log.Printf("[FILE] Saved: %s", csvPath)

	if a.archive != nil {
		if _, err := a.archive.RecordRun(a.cfg.Hashtag, len(posts), rep, csvPath, time.Now().UTC()); err != nil {
			log.Printf("[ARCHIVE] Failed to record run (ignored): %v", err)
		}
	}

	return nil
}
