package scraper

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"
)

// ErrNoContent is returned when no language-tagged content is present even
// after the fallback endpoint and the full scroll procedure. It usually
// means X is still gating the session behind login.
var ErrNoContent = errors.New("no post content present after loading search results")

const (
	// settleDelay is how long the page gets to render after navigation.
	settleDelay = 1800 * time.Millisecond

	// scrollIterations bounds how much of the endless result list is
	// materialized; there is no end-of-results signal to detect.
	scrollIterations = 12

	// scrollDelay gives incremental loading time to catch up between
	// scroll triggers.
	scrollDelay = 700 * time.Millisecond
)

// Page is the slice of browser capability the loader needs.
type Page interface {
	Navigate(url string, settle time.Duration) error
	NodeCount(selector string) (int, error)
	PageDown(delay time.Duration) error
	Evaluate(js string, out any) error
}

// SearchURL returns the desktop live-search endpoint for a hashtag.
func SearchURL(hashtag string) string {
	return desktopSearchURL(hashtag)
}

func desktopSearchURL(hashtag string) string {
	return searchURL(desktopSearchFormat, hashtag)
}

func mobileSearchURL(hashtag string) string {
	return searchURL(mobileSearchFormat, hashtag)
}

func searchURL(format, hashtag string) string {
	// QueryEscape turns "#Tariffs" into "%23Tariffs".
	return fmt.Sprintf(format, url.QueryEscape("#"+hashtag))
}

// LoadResults navigates to the hashtag search, falls back to the mobile
// endpoint if the desktop page renders nothing, and scrolls a fixed number
// of times to force incremental loading. It returns ErrNoContent if no
// content marker is present once the whole procedure is done; zero usable
// posts after a successful load is not an error.
func LoadResults(page Page, hashtag string) error {
	if err := page.Navigate(desktopSearchURL(hashtag), settleDelay); err != nil {
		return err
	}

	n, err := page.NodeCount(LangText)
	if err != nil {
		return err
	}
	if n == 0 {
		log.Println("[LOAD] Desktop search rendered nothing; trying mobile endpoint")
		if err := page.Navigate(mobileSearchURL(hashtag), settleDelay); err != nil {
			return err
		}
	}

	for i := 0; i < scrollIterations; i++ {
		if err := page.PageDown(scrollDelay); err != nil {
			return err
		}
	}

	n, err = page.NodeCount(LangText)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoContent
	}
	return nil
}
