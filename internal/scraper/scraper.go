// Package scraper loads hashtag search results in the remote browser and
// extracts a deduplicated, ordered set of posts from the rendered page.
//
// Extraction is split in two: a single JS evaluation captures a raw
// Snapshot of the content tree, and a pure pass over that snapshot does
// normalization, author recovery, and deduplication. The pure pass is where
// all the extraction rules live, so it can be exercised without a browser.
package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"tagpulse/internal/types"
)

// Extraction limits. Structured containers are richer, so fewer are needed;
// bare fragments get a slightly higher cap.
const (
	maxContainers = 180
	maxFragments  = 200

	// minTextLen filters out fragments too short to carry a readable
	// opinion (UI chrome, counters, truncated quotes).
	minTextLen = 20

	// dedupPrefixLen is how much normalized text participates in the
	// dedup key. Incremental loading re-renders the same posts with
	// trailing differences (counters, "Show more"), so only a prefix is
	// stable.
	dedupPrefixLen = 80
)

var (
	handleRe     = regexp.MustCompile(`@\w{1,15}`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Container is the raw content of one post container, as rendered.
type Container struct {
	LangTexts []string `json:"langTexts"`
	UserBlock string   `json:"userBlock"`
	FullText  string   `json:"fullText"`
}

// Snapshot is the raw content tree captured from the page in one pass.
// Fragments is only populated when no structured containers exist.
type Snapshot struct {
	Containers []Container `json:"containers"`
	Fragments  []string    `json:"fragments"`
}

// snapshotJS captures post containers (articles holding language-tagged
// text) in document order, falling back to bare language-tagged fragments
// when the page exposes no article structure.
const snapshotJS = `
	(function() {
		const containers = [];
		document.querySelectorAll('article').forEach(el => {
			const langs = el.querySelectorAll('div[lang]');
			if (langs.length === 0) return;
			const texts = [];
			langs.forEach(l => texts.push(l.innerText || ''));
			const user = el.querySelector("div[data-testid='User-Name']");
			containers.push({
				langTexts: texts,
				userBlock: user ? (user.innerText || '') : '',
				fullText: el.innerText || ''
			});
		});

		const fragments = [];
		if (containers.length === 0) {
			document.querySelectorAll('div[lang]').forEach(d => {
				fragments.push(d.innerText || '');
			});
		}

		return {containers, fragments};
	})()
`

// Capture pulls a Snapshot of the currently rendered content tree.
func Capture(page Page) (Snapshot, error) {
	var snap Snapshot
	if err := page.Evaluate(snapshotJS, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to capture content tree: %w", err)
	}
	return snap, nil
}

// ScrapePosts captures the rendered content tree and extracts posts from it.
func ScrapePosts(page Page) ([]types.Post, error) {
	snap, err := Capture(page)
	if err != nil {
		return nil, err
	}
	return Extract(snap), nil
}

// Extract turns a snapshot into a deduplicated, ordered post sequence.
// Structured containers are preferred; bare fragments are used only when the
// page exposes no container structure at all. Output order follows document
// traversal order.
func Extract(snap Snapshot) []types.Post {
	if len(snap.Containers) > 0 {
		return extractStructured(snap.Containers)
	}
	return extractFallback(snap.Fragments)
}

// extractStructured builds posts from discrete post containers. A container
// that can't produce a usable post is skipped; one bad container never
// aborts the pass.
func extractStructured(containers []Container) []types.Post {
	posts := []types.Post{}
	seen := make(map[string]bool)

	n := len(containers)
	if n > maxContainers {
		n = maxContainers
	}

	for i := 0; i < n; i++ {
		post, ok := buildPost(containers[i])
		if !ok {
			continue
		}
		key := dedupKey(post.AuthorHandle, post.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		posts = append(posts, post)
	}
	return posts
}

// extractFallback builds posts directly from language-tagged fragments. No
// author context exists at this level, so every post carries the unknown
// sentinel.
func extractFallback(fragments []string) []types.Post {
	posts := []types.Post{}
	seen := make(map[string]bool)

	n := len(fragments)
	if n > maxFragments {
		n = maxFragments
	}

	for i := 0; i < n; i++ {
		text := normalizeWhitespace(fragments[i])
		if len(text) < minTextLen {
			continue
		}
		key := dedupKey(types.UnknownHandle, text)
		if seen[key] {
			continue
		}
		seen[key] = true
		posts = append(posts, types.Post{AuthorHandle: types.UnknownHandle, Text: text})
	}
	return posts
}

// buildPost assembles one post from a container. It reports ok=false when
// the container yields no usable text.
func buildPost(c Container) (types.Post, bool) {
	chunks := make([]string, 0, len(c.LangTexts))
	for _, t := range c.LangTexts {
		chunks = append(chunks, strings.TrimSpace(t))
	}
	text := normalizeWhitespace(strings.Join(chunks, " "))
	if len(text) < minTextLen {
		return types.Post{}, false
	}

	return types.Post{
		AuthorHandle: extractHandle(c),
		Text:         text,
	}, true
}

// extractHandle recovers the author handle, preferring the dedicated
// user-identity block and falling back to anything @-shaped in the whole
// container.
func extractHandle(c Container) string {
	if m := handleRe.FindString(c.UserBlock); m != "" {
		return m
	}
	if m := handleRe.FindString(c.FullText); m != "" {
		return m
	}
	return types.UnknownHandle
}

// dedupKey builds the composite identity used to suppress posts re-rendered
// by incremental loading.
func dedupKey(handle, text string) string {
	runes := []rune(text)
	if len(runes) > dedupPrefixLen {
		runes = runes[:dedupPrefixLen]
	}
	return handle + "::" + string(runes)
}

// normalizeWhitespace collapses runs of whitespace to single spaces and
// trims the result.
func normalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
