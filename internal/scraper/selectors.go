package scraper

// X.com DOM selectors and endpoints.
// These are isolated here because X changes their DOM frequently.
// Update these when scraping breaks.

const (
	// LangText matches language-tagged text blocks, the most stable
	// marker for post content on both desktop and mobile markup.
	LangText = `div[lang]`

	// UserName matches the user-identity sub-block inside a post
	// container.
	UserName = `div[data-testid='User-Name']`
)

// Search endpoints. The mobile host serves lighter markup and is the
// fallback when the desktop page renders no content.
const (
	desktopSearchFormat = "https://x.com/search?q=%s&src=typed_query&f=live"
	mobileSearchFormat  = "https://mobile.twitter.com/search?q=%s&src=typed_query&f=live"
)
