package types

// UnknownHandle is the sentinel author handle used when no handle can be
// recovered for a post.
const UnknownHandle = "@unknown"

// Stance is the coarse sentiment label assigned to a single post.
type Stance string

const (
	StancePositive Stance = "positive"
	StanceNegative Stance = "negative"
	StanceNeutral  Stance = "neutral"
)

// Post represents a scraped X post: an author handle and the
// whitespace-normalized post text.
type Post struct {
	AuthorHandle string `json:"author_handle"`
	Text         string `json:"text"`
}

// ClassifiedPost is a Post with its stance attached. Not mutated after
// classification.
type ClassifiedPost struct {
	Post
	Stance Stance `json:"stance"`
}

// Counts tallies classified posts per stance. The zero value is a valid
// empty tally with all three stances present at zero.
type Counts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Add increments the tally for the given stance.
func (c *Counts) Add(s Stance) {
	switch s {
	case StancePositive:
		c.Positive++
	case StanceNegative:
		c.Negative++
	default:
		c.Neutral++
	}
}

// Total returns the number of classified posts in the tally.
func (c Counts) Total() int {
	return c.Positive + c.Negative + c.Neutral
}
