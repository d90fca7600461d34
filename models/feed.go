package models

// Candidate shelf types, in the order the builder evaluates them.
const (
	CandidatePopularCity   = "popular_city"
	CandidateInterestBased = "interest_based"
	CandidateNearby        = "nearby"
	CandidateTrending      = "trending"
	CandidateSuggested     = "suggested"
)

// FeedFilter selects which slice of the pool makes up the primary feed.
// The zero value is the default "All" view. NearMe takes precedence over
// Tag when both are set. Search narrows the fetched pool by title or
// location substring and combines with any view mode.
type FeedFilter struct {
	NearMe bool   `json:"nearMe,omitempty"`
	Tag    string `json:"tag,omitempty"`
	Search string `json:"search,omitempty"`
}

// IsAll reports whether no filter is active.
func (f FeedFilter) IsAll() bool {
	return !f.NearMe && f.Tag == ""
}

// Candidate is a named, scored shelf of events sharing one theme, e.g.
// "Trending now". Candidates are derived per request and discarded after
// the feed is assembled.
type Candidate struct {
	Type   string  `json:"type"`
	Title  string  `json:"title"`
	Events []Event `json:"events"`
	Score  float64 `json:"score"`
}

// FeedItem kinds.
const (
	FeedItemEvent          = "event"
	FeedItemRecommendation = "recommendation"
)

// FeedItem is one unit of the final render sequence: either a single event
// card or an inserted recommendation shelf. Exactly one of Event and
// Recommendation is set, matching Kind.
type FeedItem struct {
	ID             string     `json:"id"`
	Kind           string     `json:"kind"`
	Event          *Event     `json:"event,omitempty"`
	Recommendation *Candidate `json:"recommendation,omitempty"`
}
