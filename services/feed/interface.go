package feed

import (
	"context"
	"errors"

	"joino/models"
)

// ErrProfileNotFound is returned when the requesting user has no profile.
var ErrProfileNotFound = errors.New("user profile not found")

// FeedPage is the assembled response for one feed request.
type FeedPage struct {
	Items    []models.FeedItem `json:"items"`
	Headline *models.Candidate `json:"headline,omitempty"`
	Rotation int               `json:"rotation"`
}

// FeedService is the exposed surface of the feed-assembly pipeline.
type FeedService interface {
	// GetFeed assembles the feed for a user. refresh bumps the user's
	// rotation counter so a different shelf can headline.
	GetFeed(ctx context.Context, userID string, filter models.FeedFilter, refresh bool) (*FeedPage, error)

	// GetOccurrences expands one event into its upcoming occurrences,
	// used by the "My events" list without the recommendation machinery.
	GetOccurrences(ctx context.Context, eventID string) ([]models.Occurrence, error)

	// ListTags returns the distinct tags present in the event corpus,
	// backing the tags bar.
	ListTags(ctx context.Context) ([]string, error)
}

// Clock supplies "today" to the pipeline. Injected so the computation is
// deterministic under test; production wiring uses SystemClock.
type Clock interface {
	Today() models.Date
}
