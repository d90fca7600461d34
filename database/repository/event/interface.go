package eventRepo

import (
	"context"

	"joino/models"
)

// EventRepository is the storage surface the feed pipeline consumes.
// Implementations must return upcoming events date-ascending, with ended
// and canceled events already filtered out, since the ranker relies on
// that upstream order for its stable sorts.
type EventRepository interface {
	// FetchUpcoming returns active events dated today or later, oldest
	// first. search optionally narrows by title or location substring.
	FetchUpcoming(ctx context.Context, today models.Date, search string) ([]models.Event, error)

	// GetByID returns one event, or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*models.Event, error)

	// DistinctTags lists every tag present on upcoming events.
	DistinctTags(ctx context.Context) ([]string, error)
}
