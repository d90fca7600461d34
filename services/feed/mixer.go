package feed

import (
	"fmt"
	"sort"

	"joino/models"
)

// insertInterval controls the mixer cadence: one recommendation shelf
// after every insertInterval-th primary item.
const insertInterval = 10

// rotationPoolSize bounds how many top-scored candidates take part in the
// headline rotation.
const rotationPoolSize = 4

// Headline picks the shelf that fronts this refresh. Candidates are
// ranked by score descending; the rotation counter walks the top
// min(4, n) so every pull-to-refresh can surface a different shelf with
// no randomness involved. Returns nil when no candidate qualifies.
func Headline(candidates []models.Candidate, rotation int) *models.Candidate {
	if len(candidates) == 0 {
		return nil
	}
	pool := make([]models.Candidate, len(candidates))
	copy(pool, candidates)
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Score > pool[j].Score
	})
	if len(pool) > rotationPoolSize {
		pool = pool[:rotationPoolSize]
	}
	selected := pool[rotation%len(pool)]
	return &selected
}

// Mix interleaves the primary list with recommendation shelves into the
// final render sequence. Each insertion point cycles through all
// qualifying candidates independently of the headline, which only serves
// as a fallback. An empty primary list yields an empty feed: shelves
// never stand alone.
func Mix(primary []models.Event, candidates []models.Candidate, rotation int) ([]models.FeedItem, *models.Candidate) {
	if len(primary) == 0 {
		return nil, nil
	}

	headline := Headline(candidates, rotation)

	items := make([]models.FeedItem, 0, len(primary)+len(primary)/insertInterval)
	for i := range primary {
		ev := primary[i]
		items = append(items, models.FeedItem{
			ID:    fmt.Sprintf("event-%s-%d", ev.ID, i),
			Kind:  models.FeedItemEvent,
			Event: &ev,
		})

		if headline == nil || (i+1)%insertInterval != 0 {
			continue
		}
		rec := headline
		if idx := (i / insertInterval) % len(candidates); idx < len(candidates) {
			rec = &candidates[idx]
		}
		items = append(items, models.FeedItem{
			ID:             fmt.Sprintf("recommendation-%d-%s", i, rec.Type),
			Kind:           models.FeedItemRecommendation,
			Recommendation: rec,
		})
	}
	return items, headline
}
