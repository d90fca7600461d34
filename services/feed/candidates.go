package feed

import (
	"fmt"
	"sort"
	"strings"

	"joino/models"
)

const (
	// maxShelfSize caps every candidate shelf.
	maxShelfSize = 5
	// nearbyShelfMaxKm bounds the "nearby" shelf, tighter than the
	// near-me primary view.
	nearbyShelfMaxKm = 20
	// trendingMinAttending is the attendance floor for "trending".
	trendingMinAttending = 5
)

// BuildCandidates derives the recommendation shelves from the full event
// pool. Events already placed in the primary feed are excluded so nothing
// appears twice on one screen, and a shelf below its minimum population is
// dropped entirely rather than rendered half-empty.
//
// Shelves are appended in evaluation order (city, interests, nearby,
// trending, suggested); the mixer re-ranks by score where it matters.
func BuildCandidates(pool []models.Event, profile *models.User, primaryIDs map[string]bool) []models.Candidate {
	var candidates []models.Candidate

	notInPrimary := func(ev *models.Event) bool {
		return !primaryIDs[ev.ID]
	}

	if profile != nil && profile.City != "" {
		city := strings.ToLower(profile.City)
		var cityEvents []models.Event
		for _, ev := range pool {
			if notInPrimary(&ev) && strings.Contains(strings.ToLower(ev.Location), city) {
				cityEvents = append(cityEvents, ev)
			}
		}
		cityEvents = capShelf(cityEvents)
		if len(cityEvents) >= 3 {
			candidates = append(candidates, models.Candidate{
				Type:   models.CandidatePopularCity,
				Title:  fmt.Sprintf("Popular in %s", profile.City),
				Events: cityEvents,
				Score:  100 + 5*float64(len(cityEvents)),
			})
		}
	}

	if profile.HasInterests() {
		if best, tag := bestInterestShelf(pool, profile.InterestedTags, notInPrimary); len(best) >= 2 {
			candidates = append(candidates, models.Candidate{
				Type:   models.CandidateInterestBased,
				Title:  fmt.Sprintf("Because you like %s", tag),
				Events: best,
				Score:  90 + 8*float64(len(best)),
			})
		}
	}

	if profile != nil && profile.Location != nil {
		nearby := nearbyShelf(pool, *profile.Location, notInPrimary)
		if len(nearby) >= 3 {
			candidates = append(candidates, models.Candidate{
				Type:   models.CandidateNearby,
				Title:  "Happening near you",
				Events: nearby,
				Score:  85 + 6*float64(len(nearby)),
			})
		}
	}

	var trending []models.Event
	for _, ev := range pool {
		if notInPrimary(&ev) && ev.AttendingCount >= trendingMinAttending {
			trending = append(trending, ev)
		}
	}
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].AttendingCount > trending[j].AttendingCount
	})
	trending = capShelf(trending)
	if len(trending) >= 3 {
		candidates = append(candidates, models.Candidate{
			Type:   models.CandidateTrending,
			Title:  "Trending now",
			Events: trending,
			Score:  70 + 4*float64(len(trending)),
		})
	}

	var suggested []models.Event
	for _, ev := range pool {
		if notInPrimary(&ev) {
			suggested = append(suggested, ev)
		}
	}
	suggested = capShelf(suggested)
	if len(suggested) >= 3 {
		candidates = append(candidates, models.Candidate{
			Type:   models.CandidateSuggested,
			Title:  "Suggested for you",
			Events: suggested,
			Score:  50 + 2*float64(len(suggested)),
		})
	}

	return candidates
}

// bestInterestShelf tries every declared interest and keeps the one with
// the most matching events outside the primary feed. Ties keep the
// earliest-declared interest.
func bestInterestShelf(pool []models.Event, interests []string, include func(*models.Event) bool) ([]models.Event, string) {
	var best []models.Event
	var bestTag string
	for _, interest := range interests {
		var matched []models.Event
		for _, ev := range pool {
			if include(&ev) && ev.HasTag(interest) {
				matched = append(matched, ev)
			}
		}
		if len(matched) > len(best) {
			best = matched
			bestTag = interest
		}
	}
	return capShelf(best), bestTag
}

func nearbyShelf(pool []models.Event, origin models.GeoPoint, include func(*models.Event) bool) []models.Event {
	type scored struct {
		ev       models.Event
		distance float64
	}
	var within []scored
	for _, ev := range pool {
		if !include(&ev) {
			continue
		}
		if d := distanceTo(origin, &ev); d < nearbyShelfMaxKm {
			within = append(within, scored{ev: ev, distance: d})
		}
	}
	sort.SliceStable(within, func(i, j int) bool {
		return within[i].distance < within[j].distance
	})

	out := make([]models.Event, 0, len(within))
	for _, s := range within {
		out = append(out, s.ev)
	}
	return capShelf(out)
}

func capShelf(events []models.Event) []models.Event {
	if len(events) > maxShelfSize {
		return events[:maxShelfSize]
	}
	return events
}
