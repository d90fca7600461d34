package feed

import (
	"sort"

	"joino/models"
)

const (
	// nearMeMaxKm is the cutoff for the "Near me" view.
	nearMeMaxKm = 50
	// interestBonus dominates any plausible distance value, so an
	// interest match always outranks proximity.
	interestBonus = -200
	// missingCoordsPenaltyKm stands in for the distance of events that
	// carry no coordinates when scoring the default view.
	missingCoordsPenaltyKm = 1000
)

// Rank orders the deduplicated pool into the primary feed for the given
// filter. All sorts are stable: equal scores keep the upstream order,
// which is date-ascending from the fetch.
func Rank(pool []models.Event, profile *models.User, filter models.FeedFilter) []models.Event {
	switch {
	case filter.NearMe:
		return rankNearMe(pool, profile)
	case filter.Tag != "":
		return rankByTag(pool, filter.Tag)
	default:
		return rankDefault(pool, profile)
	}
}

// rankNearMe keeps events within nearMeMaxKm of the user, closest first.
// Events without coordinates get an infinite distance and never surface.
func rankNearMe(pool []models.Event, profile *models.User) []models.Event {
	if profile == nil || profile.Location == nil {
		return nil
	}
	origin := *profile.Location

	type scored struct {
		ev       models.Event
		distance float64
	}
	var within []scored
	for _, ev := range pool {
		d := distanceTo(origin, &ev)
		if d < nearMeMaxKm {
			within = append(within, scored{ev: ev, distance: d})
		}
	}
	sort.SliceStable(within, func(i, j int) bool {
		return within[i].distance < within[j].distance
	})

	out := make([]models.Event, len(within))
	for i, s := range within {
		out[i] = s.ev
	}
	return out
}

// rankByTag filters to events carrying the tag (case-insensitive) and
// keeps the upstream order.
func rankByTag(pool []models.Event, tag string) []models.Event {
	var out []models.Event
	for _, ev := range pool {
		if ev.HasTag(tag) {
			out = append(out, ev)
		}
	}
	return out
}

// rankDefault is the "All" view. With no interests and no location the
// pool passes through unchanged; otherwise each event gets a score of
// (interest match ? -200 : 0) + distanceKm and sorts ascending.
func rankDefault(pool []models.Event, profile *models.User) []models.Event {
	hasInterests := profile.HasInterests()
	hasLocation := profile != nil && profile.Location != nil
	if !hasInterests && !hasLocation {
		out := make([]models.Event, len(pool))
		copy(out, pool)
		return out
	}

	scores := make([]float64, len(pool))
	for i := range pool {
		scores[i] = personalScore(&pool[i], profile, hasInterests, hasLocation)
	}
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] < scores[idx[b]]
	})

	out := make([]models.Event, len(pool))
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func personalScore(ev *models.Event, profile *models.User, hasInterests, hasLocation bool) float64 {
	score := 0.0
	if hasInterests && matchesAnyInterest(ev, profile.InterestedTags) {
		score += interestBonus
	}
	if hasLocation {
		if ev.HasCoordinates() {
			score += Haversine(profile.Location.Latitude, profile.Location.Longitude, *ev.Latitude, *ev.Longitude)
		} else {
			score += missingCoordsPenaltyKm
		}
	}
	return score
}

func matchesAnyInterest(ev *models.Event, interests []string) bool {
	for _, tag := range interests {
		if ev.HasTag(tag) {
			return true
		}
	}
	return false
}
