package feed

import (
	"fmt"
	"testing"

	"joino/models"

	"github.com/stretchr/testify/require"
)

func findCandidate(candidates []models.Candidate, typ string) *models.Candidate {
	for i := range candidates {
		if candidates[i].Type == typ {
			return &candidates[i]
		}
	}
	return nil
}

func TestBuildCandidatesPopularCity(t *testing.T) {
	profile := &models.User{ID: "u1", City: "Cairo"}

	var pool []models.Event
	for i := 0; i < 7; i++ {
		pool = append(pool, makeEvent(fmt.Sprintf("c%d", i), "2025-06-10", withLocation("Zamalek, Cairo")))
	}
	pool = append(pool, makeEvent("elsewhere", "2025-06-10", withLocation("Alexandria")))

	shelf := findCandidate(BuildCandidates(pool, profile, nil), models.CandidatePopularCity)
	require.NotNil(t, shelf)
	require.Equal(t, "Popular in Cairo", shelf.Title)
	require.Len(t, shelf.Events, 5)
	require.Equal(t, 125.0, shelf.Score)
	require.NotContains(t, eventIDs(shelf.Events), "elsewhere")
}

func TestBuildCandidatesCityBelowMinimumDropped(t *testing.T) {
	profile := &models.User{ID: "u1", City: "Cairo"}
	pool := []models.Event{
		makeEvent("c0", "2025-06-10", withLocation("Cairo")),
		makeEvent("c1", "2025-06-10", withLocation("Cairo")),
	}
	require.Nil(t, findCandidate(BuildCandidates(pool, profile, nil), models.CandidatePopularCity))
}

func TestBuildCandidatesInterestPicksBestTag(t *testing.T) {
	profile := &models.User{ID: "u1", InterestedTags: []string{"tech", "music"}}

	pool := []models.Event{
		makeEvent("m1", "2025-06-10", withTags("music")),
		makeEvent("m2", "2025-06-11", withTags("music")),
		makeEvent("m3", "2025-06-12", withTags("music")),
		makeEvent("t1", "2025-06-13", withTags("tech")),
		makeEvent("t2", "2025-06-14", withTags("tech")),
	}
	shelf := findCandidate(BuildCandidates(pool, profile, nil), models.CandidateInterestBased)
	require.NotNil(t, shelf)
	require.Equal(t, "Because you like music", shelf.Title)
	require.Equal(t, []string{"m1", "m2", "m3"}, eventIDs(shelf.Events))
	require.Equal(t, 114.0, shelf.Score)
}

func TestBuildCandidatesInterestTieKeepsDeclarationOrder(t *testing.T) {
	profile := &models.User{ID: "u1", InterestedTags: []string{"tech", "music"}}

	pool := []models.Event{
		makeEvent("t1", "2025-06-10", withTags("tech")),
		makeEvent("t2", "2025-06-11", withTags("tech")),
		makeEvent("m1", "2025-06-12", withTags("music")),
		makeEvent("m2", "2025-06-13", withTags("music")),
	}
	shelf := findCandidate(BuildCandidates(pool, profile, nil), models.CandidateInterestBased)
	require.NotNil(t, shelf)
	require.Equal(t, "Because you like tech", shelf.Title)
}

func TestBuildCandidatesNearbySortedByDistance(t *testing.T) {
	profile := profileAt(30, 31)

	pool := []models.Event{
		makeEvent("mid", "2025-06-10", withCoords(30.1, 31)),      // ~11 km
		makeEvent("close", "2025-06-11", withCoords(30.009, 31)),  // ~1 km
		makeEvent("edge", "2025-06-12", withCoords(30.15, 31)),    // ~17 km
		makeEvent("outside", "2025-06-13", withCoords(30.25, 31)), // ~28 km
		makeEvent("nocoords", "2025-06-14"),
	}
	shelf := findCandidate(BuildCandidates(pool, profile, nil), models.CandidateNearby)
	require.NotNil(t, shelf)
	require.Equal(t, "Happening near you", shelf.Title)
	require.Equal(t, []string{"close", "mid", "edge"}, eventIDs(shelf.Events))
	require.Equal(t, 103.0, shelf.Score)
}

func TestBuildCandidatesTrendingByAttendance(t *testing.T) {
	pool := []models.Event{
		makeEvent("quiet", "2025-06-10", withAttending(2)),
		makeEvent("mid", "2025-06-11", withAttending(8)),
		makeEvent("big", "2025-06-12", withAttending(40)),
		makeEvent("floor", "2025-06-13", withAttending(5)),
	}
	shelf := findCandidate(BuildCandidates(pool, nil, nil), models.CandidateTrending)
	require.NotNil(t, shelf)
	require.Equal(t, "Trending now", shelf.Title)
	require.Equal(t, []string{"big", "mid", "floor"}, eventIDs(shelf.Events))
	require.Equal(t, 82.0, shelf.Score)
}

func TestBuildCandidatesSuggestedFallback(t *testing.T) {
	pool := []models.Event{
		makeEvent("a", "2025-06-10"),
		makeEvent("b", "2025-06-11"),
		makeEvent("c", "2025-06-12"),
		makeEvent("d", "2025-06-13"),
	}
	candidates := BuildCandidates(pool, nil, nil)
	require.Len(t, candidates, 1)
	require.Equal(t, models.CandidateSuggested, candidates[0].Type)
	require.Equal(t, []string{"a", "b", "c", "d"}, eventIDs(candidates[0].Events))
	require.Equal(t, 58.0, candidates[0].Score)
}

func TestBuildCandidatesExcludesPrimaryEvents(t *testing.T) {
	pool := []models.Event{
		makeEvent("p1", "2025-06-10", withAttending(50)),
		makeEvent("r1", "2025-06-11", withAttending(20)),
		makeEvent("r2", "2025-06-12", withAttending(10)),
		makeEvent("r3", "2025-06-13", withAttending(6)),
	}
	primary := map[string]bool{"p1": true}

	candidates := BuildCandidates(pool, nil, primary)
	for _, cand := range candidates {
		require.NotContains(t, eventIDs(cand.Events), "p1", "shelf %s leaked a primary event", cand.Type)
	}
	trending := findCandidate(candidates, models.CandidateTrending)
	require.NotNil(t, trending)
	require.Equal(t, []string{"r1", "r2", "r3"}, eventIDs(trending.Events))
}

func TestBuildCandidatesEmptyPool(t *testing.T) {
	require.Empty(t, BuildCandidates(nil, nil, nil))
}
