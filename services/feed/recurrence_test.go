package feed

import (
	"testing"
	"time"

	"joino/models"

	"github.com/stretchr/testify/require"
)

func TestExpandNonRecurring(t *testing.T) {
	now := mustDate(t, "2025-06-01")

	// A plain event yields exactly its own date, even outside the window.
	ev := makeEvent("e1", "2025-12-24")
	occurrences := Expand(ev, now)
	require.Len(t, occurrences, 1)
	require.Equal(t, "2025-12-24", occurrences[0].EffectiveDate.String())
	require.Equal(t, "e1", occurrences[0].Event.ID)
}

func TestExpandMalformedDateFailsOpen(t *testing.T) {
	now := mustDate(t, "2025-06-01")

	ev := makeEvent("e1", "not-a-date", recurring(models.RecurrenceDaily))
	occurrences := Expand(ev, now)
	require.Len(t, occurrences, 1)
	require.True(t, occurrences[0].EffectiveDate.IsZero())
	require.Equal(t, "not-a-date", occurrences[0].Event.Date)
}

func TestExpandUnknownPatternFailsOpen(t *testing.T) {
	now := mustDate(t, "2025-06-01")

	ev := makeEvent("e1", "2025-06-10", recurring(models.RecurrencePattern("custom")))
	occurrences := Expand(ev, now)
	require.Len(t, occurrences, 1)
	require.Equal(t, "2025-06-10", occurrences[0].EffectiveDate.String())
}

func TestExpandDaily(t *testing.T) {
	now := mustDate(t, "2025-06-01")

	// Start date in the past: expansion begins today and covers the
	// whole window inclusive.
	ev := makeEvent("e1", "2025-01-15", recurring(models.RecurrenceDaily))
	occurrences := Expand(ev, now)
	require.Len(t, occurrences, WindowDays+1)
	require.Equal(t, "2025-06-01", occurrences[0].EffectiveDate.String())
	require.Equal(t, "2025-07-31", occurrences[len(occurrences)-1].EffectiveDate.String())
}

func TestExpandDailyRespectsRuleEnd(t *testing.T) {
	now := mustDate(t, "2025-06-01")

	ev := makeEvent("e1", "2025-06-01", recurring(models.RecurrenceDaily))
	ev.RecurrenceEndDate = "2025-06-05"
	occurrences := Expand(ev, now)
	require.Equal(t, []string{
		"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05",
	}, occurrenceDates(occurrences))
}

func TestExpandWeeklyMondayWednesday(t *testing.T) {
	// 2025-06-02 is a Monday; expansion starts that same day.
	now := mustDate(t, "2025-06-02")

	ev := makeEvent("e1", "2025-06-02", weekly([]int{1, 3}, ""))
	occurrences := Expand(ev, now)

	dates := occurrenceDates(occurrences)
	require.Equal(t, "2025-06-02", dates[0])
	require.Equal(t, "2025-06-04", dates[1])

	end := now.AddDays(WindowDays)
	for _, occ := range occurrences {
		wd := occ.EffectiveDate.Weekday()
		require.Contains(t, []time.Weekday{time.Monday, time.Wednesday}, wd)
		require.False(t, occ.EffectiveDate.Before(now))
		require.False(t, occ.EffectiveDate.After(end))
	}

	// 9 Mondays and 9 Wednesdays fall inside the 60-day window.
	require.Len(t, occurrences, 18)
}

func TestExpandWeeklyDefaultsToStartWeekday(t *testing.T) {
	// No daysOfWeek given: the start date's own weekday carries the series.
	now := mustDate(t, "2025-06-02")

	ev := makeEvent("e1", "2025-06-02", recurring(models.RecurrenceWeekly))
	occurrences := Expand(ev, now)
	require.NotEmpty(t, occurrences)
	for _, occ := range occurrences {
		require.Equal(t, time.Monday, occ.EffectiveDate.Weekday())
	}
}

func TestExpandBiweeklyKeepsCadence(t *testing.T) {
	// Series starts Monday 2025-06-02; "today" falls in the following
	// week, which is off-cadence, so the next occurrence is Jun 16.
	now := mustDate(t, "2025-06-10")

	ev := makeEvent("e1", "2025-06-02", weekly([]int{1}, ""))
	ev.RecurrencePattern = models.RecurrenceBiweekly
	occurrences := Expand(ev, now)
	require.Equal(t, []string{
		"2025-06-16", "2025-06-30", "2025-07-14", "2025-07-28",
	}, occurrenceDates(occurrences))
}

func TestExpandWeeklyDeduplicatesDays(t *testing.T) {
	now := mustDate(t, "2025-06-02")

	ev := makeEvent("e1", "2025-06-02", weekly([]int{1, 1, 1}, "2025-06-20"))
	occurrences := Expand(ev, now)
	require.Equal(t, []string{"2025-06-02", "2025-06-09", "2025-06-16"}, occurrenceDates(occurrences))
}

func TestExpandMonthlyClampsShortMonths(t *testing.T) {
	now := mustDate(t, "2025-01-31")

	// The 31st clamps to Feb 28 but snaps back to the 31st in March: the
	// series keeps its day-of-month anchor instead of drifting.
	ev := makeEvent("e1", "2025-01-31", recurring(models.RecurrenceMonthly))
	occurrences := Expand(ev, now)
	require.Equal(t, []string{"2025-01-31", "2025-02-28", "2025-03-31"}, occurrenceDates(occurrences))
}

func TestExpandMonthlySkipsToWindow(t *testing.T) {
	now := mustDate(t, "2025-06-10")

	ev := makeEvent("e1", "2025-01-05", recurring(models.RecurrenceMonthly))
	occurrences := Expand(ev, now)
	require.Equal(t, []string{"2025-07-05", "2025-08-05"}, occurrenceDates(occurrences))
}

func TestExpandWindowBound(t *testing.T) {
	now := mustDate(t, "2025-06-01")
	end := now.AddDays(WindowDays)

	events := []models.Event{
		makeEvent("d", "2025-05-01", recurring(models.RecurrenceDaily)),
		makeEvent("w", "2025-05-05", weekly([]int{0, 2, 5}, "")),
		makeEvent("m", "2025-03-31", recurring(models.RecurrenceMonthly)),
	}
	for _, ev := range events {
		for _, occ := range Expand(ev, now) {
			require.False(t, occ.EffectiveDate.Before(now), "occurrence %s before today", occ.EffectiveDate)
			require.False(t, occ.EffectiveDate.After(end), "occurrence %s past window", occ.EffectiveDate)
		}
	}
}

func TestExpandFutureStartBeyondWindowFallsBack(t *testing.T) {
	now := mustDate(t, "2025-06-01")

	ev := makeEvent("e1", "2026-06-01", recurring(models.RecurrenceDaily))
	occurrences := Expand(ev, now)
	require.Len(t, occurrences, 1)
	require.Equal(t, "2026-06-01", occurrences[0].EffectiveDate.String())
}

func TestMaterializeAppliesEffectiveDate(t *testing.T) {
	now := mustDate(t, "2025-06-01")

	ev := makeEvent("e1", "2025-05-01", recurring(models.RecurrenceDaily))
	occurrences := Expand(ev, now)
	first := occurrences[0].Materialize()
	require.Equal(t, "2025-06-01", first.Date)
	require.Equal(t, "e1", first.ID)
}
