package feed

import (
	"testing"

	"joino/models"

	"github.com/stretchr/testify/require"
)

func makeEvent(id, date string, opts ...func(*models.Event)) models.Event {
	ev := models.Event{
		ID:       id,
		Title:    "Event " + id,
		Location: "Cairo",
		Date:     date,
		Time:     "18:00",
		Status:   models.EventStatusActive,
	}
	for _, opt := range opts {
		opt(&ev)
	}
	return ev
}

func withCoords(lat, lon float64) func(*models.Event) {
	return func(ev *models.Event) {
		ev.Latitude = &lat
		ev.Longitude = &lon
	}
}

func withTags(tags ...string) func(*models.Event) {
	return func(ev *models.Event) {
		ev.Tags = tags
	}
}

func withAttending(n int) func(*models.Event) {
	return func(ev *models.Event) {
		ev.AttendingCount = n
	}
}

func withLocation(location string) func(*models.Event) {
	return func(ev *models.Event) {
		ev.Location = location
	}
}

func withTime(t string) func(*models.Event) {
	return func(ev *models.Event) {
		ev.Time = t
	}
}

func weekly(days []int, endDate string) func(*models.Event) {
	return func(ev *models.Event) {
		ev.IsRecurring = true
		ev.RecurrencePattern = models.RecurrenceWeekly
		ev.RecurrenceDays = days
		ev.RecurrenceEndDate = endDate
	}
}

func recurring(pattern models.RecurrencePattern) func(*models.Event) {
	return func(ev *models.Event) {
		ev.IsRecurring = true
		ev.RecurrencePattern = pattern
	}
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func occurrenceDates(occurrences []models.Occurrence) []string {
	out := make([]string, len(occurrences))
	for i, occ := range occurrences {
		out[i] = occ.EffectiveDate.String()
	}
	return out
}

func eventIDs(events []models.Event) []string {
	out := make([]string, len(events))
	for i := range events {
		out[i] = events[i].ID
	}
	return out
}
