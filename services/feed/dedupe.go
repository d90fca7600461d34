package feed

import (
	"strings"

	"joino/models"
)

// Dedupe collapses occurrences that represent the same logical event
// appearance. The pool can contain the same event more than once: a
// recurring expansion colliding with its base row, or independently
// fetched rows for one event (organized by me vs. attending).
//
// Two passes, both preserving first-seen order:
//  1. identity key (id, date, time) drops exact repeats;
//  2. content key (title, date, time, location, case-folded) drops rows
//     that reached the pool under different identifiers.
func Dedupe(events []models.Event) []models.Event {
	seenID := make(map[string]bool, len(events))
	byID := events[:0:0]
	for _, ev := range events {
		key := ev.ID + "|" + ev.Date + "|" + ev.Time
		if seenID[key] {
			continue
		}
		seenID[key] = true
		byID = append(byID, ev)
	}

	seenContent := make(map[string]bool, len(byID))
	out := byID[:0:0]
	for _, ev := range byID {
		key := strings.ToLower(ev.Title) + "|" + ev.Date + "|" + ev.Time + "|" + strings.ToLower(ev.Location)
		if seenContent[key] {
			continue
		}
		seenContent[key] = true
		out = append(out, ev)
	}
	return out
}
