package feed

import (
	"sort"

	"joino/models"
)

// WindowDays bounds how far ahead recurring events are expanded. The
// window limits generated repeats only; a non-recurring event keeps its
// original date even when that date falls outside the window.
const WindowDays = 60

// Expand turns one event into its concrete occurrences inside the forward
// window [now, now+WindowDays], intersected with the rule's own end date
// when present. Expansion never starts before the event's base date and
// never fails: malformed input (unparseable date, unknown pattern)
// degrades to the single base occurrence so the feed still renders.
func Expand(event models.Event, now models.Date) []models.Occurrence {
	if !event.IsRecurring || event.RecurrencePattern == models.RecurrenceNone {
		return []models.Occurrence{baseOccurrence(event)}
	}

	start, err := models.ParseDate(event.Date)
	if err != nil {
		return []models.Occurrence{baseOccurrence(event)}
	}

	end := now.AddDays(WindowDays)
	if ruleEnd, err := models.ParseDate(event.RecurrenceEndDate); err == nil && ruleEnd.Before(end) {
		end = ruleEnd
	}

	var dates []models.Date
	switch event.RecurrencePattern {
	case models.RecurrenceDaily:
		dates = expandDaily(start, now, end)
	case models.RecurrenceWeekly:
		dates = expandWeekly(start, now, end, event.RecurrenceDays, 1)
	case models.RecurrenceBiweekly:
		dates = expandWeekly(start, now, end, event.RecurrenceDays, 2)
	case models.RecurrenceMonthly:
		dates = expandMonthly(start, now, end)
	default:
		return []models.Occurrence{baseOccurrence(event)}
	}

	if len(dates) == 0 {
		return []models.Occurrence{baseOccurrence(event)}
	}

	occurrences := make([]models.Occurrence, 0, len(dates))
	seen := make(map[models.Date]bool, len(dates))
	for _, d := range dates {
		if seen[d] {
			continue
		}
		seen[d] = true
		occurrences = append(occurrences, models.Occurrence{Event: event, EffectiveDate: d})
	}
	return occurrences
}

// baseOccurrence wraps the event's own date as its single occurrence. The
// effective date stays zero when the date string does not parse.
func baseOccurrence(event models.Event) models.Occurrence {
	occ := models.Occurrence{Event: event}
	if d, err := models.ParseDate(event.Date); err == nil {
		occ.EffectiveDate = d
	}
	return occ
}

func expandDaily(start, from, end models.Date) []models.Date {
	d := start
	if start.Before(from) {
		d = from
	}
	var out []models.Date
	for !d.After(end) {
		out = append(out, d)
		d = d.AddDays(1)
	}
	return out
}

// expandWeekly emits one occurrence per configured day of week inside each
// eligible week. Weeks are anchored to the Sunday of the series start so a
// biweekly rule keeps its two-week cadence no matter how far "from" is
// past the start.
func expandWeekly(start, from, end models.Date, daysOfWeek []int, stepWeeks int) []models.Date {
	days := normalizeWeekdays(daysOfWeek)
	if len(days) == 0 {
		days = []int{int(start.Weekday())}
	}

	seriesWeekStart := start.AddDays(-int(start.Weekday()))
	fromWeekStart := from.AddDays(-int(from.Weekday()))

	diffWeeks := fromWeekStart.DaysSince(seriesWeekStart) / 7
	offsetWeeks := 0
	if diffWeeks > 0 {
		offsetWeeks = diffWeeks
		if rem := diffWeeks % stepWeeks; rem != 0 {
			offsetWeeks += stepWeeks - rem
		}
	}

	weekStart := seriesWeekStart.AddDays(offsetWeeks * 7)
	var out []models.Date
	for !weekStart.After(end) {
		for _, dow := range days {
			d := weekStart.AddDays(dow)
			if d.Before(from) || d.After(end) {
				continue
			}
			out = append(out, d)
		}
		weekStart = weekStart.AddDays(stepWeeks * 7)
	}
	return out
}

// expandMonthly advances whole months from the series start, so the
// day-of-month anchor is preserved across short months instead of
// drifting (Jan 31 -> Feb 28 -> Mar 31).
func expandMonthly(start, from, end models.Date) []models.Date {
	months := 0
	d := start
	for d.Before(from) {
		months++
		d = start.AddMonths(months)
	}
	var out []models.Date
	for !d.After(end) {
		out = append(out, d)
		months++
		d = start.AddMonths(months)
	}
	return out
}

// normalizeWeekdays keeps valid 0..6 entries, deduplicates, and sorts them
// so occurrences inside one week come out in calendar order.
func normalizeWeekdays(days []int) []int {
	seen := make(map[int]bool, len(days))
	var out []int
	for _, d := range days {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// expandAll expands every event in the pool and materializes the result
// back into plain events with their effective dates applied.
func expandAll(events []models.Event, now models.Date) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if ev.IsRecurring {
			for _, occ := range Expand(ev, now) {
				out = append(out, occ.Materialize())
			}
			continue
		}
		out = append(out, ev)
	}
	return out
}
