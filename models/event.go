package models

import "strings"

// RecurrencePattern identifies how often a recurring event repeats.
type RecurrencePattern string

const (
	RecurrenceNone     RecurrencePattern = ""
	RecurrenceDaily    RecurrencePattern = "daily"
	RecurrenceWeekly   RecurrencePattern = "weekly"
	RecurrenceBiweekly RecurrencePattern = "biweekly"
	RecurrenceMonthly  RecurrencePattern = "monthly"
)

// Event statuses as stored by the events collection.
const (
	EventStatusActive   = "active"
	EventStatusCanceled = "canceled"
	EventStatusEnded    = "ended"
)

// Event is one event record as authored by an organizer. The feed pipeline
// treats events as read-only input; dates are kept as raw "YYYY-MM-DD"
// strings because authoring happens outside this service and a malformed
// date must degrade gracefully rather than fail the whole feed.
type Event struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	OrganizerID string   `bson:"organizerId,omitempty" json:"organizerId,omitempty"`
	Location    string   `bson:"location" json:"location"`
	Latitude    *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
	IsOnline    bool     `bson:"isOnline" json:"isOnline"`
	Link        string   `bson:"link,omitempty" json:"link,omitempty"`

	Date    string `bson:"date" json:"date"`
	Time    string `bson:"time,omitempty" json:"time,omitempty"`
	EndDate string `bson:"endDate,omitempty" json:"endDate,omitempty"`
	EndTime string `bson:"endTime,omitempty" json:"endTime,omitempty"`

	Price          float64  `bson:"price" json:"price"`
	Gender         string   `bson:"gender,omitempty" json:"gender,omitempty"`
	Tags           []string `bson:"tags,omitempty" json:"tags,omitempty"`
	AttendingCount int      `bson:"attendingCount" json:"attendingCount"`
	MaxCapacity    int      `bson:"maxCapacity,omitempty" json:"maxCapacity,omitempty"`
	Status         string   `bson:"status" json:"status"`

	IsRecurring       bool              `bson:"isRecurring,omitempty" json:"isRecurring,omitempty"`
	RecurrencePattern RecurrencePattern `bson:"recurrencePattern,omitempty" json:"recurrencePattern,omitempty"`
	RecurrenceDays    []int             `bson:"recurrenceDays,omitempty" json:"recurrenceDays,omitempty"`
	RecurrenceEndDate string            `bson:"recurrenceEndDate,omitempty" json:"recurrenceEndDate,omitempty"`
}

// HasCoordinates reports whether the event carries a usable lat/lon pair.
func (e *Event) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// HasTag reports whether the event carries the named tag, ignoring case.
func (e *Event) HasTag(name string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

// Occurrence is one concrete calendar appearance of a (possibly recurring)
// event. Occurrences are built fresh per feed request and never persisted.
// EffectiveDate is zero when the base date could not be parsed and the
// event is passed through as-is.
type Occurrence struct {
	Event         Event `json:"event"`
	EffectiveDate Date  `json:"effectiveDate"`
}

// Materialize returns the occurrence as a plain event with its date set to
// the effective date, which is the shape the rest of the pipeline works on.
func (o Occurrence) Materialize() Event {
	ev := o.Event
	if !o.EffectiveDate.IsZero() {
		ev.Date = o.EffectiveDate.String()
	}
	return ev
}
