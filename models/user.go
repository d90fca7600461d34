package models

import "time"

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// User holds the slice of the user profile the feed pipeline needs:
// declared interests and the user's last known position. Identity and
// account management live in a separate service.
type User struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name,omitempty" json:"name,omitempty"`
	Email          string    `bson:"email,omitempty" json:"email,omitempty"`
	City           string    `bson:"city,omitempty" json:"city,omitempty"`
	Location       *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	InterestedTags []string  `bson:"interestedTags,omitempty" json:"interestedTags,omitempty"`
	LastActiveAt   time.Time `bson:"lastActiveAt,omitempty" json:"lastActiveAt,omitempty"`
}

// HasInterests reports whether the user declared at least one interest.
func (u *User) HasInterests() bool {
	return u != nil && len(u.InterestedTags) > 0
}
