package feed

import (
	"math"

	"joino/models"
)

// Haversine returns the great-circle distance in kilometres between two
// coordinate pairs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// distanceTo returns the distance in km from origin to the event, or +Inf
// when the event has no coordinates. Events without a position never
// qualify for distance-bounded views.
func distanceTo(origin models.GeoPoint, ev *models.Event) float64 {
	if !ev.HasCoordinates() {
		return math.Inf(1)
	}
	return Haversine(origin.Latitude, origin.Longitude, *ev.Latitude, *ev.Longitude)
}
