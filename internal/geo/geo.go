package geo

import (
	"math"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
)

// EarthRadiusM is the mean sphere radius used for great-circle math.
const EarthRadiusM = 6371000.0

// DefaultAlertRadiusM is the proximity threshold when none is configured.
const DefaultAlertRadiusM = 1000.0

// Distance returns the haversine great-circle distance between a and b in
// meters. Pure: no state, no error conditions for in-range coordinates.
func Distance(a, b domain.Coordinate) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusM * c
}

// IsNear reports whether pos lies within thresholdMeters of the user's
// location. A nil user location always answers false; proximity is never
// computed against a sentinel coordinate.
func IsNear(user *domain.Coordinate, pos domain.Coordinate, thresholdMeters float64) bool {
	if user == nil {
		return false
	}
	return Distance(*user, pos) <= thresholdMeters
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
