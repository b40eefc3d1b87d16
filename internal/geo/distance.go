package geo

import (
	"github.com/golang/geo/s2"

	"github.com/hyunseo/itinerary-backend-go/internal/models"
)

// EarthRadiusMeters is the mean earth radius used for great-circle math.
const EarthRadiusMeters = 6371000.0

// HaversineMeters returns the great-circle distance between two coordinates
// in meters.
func HaversineMeters(a, b models.Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}
