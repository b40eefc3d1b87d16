package places

import (
	"context"
	"errors"
	"time"

	"github.com/hyunseo/itinerary-backend-go/internal/models"
)

// Mode is a transport mode for travel time queries.
type Mode string

// Transport modes
const (
	ModeWalking Mode = "walking"
	ModeTransit Mode = "transit"
	ModeDriving Mode = "driving"
)

// ErrNoResults is returned when a query succeeds but matches nothing. Callers
// treat it like any other provider failure and take their fallback branch.
var ErrNoResults = errors.New("places: no results")

// Candidate is one search hit.
type Candidate struct {
	PlaceID          string
	Name             string
	Rating           float64
	UserRatingsTotal int
	Vicinity         string
	Location         models.Coordinate
}

// Details carries the full record for a place.
type Details struct {
	Candidate
	Photos       []string
	OpeningHours []string
	Phone        string
	Website      string
	MapsURL      string
	Types        []string
}

// Estimate is the outcome of a travel time query.
type Estimate struct {
	DurationSeconds int
	DistanceMeters  int
	DurationText    string
	DistanceText    string
}

// Provider is the geo provider consumed by the enrichment pipeline. Every
// method may fail for ordinary reasons (no results, quota, timeouts); callers
// must treat errors as a normal branch, never as fatal.
type Provider interface {
	// NearbySearch returns candidates matching keyword around anchor.
	NearbySearch(ctx context.Context, anchor models.Coordinate, radiusMeters int, keyword string) ([]Candidate, error)

	// TextSearch returns candidates for a free-text query.
	TextSearch(ctx context.Context, query string) ([]Candidate, error)

	// Details fetches the full record for a place id.
	Details(ctx context.Context, placeID string) (*Details, error)

	// TravelTime estimates duration and distance between two points for the
	// given mode. departure only matters for transit.
	TravelTime(ctx context.Context, origin, dest models.Coordinate, mode Mode, departure time.Time) (*Estimate, error)
}
