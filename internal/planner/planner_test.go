package planner

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunseo/itinerary-backend-go/internal/config"
	"github.com/hyunseo/itinerary-backend-go/internal/models"
	"github.com/hyunseo/itinerary-backend-go/internal/places"
)

// stubProvider lets each test script provider behaviour per call. Unset
// functions report no results, which every pipeline stage must tolerate.
type stubProvider struct {
	nearby  func(anchor models.Coordinate, radiusMeters int, keyword string) ([]places.Candidate, error)
	text    func(query string) ([]places.Candidate, error)
	details func(placeID string) (*places.Details, error)
	travel  func(origin, dest models.Coordinate, mode places.Mode) (*places.Estimate, error)
}

func (s *stubProvider) NearbySearch(_ context.Context, anchor models.Coordinate, radiusMeters int, keyword string) ([]places.Candidate, error) {
	if s.nearby == nil {
		return nil, places.ErrNoResults
	}
	return s.nearby(anchor, radiusMeters, keyword)
}

func (s *stubProvider) TextSearch(_ context.Context, query string) ([]places.Candidate, error) {
	if s.text == nil {
		return nil, places.ErrNoResults
	}
	return s.text(query)
}

func (s *stubProvider) Details(_ context.Context, placeID string) (*places.Details, error) {
	if s.details == nil {
		return nil, places.ErrNoResults
	}
	return s.details(placeID)
}

func (s *stubProvider) TravelTime(_ context.Context, origin, dest models.Coordinate, mode places.Mode, _ time.Time) (*places.Estimate, error) {
	if s.travel == nil {
		return nil, places.ErrNoResults
	}
	return s.travel(origin, dest, mode)
}

// testPolicy mirrors the shipped defaults with the inter-call delay removed.
func testPolicy() config.PlanningPolicy {
	return config.PlanningPolicy{
		AttractionRadiusMeters: 4000,
		MealRadiusMeters:       500,
		AttractionMinRating:    3.8,
		MealMinRating:          3.5,
		AttractionPickTopK:     3,
		MealPickTopK:           5,
		MaxWalkingMeters:       1500,
		ShortWalkSeconds:       300,
		DriveToTransitFactor:   1.3,
		FallbackTransitMin:     30,
		CallDelay:              0,
	}
}

func newTestPlanner(provider places.Provider, seed int64) *Planner {
	return New(provider, testPolicy(), rand.New(rand.NewSource(seed)))
}

func TestGenerateOfflineProviderStillProducesFullTrip(t *testing.T) {
	p := newTestPlanner(&stubProvider{}, 1)

	it, err := p.Generate(context.Background(), models.TripParameters{
		StartDate:    "2026-04-01",
		TripDuration: 3,
		People:       2,
		TravelStyles: []string{models.StyleSightseeing},
	})
	require.NoError(t, err)
	require.Len(t, it.DailySchedule, 3)

	for _, day := range it.DailySchedule {
		assert.NotEmpty(t, day.Activities)
	}
}

func TestRetimeStripsTransitAndRenormalizes(t *testing.T) {
	p := newTestPlanner(&stubProvider{}, 1)

	it := &models.Itinerary{
		DailySchedule: []models.Day{{
			Date: "2026-04-01",
			Activities: []models.Activity{
				{Time: "09:00", Name: "Meiji Shrine", Type: models.TypeAttraction, Duration: 2},
				{Time: "11:00", Name: "Travel", Type: models.TypeTransit, Duration: 0.5},
				{Time: "11:30", Name: "Lunch", Type: models.TypeMeal, Duration: 1},
			},
		}},
	}

	out := p.Retime(context.Background(), it)
	require.Len(t, out.DailySchedule, 1)

	acts := out.DailySchedule[0].Activities
	for _, a := range acts {
		assert.NotEqual(t, models.TypeTransit, a.Type,
			"old transit legs must be dropped; neither endpoint is located so none are recomputed")
	}
	require.Len(t, acts, 2)
	assert.Equal(t, "09:00", acts[0].Time)
	assert.Equal(t, "11:00", acts[1].Time)
}

func TestQualifyCandidatesFiltersSortsAndCaps(t *testing.T) {
	cands := []places.Candidate{
		{PlaceID: "low", Rating: 3.0, Location: models.Coordinate{Lat: 35, Lng: 139}},
		{PlaceID: "used", Rating: 4.9, Location: models.Coordinate{Lat: 35, Lng: 139}},
		{PlaceID: "best", Rating: 4.7, Location: models.Coordinate{Lat: 35, Lng: 139}},
		{PlaceID: "good", Rating: 4.0, Location: models.Coordinate{Lat: 35, Lng: 139}},
		{PlaceID: "ok", Rating: 3.9, Location: models.Coordinate{Lat: 35, Lng: 139}},
	}

	out := qualifyCandidates(cands, 3.8, map[string]bool{"used": true}, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "best", out[0].PlaceID)
	assert.Equal(t, "good", out[1].PlaceID)
}
