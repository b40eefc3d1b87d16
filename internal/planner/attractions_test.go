package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunseo/itinerary-backend-go/internal/models"
	"github.com/hyunseo/itinerary-backend-go/internal/places"
)

func candidate(id, name string, rating float64, lat, lng float64) places.Candidate {
	return places.Candidate{
		PlaceID:          id,
		Name:             name,
		Rating:           rating,
		UserRatingsTotal: 1000,
		Vicinity:         "Tokyo",
		Location:         models.Coordinate{Lat: lat, Lng: lng},
	}
}

func attractionDay() *models.Itinerary {
	return &models.Itinerary{
		TravelStyles: []string{models.StyleSightseeing},
		DailySchedule: []models.Day{{
			Date: "2026-04-01",
			Activities: []models.Activity{
				{Time: "09:30", Name: "Famous sight in Tokyo", Type: models.TypeAttraction, Duration: 2},
				{Time: "14:00", Name: "Famous sight in Tokyo", Type: models.TypeAttraction, Duration: 2},
			},
		}},
	}
}

func TestEnrichAttractionsResolvesSlots(t *testing.T) {
	pool := []places.Candidate{
		candidate("p1", "Senso-ji Temple", 4.5, 35.7147, 139.7966),
		candidate("p2", "Tokyo Skytree", 4.4, 35.7101, 139.8107),
		candidate("p3", "Ueno Park", 4.2, 35.7156, 139.7713),
		candidate("p4", "Meiji Jingu", 4.6, 35.6764, 139.6993),
	}
	provider := &stubProvider{
		nearby: func(_ models.Coordinate, _ int, _ string) ([]places.Candidate, error) {
			return pool, nil
		},
	}
	p := newTestPlanner(provider, 1)

	out := p.EnrichAttractions(context.Background(), attractionDay())
	acts := out.DailySchedule[0].Activities

	names := map[string]bool{}
	for _, c := range pool {
		names[c.Name] = true
	}
	for _, a := range acts {
		assert.True(t, names[a.Name], "slot %q should be replaced by a provider hit", a.Name)
		assert.NotEmpty(t, a.PlaceID)
		require.NotNil(t, a.Location)
		assert.NotEmpty(t, a.Description)
		assert.Equal(t, models.TypeAttraction, a.Type)
	}
}

func TestEnrichAttractionsNeverRepeatsAPlaceWithinADay(t *testing.T) {
	pool := []places.Candidate{
		candidate("p1", "Senso-ji Temple", 4.5, 35.7147, 139.7966),
		candidate("p2", "Tokyo Skytree", 4.4, 35.7101, 139.8107),
	}
	provider := &stubProvider{
		nearby: func(_ models.Coordinate, _ int, _ string) ([]places.Candidate, error) {
			return pool, nil
		},
	}
	p := newTestPlanner(provider, 3)

	out := p.EnrichAttractions(context.Background(), attractionDay())
	acts := out.DailySchedule[0].Activities

	require.Len(t, acts, 2)
	assert.NotEqual(t, acts[0].PlaceID, acts[1].PlaceID)
}

func TestEnrichAttractionsFirstSlotForcesCanonicalKeyword(t *testing.T) {
	var keywords []string
	provider := &stubProvider{
		nearby: func(_ models.Coordinate, _ int, keyword string) ([]places.Candidate, error) {
			keywords = append(keywords, keyword)
			return []places.Candidate{candidate("p1", "Senso-ji Temple", 4.5, 35.7147, 139.7966)}, nil
		},
	}
	p := newTestPlanner(provider, 1)

	it := attractionDay()
	it.TravelStyles = []string{models.StyleShopping}
	p.EnrichAttractions(context.Background(), it)

	require.NotEmpty(t, keywords)
	assert.Equal(t, "tourist attraction", keywords[0],
		"the first slot of a day always searches the canonical keyword")
	if len(keywords) > 1 {
		assert.Contains(t, styleKeywords[models.StyleShopping], keywords[1])
	}
}

func TestEnrichAttractionsAnchorChainsToLastFind(t *testing.T) {
	var anchors []models.Coordinate
	found := candidate("p1", "Senso-ji Temple", 4.5, 35.7147, 139.7966)
	second := candidate("p2", "Tokyo Skytree", 4.4, 35.7101, 139.8107)
	call := 0
	provider := &stubProvider{
		nearby: func(anchor models.Coordinate, _ int, _ string) ([]places.Candidate, error) {
			anchors = append(anchors, anchor)
			call++
			if call == 1 {
				return []places.Candidate{found}, nil
			}
			return []places.Candidate{second}, nil
		},
	}
	p := newTestPlanner(provider, 1)

	p.EnrichAttractions(context.Background(), attractionDay())

	require.GreaterOrEqual(t, len(anchors), 2)
	assert.Equal(t, found.Location, anchors[1],
		"the second search starts from the first find")
}

func TestEnrichAttractionsFallbackHubsWhenAnchorIsEmpty(t *testing.T) {
	call := 0
	provider := &stubProvider{
		nearby: func(_ models.Coordinate, _ int, _ string) ([]places.Candidate, error) {
			call++
			if call == 1 {
				return nil, places.ErrNoResults
			}
			return []places.Candidate{candidate("p1", "Senso-ji Temple", 4.5, 35.7147, 139.7966)}, nil
		},
	}
	p := newTestPlanner(provider, 1)

	it := &models.Itinerary{
		DailySchedule: []models.Day{{
			Activities: []models.Activity{
				{Time: "09:30", Name: "Famous sight in Tokyo", Type: models.TypeAttraction, Duration: 2},
			},
		}},
	}
	out := p.EnrichAttractions(context.Background(), it)

	assert.Equal(t, "Senso-ji Temple", out.DailySchedule[0].Activities[0].Name,
		"a dead anchor falls through to the well-known hubs")
}

func TestEnrichAttractionsTextSearchIsLastResort(t *testing.T) {
	var queries []string
	provider := &stubProvider{
		// every anchored search is dead
		text: func(query string) ([]places.Candidate, error) {
			queries = append(queries, query)
			return []places.Candidate{candidate("p1", "Senso-ji Temple", 4.5, 35.7147, 139.7966)}, nil
		},
	}
	p := newTestPlanner(provider, 1)

	it := &models.Itinerary{
		DailySchedule: []models.Day{{
			Activities: []models.Activity{
				{Time: "09:30", Name: "Famous sight in Tokyo", Type: models.TypeAttraction, Duration: 2},
			},
		}},
	}
	out := p.EnrichAttractions(context.Background(), it)

	assert.Equal(t, "Senso-ji Temple", out.DailySchedule[0].Activities[0].Name)
	require.Len(t, queries, 1)
	assert.Contains(t, queries[0], "tourist attraction")
}

func TestEnrichAttractionsUnresolvedSlotKeepsSeedContent(t *testing.T) {
	p := newTestPlanner(&stubProvider{}, 1)

	it := attractionDay()
	out := p.EnrichAttractions(context.Background(), it)
	acts := out.DailySchedule[0].Activities

	assert.Equal(t, "Famous sight in Tokyo", acts[0].Name)
	assert.Empty(t, acts[0].PlaceID)
}

func TestEnrichAttractionsLowRatedCandidatesIgnored(t *testing.T) {
	provider := &stubProvider{
		nearby: func(_ models.Coordinate, _ int, _ string) ([]places.Candidate, error) {
			return []places.Candidate{
				candidate("p1", "Mediocre Spot", 3.2, 35.7, 139.7),
				candidate("p2", "Tourist Trap", 3.7, 35.7, 139.7),
			}, nil
		},
	}
	p := newTestPlanner(provider, 1)

	out := p.EnrichAttractions(context.Background(), attractionDay())

	assert.Equal(t, "Famous sight in Tokyo", out.DailySchedule[0].Activities[0].Name,
		"nothing at or above the rating floor means the slot stays unresolved")
}

func TestEnrichAttractionsWardHotspotAnchorsFirstSearch(t *testing.T) {
	var firstAnchor *models.Coordinate
	provider := &stubProvider{
		nearby: func(anchor models.Coordinate, _ int, _ string) ([]places.Candidate, error) {
			if firstAnchor == nil {
				a := anchor
				firstAnchor = &a
			}
			return []places.Candidate{candidate("p1", "Shinjuku Gyoen", 4.5, 35.6851, 139.7094)}, nil
		},
	}
	p := newTestPlanner(provider, 1)

	it := attractionDay()
	it.SelectedWards = []models.WardRef{{ID: "shinjuku", Name: "Shinjuku"}}
	p.EnrichAttractions(context.Background(), it)

	require.NotNil(t, firstAnchor)
	assert.InDelta(t, 35.6896, firstAnchor.Lat, 0.001)
	assert.InDelta(t, 139.7006, firstAnchor.Lng, 0.001)
}

func TestEnrichAttractionsDeterministicForFixedSeed(t *testing.T) {
	pool := []places.Candidate{
		candidate("p1", "Senso-ji Temple", 4.5, 35.7147, 139.7966),
		candidate("p2", "Tokyo Skytree", 4.4, 35.7101, 139.8107),
		candidate("p3", "Ueno Park", 4.2, 35.7156, 139.7713),
	}
	mk := func() *Planner {
		return newTestPlanner(&stubProvider{
			nearby: func(_ models.Coordinate, _ int, _ string) ([]places.Candidate, error) {
				return pool, nil
			},
		}, 99)
	}

	a := mk().EnrichAttractions(context.Background(), attractionDay())
	b := mk().EnrichAttractions(context.Background(), attractionDay())
	assert.Equal(t, a, b)
}
