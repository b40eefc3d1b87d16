package planner

import (
	"context"
	"fmt"
	"log"

	"github.com/hyunseo/itinerary-backend-go/internal/geo"
	"github.com/hyunseo/itinerary-backend-go/internal/models"
	"github.com/hyunseo/itinerary-backend-go/internal/places"
)

// forcedFirstKeyword guarantees at least one canonical sight per day, no
// matter which styles the caller declared.
const forcedFirstKeyword = "tourist attraction"

// styleKeywords maps a travel style to its provider search keywords.
var styleKeywords = map[string][]string{
	models.StyleSightseeing: {"tourist attraction", "museum", "temple", "shrine", "park", "tower"},
	models.StyleFood:        {"restaurant", "cafe", "ramen", "sushi", "izakaya"},
	models.StyleShopping:    {"shopping mall", "department store", "market", "store"},
	models.StyleRelaxation:  {"spa", "onsen", "park", "garden", "cafe"},
	models.StyleActivity:    {"amusement park", "aquarium", "zoo", "theme park"},
}

// searchState is the explicit state threaded through a day's chained
// searches: the running anchor coordinate and the place ids already used
// that day.
type searchState struct {
	anchor models.Coordinate
	used   map[string]bool
}

// EnrichAttractions fills every attraction slot by chained nearby search:
// each day starts from a ward hotspot or a random hub, and after every find
// the anchor advances to the found place. Days are processed sequentially
// because each search depends on the previous result. Slots that cannot be
// resolved keep their seed content.
func (p *Planner) EnrichAttractions(ctx context.Context, it *models.Itinerary) *models.Itinerary {
	if it == nil || len(it.DailySchedule) == 0 {
		return it
	}

	out := *it
	out.DailySchedule = make([]models.Day, len(it.DailySchedule))

	for dayIdx, day := range it.DailySchedule {
		activities := make([]models.Activity, len(day.Activities))
		copy(activities, day.Activities)

		state := searchState{
			anchor: p.dayStartAnchor(it, dayIdx),
			used:   make(map[string]bool),
		}

		first := true
		for i := range activities {
			if activities[i].Type != models.TypeAttraction {
				continue
			}

			keyword := forcedFirstKeyword
			if !first {
				keyword = p.styleKeyword(it.TravelStyles)
			}

			found := p.findAttraction(ctx, state, keyword)
			if found == nil {
				log.Printf("attraction slot %s on %s left unresolved", activities[i].Time, day.Date)
				first = false
				continue
			}

			loc := found.Location
			activities[i].Name = found.Name
			activities[i].Description = describeFind(found)
			activities[i].Location = &loc
			activities[i].Rating = found.Rating
			activities[i].PlaceID = found.PlaceID
			activities[i].Photo = p.photoFor(ctx, found.PlaceID)

			state.used[found.PlaceID] = true
			state.anchor = found.Location
			first = false
		}

		day.Activities = activities
		out.DailySchedule[dayIdx] = day
	}

	return &out
}

// dayStartAnchor picks the day's initial search anchor: the hotspot of the
// day's ward when the caller selected wards, a random well-known hub
// otherwise.
func (p *Planner) dayStartAnchor(it *models.Itinerary, dayIdx int) models.Coordinate {
	if len(it.SelectedWards) > 0 {
		ward := it.SelectedWards[dayIdx%len(it.SelectedWards)]
		if hotspot, ok := geo.WardHotspots[ward.ID]; ok {
			return hotspot.Location
		}
	}
	return geo.StartHubs[p.rng.Intn(len(geo.StartHubs))].Location
}

// styleKeyword draws a keyword for the caller's primary style.
func (p *Planner) styleKeyword(styles []string) string {
	primary := models.StyleSightseeing
	if len(styles) > 0 {
		if _, ok := styleKeywords[styles[0]]; ok {
			primary = styles[0]
		}
	}
	kws := styleKeywords[primary]
	return kws[p.rng.Intn(len(kws))]
}

// findAttraction searches at the current anchor, then retries each fallback
// hub in order, and finally falls back to a free-text query unpinned from
// any coordinate. A nil return means everything came up empty; the slot
// stays unresolved rather than failing the stage.
func (p *Planner) findAttraction(ctx context.Context, state searchState, keyword string) *places.Candidate {
	anchors := make([]models.Coordinate, 0, 1+len(geo.FallbackHubs))
	anchors = append(anchors, state.anchor)
	for _, hub := range geo.FallbackHubs {
		anchors = append(anchors, hub.Location)
	}

	for i, anchor := range anchors {
		if i > 0 {
			p.throttle(ctx)
		}
		cands, err := p.provider.NearbySearch(ctx, anchor, p.policy.AttractionRadiusMeters, keyword)
		if err != nil {
			continue
		}
		if pick := p.qualifyAndPick(cands, state.used); pick != nil {
			p.throttle(ctx)
			return pick
		}
	}

	p.throttle(ctx)
	cands, err := p.provider.TextSearch(ctx, keyword+" Tokyo")
	if err != nil {
		return nil
	}
	return p.qualifyAndPick(cands, state.used)
}

func (p *Planner) qualifyAndPick(cands []places.Candidate, used map[string]bool) *places.Candidate {
	qualified := qualifyCandidates(cands, p.policy.AttractionMinRating, used, 10)
	if len(qualified) == 0 {
		return nil
	}
	pick := p.pickTopK(qualified, p.policy.AttractionPickTopK)
	return &pick
}

// photoFor fetches a photo URL from place details; a details failure just
// means no photo.
func (p *Planner) photoFor(ctx context.Context, placeID string) string {
	d, err := p.provider.Details(ctx, placeID)
	if err != nil || len(d.Photos) == 0 {
		return ""
	}
	return d.Photos[0]
}

func describeFind(c *places.Candidate) string {
	if c.UserRatingsTotal > 0 {
		return fmt.Sprintf("%s · ⭐ %.1f (%d reviews)", c.Vicinity, c.Rating, c.UserRatingsTotal)
	}
	return fmt.Sprintf("%s · ⭐ %.1f", c.Vicinity, c.Rating)
}
