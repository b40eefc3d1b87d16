package planner

import (
	"context"
	"log"

	"github.com/hyunseo/itinerary-backend-go/internal/models"
)

// Meal categories derived from a slot's nominal time.
const (
	mealBreakfast = "breakfast"
	mealLunch     = "lunch"
	mealDinner    = "dinner"
)

var mealKeywords = map[string][]string{
	mealBreakfast: {"breakfast", "cafe", "bakery", "morning"},
	mealLunch:     {"restaurant", "lunch", "ramen", "sushi", "japanese restaurant"},
	mealDinner:    {"restaurant", "dinner", "izakaya", "japanese restaurant"},
}

// mealCategory buckets a slot by its clock time: before 11:00 is breakfast,
// 18:00 and later is dinner, everything between is lunch.
func mealCategory(t string) string {
	hour := parseClock(t) / 60
	switch {
	case hour < 11:
		return mealBreakfast
	case hour >= 18:
		return mealDinner
	default:
		return mealLunch
	}
}

// EnrichMeals finds a dining place for every meal slot, anchored to the
// nearest located attraction in the same day (looking backward first, then
// forward). A slot with no usable anchor or no qualifying candidate keeps
// its generic name; that is an unresolved enrichment, not an error.
func (p *Planner) EnrichMeals(ctx context.Context, it *models.Itinerary) *models.Itinerary {
	if it == nil || len(it.DailySchedule) == 0 {
		return it
	}

	out := *it
	out.DailySchedule = make([]models.Day, len(it.DailySchedule))

	for dayIdx, day := range it.DailySchedule {
		activities := make([]models.Activity, len(day.Activities))
		copy(activities, day.Activities)

		for i := range activities {
			if activities[i].Type != models.TypeMeal {
				continue
			}

			anchor := mealAnchor(activities, i)
			if anchor == nil {
				log.Printf("meal slot %s on %s has no located neighbour", activities[i].Time, day.Date)
				continue
			}

			category := mealCategory(activities[i].Time)
			keyword := mealKeywords[category][p.rng.Intn(len(mealKeywords[category]))]

			cands, err := p.provider.NearbySearch(ctx, *anchor, p.policy.MealRadiusMeters, keyword)
			p.throttle(ctx)
			if err != nil {
				continue
			}
			qualified := qualifyCandidates(cands, p.policy.MealMinRating, nil, p.policy.MealPickTopK)
			if len(qualified) == 0 {
				continue
			}

			pick := p.pickTopK(qualified, p.policy.MealPickTopK)
			loc := pick.Location
			activities[i].Name = pick.Name
			activities[i].Description = describeFind(&pick)
			activities[i].Location = &loc
			activities[i].Rating = pick.Rating
			activities[i].PlaceID = pick.PlaceID
			activities[i].Photo = p.photoFor(ctx, pick.PlaceID)
		}

		day.Activities = activities
		out.DailySchedule[dayIdx] = day
	}

	return &out
}

// mealAnchor scans backward from the meal slot for a located attraction,
// then forward if the morning came up empty.
func mealAnchor(activities []models.Activity, mealIdx int) *models.Coordinate {
	for j := mealIdx - 1; j >= 0; j-- {
		if activities[j].Type == models.TypeAttraction && activities[j].Located() {
			return activities[j].Location
		}
	}
	for j := mealIdx + 1; j < len(activities); j++ {
		if activities[j].Type == models.TypeAttraction && activities[j].Located() {
			return activities[j].Location
		}
	}
	return nil
}
