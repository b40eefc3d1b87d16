package planner

import (
	"math"

	"github.com/hyunseo/itinerary-backend-go/internal/models"
)

// defaultDuration returns the activity's duration in hours, substituting a
// per-type default when the stored value is missing or non-positive. Transit
// keeps whatever the travel-time stage computed.
func defaultDuration(a models.Activity) float64 {
	if a.Type != models.TypeTransit && a.Duration > 0 {
		return a.Duration
	}
	switch a.Type {
	case models.TypeMeal:
		return 1
	case models.TypeAttraction:
		return 2
	case models.TypeAirport:
		return 1
	case models.TypeAccommodation:
		return 0.5
	case models.TypeCustom:
		return 1
	case models.TypeTransit:
		if a.Duration > 0 {
			return a.Duration
		}
		return 0
	default:
		if a.Duration > 0 {
			return a.Duration
		}
		return 1
	}
}

// Renormalize recomputes every activity's start time sequentially from each
// day's first timestamp and collapses immediately adjacent accommodation
// entries. It is pure, total and idempotent: applying it twice yields the
// same result as applying it once.
func Renormalize(it *models.Itinerary) *models.Itinerary {
	if it == nil {
		return nil
	}

	out := *it
	out.DailySchedule = make([]models.Day, len(it.DailySchedule))
	for i, day := range it.DailySchedule {
		out.DailySchedule[i] = renormalizeDay(day)
	}
	return &out
}

func renormalizeDay(day models.Day) models.Day {
	if len(day.Activities) == 0 {
		return day
	}

	// Collapse runs of adjacent lodging markers left behind by edits before
	// any time is assigned. Collapsing after timing would let a dropped
	// marker's duration leak into the clock, shifting everything behind it
	// on the next pass.
	collapsed := make([]models.Activity, 0, len(day.Activities))
	for _, a := range day.Activities {
		if len(collapsed) > 0 &&
			a.Type == models.TypeAccommodation &&
			collapsed[len(collapsed)-1].Type == models.TypeAccommodation {
			continue
		}
		collapsed = append(collapsed, a)
	}

	clock := parseClock(collapsed[0].Time)
	for i := range collapsed {
		collapsed[i].Time = formatClock(clock)
		clock += int(math.Round(defaultDuration(collapsed[i]) * 60))
	}

	day.Activities = collapsed
	return day
}
