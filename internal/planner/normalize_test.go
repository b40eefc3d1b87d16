package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunseo/itinerary-backend-go/internal/models"
)

func TestRenormalizeSequentialTiming(t *testing.T) {
	it := &models.Itinerary{
		DailySchedule: []models.Day{{
			Date: "2026-04-01",
			Activities: []models.Activity{
				{Time: "08:00", Name: "Breakfast", Type: models.TypeMeal, Duration: 1},
				{Time: "15:00", Name: "Senso-ji Temple", Type: models.TypeAttraction, Duration: 2},
				{Time: "10:00", Name: "Hotel", Type: models.TypeAccommodation, Duration: 0.5},
			},
		}},
	}

	out := Renormalize(it)
	acts := out.DailySchedule[0].Activities

	require.Len(t, acts, 3)
	assert.Equal(t, "08:00", acts[0].Time)
	assert.Equal(t, "09:00", acts[1].Time)
	assert.Equal(t, "11:00", acts[2].Time)
}

func TestRenormalizeUsesPerTypeDefaultDurations(t *testing.T) {
	it := &models.Itinerary{
		DailySchedule: []models.Day{{
			Activities: []models.Activity{
				{Time: "09:00", Name: "Lunch", Type: models.TypeMeal},        // default 1h
				{Time: "", Name: "Ueno Park", Type: models.TypeAttraction},   // default 2h
				{Time: "", Name: "Narita Airport", Type: models.TypeAirport}, // default 1h
			},
		}},
	}

	out := Renormalize(it)
	acts := out.DailySchedule[0].Activities

	assert.Equal(t, "09:00", acts[0].Time)
	assert.Equal(t, "10:00", acts[1].Time)
	assert.Equal(t, "12:00", acts[2].Time)
}

func TestRenormalizeMalformedFirstTimeAnchorsAtEight(t *testing.T) {
	it := &models.Itinerary{
		DailySchedule: []models.Day{{
			Activities: []models.Activity{
				{Time: "garbage", Name: "Breakfast", Type: models.TypeMeal, Duration: 1},
				{Time: "whatever", Name: "Walk", Type: models.TypeAttraction, Duration: 2},
			},
		}},
	}

	out := Renormalize(it)
	acts := out.DailySchedule[0].Activities

	assert.Equal(t, "08:00", acts[0].Time)
	assert.Equal(t, "09:00", acts[1].Time)
}

func TestRenormalizeCollapsesAdjacentAccommodation(t *testing.T) {
	it := &models.Itinerary{
		DailySchedule: []models.Day{{
			Activities: []models.Activity{
				{Time: "20:00", Name: "Dinner", Type: models.TypeMeal, Duration: 1.5},
				{Time: "21:30", Name: "Back to lodging", Type: models.TypeAccommodation, Duration: 0.5},
				{Time: "22:00", Name: "Hotel", Type: models.TypeAccommodation, Duration: 0.5},
			},
		}},
	}

	out := Renormalize(it)
	acts := out.DailySchedule[0].Activities

	require.Len(t, acts, 2)
	assert.Equal(t, models.TypeMeal, acts[0].Type)
	assert.Equal(t, models.TypeAccommodation, acts[1].Type)
	assert.Equal(t, "Back to lodging", acts[1].Name, "the first of an adjacent run survives")
}

func TestRenormalizeTransitKeepsComputedDuration(t *testing.T) {
	it := &models.Itinerary{
		DailySchedule: []models.Day{{
			Activities: []models.Activity{
				{Time: "09:00", Name: "Meiji Jingu", Type: models.TypeAttraction, Duration: 2},
				{Time: "11:00", Name: "Travel", Type: models.TypeTransit, Duration: 0.5},
				{Time: "11:30", Name: "Lunch", Type: models.TypeMeal, Duration: 1},
			},
		}},
	}

	out := Renormalize(it)
	acts := out.DailySchedule[0].Activities

	assert.Equal(t, "11:00", acts[1].Time)
	assert.Equal(t, "11:30", acts[2].Time)
}

func TestRenormalizeZeroDurationTransitAddsNothing(t *testing.T) {
	it := &models.Itinerary{
		DailySchedule: []models.Day{{
			Activities: []models.Activity{
				{Time: "09:00", Name: "Travel", Type: models.TypeTransit, Duration: 0},
				{Time: "10:00", Name: "Lunch", Type: models.TypeMeal, Duration: 1},
			},
		}},
	}

	out := Renormalize(it)
	acts := out.DailySchedule[0].Activities

	assert.Equal(t, "09:00", acts[0].Time)
	assert.Equal(t, "09:00", acts[1].Time)
}

func TestRenormalizeMidDayCollapseDoesNotShiftLaterActivities(t *testing.T) {
	it := &models.Itinerary{
		DailySchedule: []models.Day{{
			Activities: []models.Activity{
				{Time: "09:00", Name: "Ueno Park", Type: models.TypeAttraction, Duration: 2},
				{Time: "11:00", Name: "Hotel", Type: models.TypeAccommodation, Duration: 0.5},
				{Time: "11:30", Name: "Back to lodging", Type: models.TypeAccommodation, Duration: 0.5},
				{Time: "12:00", Name: "Dinner", Type: models.TypeMeal, Duration: 1.5},
			},
		}},
	}

	once := Renormalize(it)
	acts := once.DailySchedule[0].Activities

	require.Len(t, acts, 3)
	assert.Equal(t, "09:00", acts[0].Time)
	assert.Equal(t, "11:00", acts[1].Time)
	assert.Equal(t, "11:30", acts[2].Time,
		"the dropped marker's duration must not push the meal later")

	twice := Renormalize(once)
	assert.Equal(t, once, twice,
		"a collapse in the middle of the day must still be a fixed point")
}

func TestRenormalizeIdempotent(t *testing.T) {
	it := &models.Itinerary{
		DailySchedule: []models.Day{{
			Activities: []models.Activity{
				{Time: "bad", Name: "Breakfast", Type: models.TypeMeal},
				{Time: "07:00", Name: "Ueno Park", Type: models.TypeAttraction, Duration: 2},
				{Time: "23:00", Name: "Hotel", Type: models.TypeAccommodation},
				{Time: "23:30", Name: "Hotel", Type: models.TypeAccommodation},
				{Time: "05:00", Name: "Dinner", Type: models.TypeMeal, Duration: 1.5},
			},
		}},
	}

	once := Renormalize(it)
	twice := Renormalize(once)
	assert.Equal(t, once, twice)
}

func TestRenormalizeNilAndEmpty(t *testing.T) {
	assert.Nil(t, Renormalize(nil))

	out := Renormalize(&models.Itinerary{})
	require.NotNil(t, out)
	assert.Empty(t, out.DailySchedule)
}
