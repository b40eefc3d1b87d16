package planner

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/hyunseo/itinerary-backend-go/internal/geo"
	"github.com/hyunseo/itinerary-backend-go/internal/models"
)

// Skeleton slot times. The wind-down marker carries no duration; it only
// marks the end of the planned day.
const (
	breakfastTime = "08:00"
	morningTime   = "09:30"
	lunchTime     = "12:30"
	afternoonTime = "14:00"
	dinnerTime    = "18:30"
	windDownTime  = "20:30"

	departureAirportTime = "07:00"
	arrivalAirportTime   = "21:00"

	checkOutTime = "08:00"
	checkInTime  = "22:00"
)

// BuildSkeleton produces the initial day-by-day shell from trip parameters.
// It performs no external calls; the only randomness is the destination
// combination pick (and seed attraction shuffles), drawn from rng so callers
// can fix the seed. The one fatal input error is a non-positive duration;
// unknown destination or airport ids degrade to placeholders.
func BuildSkeleton(params models.TripParameters, rng *rand.Rand) (*models.Itinerary, error) {
	if params.TripDuration < 1 {
		return nil, fmt.Errorf("trip duration must be at least 1 day, got %d", params.TripDuration)
	}

	start, err := time.Parse("2006-01-02", params.StartDate)
	if err != nil {
		start = time.Now()
	}

	selectedWards := wardSelections(params.Destinations)
	destIDs := destinationIDs(params, rng)

	busy := isBusySchedule(params)
	density := params.ScheduleDensity
	if density == "" {
		if busy {
			density = models.DensityTight
		} else {
			density = models.DensityRelaxed
		}
	}

	var days []models.Day
	if len(selectedWards) > 0 {
		days = buildWardDays(params, selectedWards, start, busy, rng)
	} else {
		days = buildCityDays(params, destIDs, start, busy, rng)
	}

	it := &models.Itinerary{
		StartDate:       start.Format("2006-01-02"),
		EndDate:         start.AddDate(0, 0, params.TripDuration-1).Format("2006-01-02"),
		TripDuration:    params.TripDuration,
		People:          params.People,
		TravelStyles:    params.TravelStyles,
		Destinations:    destinationNames(destIDs),
		SelectedWards:   selectedWards,
		DailySchedule:   days,
		ScheduleDensity: density,
	}

	injectAccommodation(it, params.Accommodation)
	injectAirports(it, params)

	// Injections touch only the first and last days; re-sort those so late
	// markers (check-in vs. arrival flight) keep chronological order.
	sortByClock(it.DailySchedule[0].Activities)
	sortByClock(it.DailySchedule[len(it.DailySchedule)-1].Activities)

	return it, nil
}

// destinationIDs resolves explicit city selections, or picks one combination
// from the duration-bucketed table uniformly at random.
func destinationIDs(params models.TripParameters, rng *rand.Rand) []int {
	var cities []string
	for _, d := range params.Destinations {
		if geo.WardByID(d) == nil {
			cities = append(cities, d)
		}
	}
	if len(cities) > 0 {
		ids := make([]int, 0, len(cities))
		for _, c := range cities {
			ids = append(ids, geo.CityID(c))
		}
		return ids
	}

	switch {
	case params.TripDuration <= 5:
		return geo.DurationTrips.Short[rng.Intn(len(geo.DurationTrips.Short))]
	case params.TripDuration <= 9:
		return geo.DurationTrips.Medium[rng.Intn(len(geo.DurationTrips.Medium))]
	default:
		return geo.DurationTrips.Long[rng.Intn(len(geo.DurationTrips.Long))]
	}
}

func destinationNames(ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if d := geo.DestinationByID(id); d != nil {
			names = append(names, d.Name)
		} else {
			names = append(names, "Japan")
		}
	}
	return names
}

func wardSelections(destinations []string) []models.WardRef {
	var wards []models.WardRef
	for _, d := range destinations {
		if w := geo.WardByID(d); w != nil {
			wards = append(wards, *w)
		}
	}
	return wards
}

// isBusySchedule applies the density override first, then the implicit rule:
// sightseeing-focused trips and large groups get the packed template.
func isBusySchedule(params models.TripParameters) bool {
	switch params.ScheduleDensity {
	case models.DensityTight:
		return true
	case models.DensityRelaxed:
		return false
	}
	for _, s := range params.TravelStyles {
		if s == models.StyleSightseeing {
			return true
		}
	}
	return params.People > 4
}

// pickSeeds shuffles a copy of the seed list and takes count entries, one
// more on a busy schedule.
func pickSeeds(seeds []geo.SeedAttraction, count int, busy bool, rng *rand.Rand) []geo.SeedAttraction {
	if len(seeds) == 0 {
		return nil
	}
	shuffled := make([]geo.SeedAttraction, len(seeds))
	copy(shuffled, seeds)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if busy {
		count++
	}
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

func mealActivity(t, name, description string, duration float64) models.Activity {
	return models.Activity{
		Time: t, Name: name, Description: description,
		Type: models.TypeMeal, Duration: duration,
	}
}

func seedActivity(t, description string, seed geo.SeedAttraction) models.Activity {
	loc := seed.Location
	return models.Activity{
		Time: t, Name: seed.Name, Description: description,
		Type: models.TypeAttraction, Duration: seed.Duration, Location: &loc,
	}
}

func windDownActivity() models.Activity {
	return models.Activity{
		Time: windDownTime, Name: "Back to lodging",
		Description: "Rest up for tomorrow",
		Type:        models.TypeAccommodation, Duration: 0,
	}
}

// buildWardDays cycles the selected wards across days, seeding each day from
// the ward's attraction list with a Tokyo-wide fallback.
func buildWardDays(params models.TripParameters, wards []models.WardRef, start time.Time, busy bool, rng *rand.Rand) []models.Day {
	tokyo := geo.DestinationByID(1)
	days := make([]models.Day, 0, params.TripDuration)

	for d := 0; d < params.TripDuration; d++ {
		ward := wards[d%len(wards)]
		seeds := geo.WardAttractions[ward.ID]
		if len(seeds) == 0 && tokyo != nil {
			seeds = tokyo.Attractions
		}

		day := models.Day{
			Date:     start.AddDate(0, 0, d).Format("2006-01-02"),
			Location: fmt.Sprintf("%s (Tokyo)", ward.Name),
		}

		day.Activities = append(day.Activities,
			mealActivity(breakfastTime, "Breakfast", fmt.Sprintf("Near %s", ward.Name), 1))

		for _, seed := range pickSeeds(seeds, 1, busy, rng) {
			day.Activities = append(day.Activities,
				seedActivity(morningTime, fmt.Sprintf("Highlight of %s", ward.Name), seed))
		}

		day.Activities = append(day.Activities,
			mealActivity(lunchTime, "Lunch", fmt.Sprintf("Local spots in %s", ward.Name), 1))

		afternoonCount := 1
		if busy {
			afternoonCount = 2
		}
		slotTime := afternoonTime
		for _, seed := range pickSeeds(seeds, afternoonCount, busy, rng) {
			day.Activities = append(day.Activities,
				seedActivity(slotTime, fmt.Sprintf("Highlight of %s", ward.Name), seed))
			slotTime = addHours(slotTime, 3) // fixed stagger for ward days
		}

		// The chosen ward must show up at least once.
		hasAttraction := false
		for _, a := range day.Activities {
			if a.Type == models.TypeAttraction {
				hasAttraction = true
				break
			}
		}
		if !hasAttraction {
			day.Activities = append(day.Activities, models.Activity{
				Time: "10:30", Name: fmt.Sprintf("%s walk", ward.Name),
				Description: fmt.Sprintf("Soak in the streets and mood of %s", ward.Name),
				Type:        models.TypeAttraction, Duration: 2,
			})
		}

		day.Activities = append(day.Activities,
			mealActivity(dinnerTime, "Dinner", fmt.Sprintf("Near %s", ward.Name), 1.5),
			windDownActivity())

		sortByClock(day.Activities)
		days = append(days, day)
	}
	return days
}

// buildCityDays cycles through the destination combination, staying 2 days
// per stop on a busy schedule and 3 on a relaxed one.
func buildCityDays(params models.TripParameters, destIDs []int, start time.Time, busy bool, rng *rand.Rand) []models.Day {
	stayDays := 3
	if busy {
		stayDays = 2
	}

	days := make([]models.Day, 0, params.TripDuration)
	destIndex := 0
	for d := 0; d < params.TripDuration; d++ {
		dest := geo.DestinationByID(destIDs[destIndex%len(destIDs)])

		name := "Japan"
		var seeds []geo.SeedAttraction
		if dest != nil {
			name = dest.Name
			seeds = dest.Attractions
		}

		day := models.Day{
			Date:     start.AddDate(0, 0, d).Format("2006-01-02"),
			Location: name,
		}

		day.Activities = append(day.Activities,
			mealActivity(breakfastTime, "Breakfast", "Hotel breakfast or a local cafe", 1))

		for _, seed := range pickSeeds(seeds, 1, busy, rng) {
			day.Activities = append(day.Activities,
				seedActivity(morningTime, fmt.Sprintf("Famous sight in %s", name), seed))
		}

		day.Activities = append(day.Activities,
			mealActivity(lunchTime, "Lunch", "Japanese cuisine at a local favourite", 1))

		afternoonCount := 1
		if busy {
			afternoonCount = 2
		}
		slotTime := afternoonTime
		for _, seed := range pickSeeds(seeds, afternoonCount, busy, rng) {
			day.Activities = append(day.Activities,
				seedActivity(slotTime, fmt.Sprintf("Famous sight in %s", name), seed))
			slotTime = addHours(slotTime, seed.Duration) // stagger by the prior stay
		}

		day.Activities = append(day.Activities,
			mealActivity(dinnerTime, "Dinner", "Japanese cuisine at a local favourite", 1.5),
			windDownActivity())

		sortByClock(day.Activities)
		days = append(days, day)

		if (d+1)%stayDays == 0 {
			destIndex++
		}
	}
	return days
}

// injectAccommodation adds lodging markers: check-in only on the first day,
// check-out only on the last, and depart/return markers on interior days.
func injectAccommodation(it *models.Itinerary, acc *models.Accommodation) {
	if acc == nil || !acc.Location.Valid() {
		return
	}

	name := acc.Name
	if name == "" {
		name = acc.Address
	}
	marker := func(t, description string) models.Activity {
		loc := acc.Location
		return models.Activity{
			Time: t, Name: name, Description: description,
			Type: models.TypeAccommodation, Duration: 0.5, Location: &loc,
		}
	}

	last := len(it.DailySchedule) - 1
	for i := range it.DailySchedule {
		day := &it.DailySchedule[i]
		switch {
		case i > 0 && i < last:
			day.Activities = append([]models.Activity{marker(checkOutTime, "Leave lodging")}, day.Activities...)
			day.Activities = append(day.Activities, marker(checkInTime, "Return to lodging"))
		case i == 0:
			day.Activities = append(day.Activities, marker(checkInTime, "Check in"))
		case i == last:
			day.Activities = append([]models.Activity{marker(checkOutTime, "Check out")}, day.Activities...)
		}
	}
	it.Accommodation = acc
}

// injectAirports prepends the departure airport to day one and appends the
// arrival airport to the last day. Unknown codes degrade to a placeholder
// label with no coordinate.
func injectAirports(it *models.Itinerary, params models.TripParameters) {
	if len(it.DailySchedule) == 0 {
		return
	}

	airportActivity := func(code, t, verb string) models.Activity {
		a := models.Activity{
			Time: t, Name: "Airport", Type: models.TypeAirport, Duration: 1,
		}
		if ap, ok := geo.Airports[code]; ok {
			a.Name = ap.Name
			a.Address = ap.Address
			loc := ap.Location
			a.Location = &loc
		}
		a.Description = fmt.Sprintf("%s %s", verb, a.Name)
		return a
	}

	if params.DepartureAirport != "" {
		dep := airportActivity(params.DepartureAirport, departureAirportTime, "Depart from")
		first := &it.DailySchedule[0]
		first.Activities = append([]models.Activity{dep}, first.Activities...)
		it.DepartureAirport = params.DepartureAirport
		it.DepartureAirportName = dep.Name
	}
	if params.ArrivalAirport != "" {
		arr := airportActivity(params.ArrivalAirport, arrivalAirportTime, "Arrive at")
		last := &it.DailySchedule[len(it.DailySchedule)-1]
		last.Activities = append(last.Activities, arr)
		it.ArrivalAirport = params.ArrivalAirport
		it.ArrivalAirportName = arr.Name
	}
}

// sortByClock stably orders a day's activities by parsed time.
func sortByClock(activities []models.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return parseClock(activities[i].Time) < parseClock(activities[j].Time)
	})
}
