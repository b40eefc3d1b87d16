package models

import "math"

// Coordinate is a WGS84 point. JSON field names follow the itinerary payload
// format the clients already store.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both components are finite numbers.
func (c Coordinate) Valid() bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lng) && !math.IsInf(c.Lng, 0)
}

// Activity type constants
const (
	TypeMeal          = "meal"
	TypeAttraction    = "attraction"
	TypeAirport       = "airport"
	TypeAccommodation = "accommodation"
	TypeCustom        = "custom"
	TypeTransit       = "transit"
)

// Activity is the atomic schedule unit. Time is an opaque "HH:MM" string in
// the trip's local clock, not a timezone-aware instant. A nil Location on a
// non-transit activity means enrichment could not resolve one; downstream
// stages tolerate that. Transit activities never carry a Location.
type Activity struct {
	Time        string  `json:"time"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type"`
	Duration    float64 `json:"duration"` // hours

	Location *Coordinate `json:"location,omitempty"`

	// Provider metadata, present when enrichment resolved the slot.
	PlaceID string  `json:"placeId,omitempty"`
	Rating  float64 `json:"rating,omitempty"`
	Photo   string  `json:"photo,omitempty"`
	Address string  `json:"address,omitempty"`

	// Transit display fields.
	Mode         string `json:"mode,omitempty"`
	DurationText string `json:"durationText,omitempty"`
	DistanceText string `json:"distanceText,omitempty"`
}

// Located reports whether the activity carries a usable coordinate.
func (a Activity) Located() bool {
	return a.Location != nil && a.Location.Valid()
}

// Day is one dated block of activities, kept in non-decreasing time order.
type Day struct {
	Date       string     `json:"date"` // YYYY-MM-DD
	Location   string     `json:"location"`
	Activities []Activity `json:"activities"`
}

// Accommodation is the caller-supplied lodging.
type Accommodation struct {
	Name     string     `json:"name,omitempty"`
	Address  string     `json:"address,omitempty"`
	Location Coordinate `json:"location"`
}

// TripParameters is the immutable input to itinerary generation.
type TripParameters struct {
	StartDate        string         `json:"startDate"` // YYYY-MM-DD
	TripDuration     int            `json:"tripDuration"`
	People           int            `json:"people"`
	TravelStyles     []string       `json:"travelStyles"`
	Destinations     []string       `json:"destinations,omitempty"` // city or ward ids
	ScheduleDensity  string         `json:"scheduleDensity,omitempty"`
	ArrivalAirport   string         `json:"arrivalAirport,omitempty"`
	DepartureAirport string         `json:"departureAirport,omitempty"`
	Accommodation    *Accommodation `json:"accommodation,omitempty"`
}

// Schedule density constants
const (
	DensityTight   = "tight"
	DensityRelaxed = "relaxed"
)

// Travel style constants
const (
	StyleSightseeing = "sightseeing"
	StyleFood        = "food"
	StyleShopping    = "shopping"
	StyleRelaxation  = "relaxation"
	StyleActivity    = "activity"
)

// WardRef labels a Tokyo ward the caller picked.
type WardRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Itinerary is the value threaded through the enrichment pipeline and stored
// as the CRUD payload body.
type Itinerary struct {
	StartDate            string         `json:"startDate"`
	EndDate              string         `json:"endDate"`
	TripDuration         int            `json:"tripDuration"`
	People               int            `json:"people"`
	TravelStyles         []string       `json:"travelStyles"`
	Destinations         []string       `json:"destinations"`
	SelectedWards        []WardRef      `json:"selectedWards,omitempty"`
	DailySchedule        []Day          `json:"dailySchedule"`
	ScheduleDensity      string         `json:"scheduleDensity"`
	ArrivalAirport       string         `json:"arrivalAirport,omitempty"`
	DepartureAirport     string         `json:"departureAirport,omitempty"`
	ArrivalAirportName   string         `json:"arrivalAirportName,omitempty"`
	DepartureAirportName string         `json:"departureAirportName,omitempty"`
	Accommodation        *Accommodation `json:"accommodation,omitempty"`
}
