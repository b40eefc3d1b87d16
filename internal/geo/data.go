package geo

import "github.com/hyunseo/itinerary-backend-go/internal/models"

// SeedAttraction is a curated attraction used to fill skeleton slots before
// any provider lookup happens.
type SeedAttraction struct {
	Name     string
	Duration float64 // typical stay, hours
	Kind     string
	Location models.Coordinate
}

// Destination is one catalogued trip destination.
type Destination struct {
	ID              int
	Name            string
	Region          string
	Attractions     []SeedAttraction
	RecommendedDays int
}

// Destinations is the curated destination catalogue.
var Destinations = []Destination{
	{
		ID: 1, Name: "Tokyo", Region: "Kanto", RecommendedDays: 4,
		Attractions: []SeedAttraction{
			{Name: "Tokyo Tower", Duration: 2, Kind: "landmark", Location: models.Coordinate{Lat: 35.6586, Lng: 139.7454}},
			{Name: "Shibuya Scramble Crossing", Duration: 1, Kind: "landmark", Location: models.Coordinate{Lat: 35.6594, Lng: 139.7005}},
			{Name: "Meiji Jingu", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 35.6764, Lng: 139.6993}},
			{Name: "Tokyo Skytree", Duration: 3, Kind: "landmark", Location: models.Coordinate{Lat: 35.7101, Lng: 139.8107}},
			{Name: "Senso-ji Temple", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 35.7147, Lng: 139.7966}},
			{Name: "Harajuku", Duration: 3, Kind: "shopping", Location: models.Coordinate{Lat: 35.6716, Lng: 139.7031}},
			{Name: "Ueno Park", Duration: 3, Kind: "nature", Location: models.Coordinate{Lat: 35.7156, Lng: 139.7713}},
			{Name: "Tokyo Disneyland", Duration: 8, Kind: "entertainment", Location: models.Coordinate{Lat: 35.6329, Lng: 139.8804}},
			{Name: "Shinjuku Gyoen", Duration: 2, Kind: "nature", Location: models.Coordinate{Lat: 35.6851, Lng: 139.7094}},
			{Name: "Akihabara", Duration: 4, Kind: "shopping", Location: models.Coordinate{Lat: 35.6983, Lng: 139.7732}},
		},
	},
	{
		ID: 2, Name: "Kyoto", Region: "Kansai", RecommendedDays: 3,
		Attractions: []SeedAttraction{
			{Name: "Kiyomizu-dera", Duration: 3, Kind: "cultural", Location: models.Coordinate{Lat: 34.9949, Lng: 135.7851}},
			{Name: "Fushimi Inari Shrine", Duration: 3, Kind: "cultural", Location: models.Coordinate{Lat: 34.9671, Lng: 135.7727}},
			{Name: "Arashiyama Bamboo Grove", Duration: 2, Kind: "nature", Location: models.Coordinate{Lat: 35.0169, Lng: 135.6745}},
			{Name: "Kinkaku-ji", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 35.0394, Lng: 135.7292}},
			{Name: "Gion District", Duration: 3, Kind: "cultural", Location: models.Coordinate{Lat: 35.0036, Lng: 135.7756}},
			{Name: "Nijo Castle", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 35.0144, Lng: 135.7483}},
			{Name: "Kyoto Imperial Palace", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 35.0254, Lng: 135.7624}},
		},
	},
	{
		ID: 3, Name: "Osaka", Region: "Kansai", RecommendedDays: 2,
		Attractions: []SeedAttraction{
			{Name: "Osaka Castle", Duration: 3, Kind: "cultural", Location: models.Coordinate{Lat: 34.6873, Lng: 135.5262}},
			{Name: "Dotonbori", Duration: 4, Kind: "entertainment", Location: models.Coordinate{Lat: 34.6687, Lng: 135.5037}},
			{Name: "Universal Studios Japan", Duration: 8, Kind: "entertainment", Location: models.Coordinate{Lat: 34.6654, Lng: 135.4323}},
			{Name: "Shitenno-ji", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 34.6539, Lng: 135.5122}},
			{Name: "Umeda Sky Building", Duration: 2, Kind: "landmark", Location: models.Coordinate{Lat: 34.7052, Lng: 135.4957}},
			{Name: "Shinsaibashi", Duration: 3, Kind: "shopping", Location: models.Coordinate{Lat: 34.6721, Lng: 135.4996}},
		},
	},
	{
		ID: 4, Name: "Hokkaido", Region: "Hokkaido", RecommendedDays: 4,
		Attractions: []SeedAttraction{
			{Name: "Sapporo Clock Tower", Duration: 1, Kind: "landmark", Location: models.Coordinate{Lat: 43.0626, Lng: 141.3544}},
			{Name: "Otaru Canal", Duration: 3, Kind: "landmark", Location: models.Coordinate{Lat: 43.1979, Lng: 141.0041}},
			{Name: "Furano Lavender Fields", Duration: 3, Kind: "nature", Location: models.Coordinate{Lat: 43.3197, Lng: 142.3975}},
			{Name: "Biei Hills", Duration: 4, Kind: "nature", Location: models.Coordinate{Lat: 43.5858, Lng: 142.4655}},
			{Name: "Noboribetsu Jigokudani", Duration: 3, Kind: "nature", Location: models.Coordinate{Lat: 42.4922, Lng: 141.1431}},
			{Name: "Sapporo Beer Museum", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 43.0690, Lng: 141.3731}},
		},
	},
	{
		ID: 5, Name: "Okinawa", Region: "Okinawa", RecommendedDays: 4,
		Attractions: []SeedAttraction{
			{Name: "Shuri Castle", Duration: 3, Kind: "cultural", Location: models.Coordinate{Lat: 26.2172, Lng: 127.7195}},
			{Name: "Churaumi Aquarium", Duration: 4, Kind: "entertainment", Location: models.Coordinate{Lat: 26.6939, Lng: 127.8780}},
			{Name: "Kouri Island", Duration: 5, Kind: "nature", Location: models.Coordinate{Lat: 26.7276, Lng: 128.0288}},
			{Name: "American Village", Duration: 3, Kind: "shopping", Location: models.Coordinate{Lat: 26.3158, Lng: 127.7599}},
			{Name: "Cape Manzamo", Duration: 2, Kind: "nature", Location: models.Coordinate{Lat: 26.1792, Lng: 127.7432}},
			{Name: "Kokusai Street", Duration: 3, Kind: "shopping", Location: models.Coordinate{Lat: 26.2124, Lng: 127.6792}},
		},
	},
	{
		ID: 6, Name: "Nara", Region: "Kansai", RecommendedDays: 1,
		Attractions: []SeedAttraction{
			{Name: "Todai-ji", Duration: 3, Kind: "cultural", Location: models.Coordinate{Lat: 34.6890, Lng: 135.8398}},
			{Name: "Nara Park", Duration: 3, Kind: "nature", Location: models.Coordinate{Lat: 34.6851, Lng: 135.8398}},
			{Name: "Kasuga Taisha", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 34.6810, Lng: 135.8497}},
			{Name: "Isuien Garden", Duration: 2, Kind: "nature", Location: models.Coordinate{Lat: 34.6841, Lng: 135.8328}},
			{Name: "Nara National Museum", Duration: 3, Kind: "cultural", Location: models.Coordinate{Lat: 34.6868, Lng: 135.8397}},
		},
	},
	{
		ID: 7, Name: "Hiroshima", Region: "Chugoku", RecommendedDays: 2,
		Attractions: []SeedAttraction{
			{Name: "Peace Memorial Park", Duration: 3, Kind: "cultural", Location: models.Coordinate{Lat: 34.3955, Lng: 132.4536}},
			{Name: "Atomic Bomb Dome", Duration: 1, Kind: "cultural", Location: models.Coordinate{Lat: 34.3953, Lng: 132.4536}},
			{Name: "Miyajima", Duration: 5, Kind: "cultural", Location: models.Coordinate{Lat: 34.2971, Lng: 132.3197}},
			{Name: "Itsukushima Shrine", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 34.2952, Lng: 132.3194}},
			{Name: "Hiroshima Castle", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 34.4026, Lng: 132.4590}},
		},
	},
	{
		ID: 8, Name: "Hakone", Region: "Kanto", RecommendedDays: 2,
		Attractions: []SeedAttraction{
			{Name: "Owakudani", Duration: 3, Kind: "nature", Location: models.Coordinate{Lat: 35.2343, Lng: 139.0210}},
			{Name: "Lake Ashi", Duration: 3, Kind: "nature", Location: models.Coordinate{Lat: 35.2173, Lng: 139.0076}},
			{Name: "Hakone Shrine", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 35.2047, Lng: 139.0249}},
			{Name: "Hakone Ropeway", Duration: 2, Kind: "nature", Location: models.Coordinate{Lat: 35.2359, Lng: 139.0261}},
			{Name: "Hakone Open-Air Museum", Duration: 3, Kind: "cultural", Location: models.Coordinate{Lat: 35.2456, Lng: 139.0517}},
		},
	},
}

// DestinationByID looks up a catalogued destination.
func DestinationByID(id int) *Destination {
	for i := range Destinations {
		if Destinations[i].ID == id {
			return &Destinations[i]
		}
	}
	return nil
}

// CityID maps a city selector to its catalogue id. Unknown selectors fall
// back to Tokyo rather than failing.
func CityID(city string) int {
	if id, ok := cityIDs[city]; ok {
		return id
	}
	return 1
}

var cityIDs = map[string]int{
	"tokyo":     1,
	"kyoto":     2,
	"osaka":     3,
	"fukuoka":   4,
	"sapporo":   5,
	"nara":      6,
	"hiroshima": 7,
	"nagoya":    8,
}

// DurationTrips buckets recommended destination combinations by trip length:
// short is up to 5 days, medium 6-9, long 10 and above.
var DurationTrips = struct {
	Short  [][]int
	Medium [][]int
	Long   [][]int
}{
	Short: [][]int{
		{1},    // Tokyo only
		{2, 6}, // Kyoto + Nara
		{3, 6}, // Osaka + Nara
		{8, 1}, // Hakone + Tokyo
	},
	Medium: [][]int{
		{1, 2, 3},
		{1, 8, 2},
		{3, 2, 6, 7},
		{4},
	},
	Long: [][]int{
		{1, 8, 2, 3, 6},
		{1, 2, 3, 7},
		{5},
		{1, 4},
	},
}

// TokyoWards lists the 23 special wards selectable as day areas.
var TokyoWards = []models.WardRef{
	{ID: "chiyoda", Name: "Chiyoda"},
	{ID: "chuo", Name: "Chuo"},
	{ID: "minato", Name: "Minato"},
	{ID: "shinjuku", Name: "Shinjuku"},
	{ID: "bunkyo", Name: "Bunkyo"},
	{ID: "taito", Name: "Taito"},
	{ID: "sumida", Name: "Sumida"},
	{ID: "koto", Name: "Koto"},
	{ID: "shinagawa", Name: "Shinagawa"},
	{ID: "meguro", Name: "Meguro"},
	{ID: "ota", Name: "Ota"},
	{ID: "setagaya", Name: "Setagaya"},
	{ID: "shibuya", Name: "Shibuya"},
	{ID: "nakano", Name: "Nakano"},
	{ID: "suginami", Name: "Suginami"},
	{ID: "toshima", Name: "Toshima"},
	{ID: "kita", Name: "Kita"},
	{ID: "arakawa", Name: "Arakawa"},
	{ID: "itabashi", Name: "Itabashi"},
	{ID: "nerima", Name: "Nerima"},
	{ID: "adachi", Name: "Adachi"},
	{ID: "katsushika", Name: "Katsushika"},
	{ID: "edogawa", Name: "Edogawa"},
}

// WardByID returns the ward entry for an id, or nil.
func WardByID(id string) *models.WardRef {
	for i := range TokyoWards {
		if TokyoWards[i].ID == id {
			return &TokyoWards[i]
		}
	}
	return nil
}

// WardAttractions holds per-ward seed attractions. Wards without an entry
// fall back to the Tokyo catalogue.
var WardAttractions = map[string][]SeedAttraction{
	"shinjuku": {
		{Name: "Shinjuku Gyoen", Duration: 2, Kind: "nature", Location: models.Coordinate{Lat: 35.6851, Lng: 139.7094}},
		{Name: "Kabukicho", Duration: 2, Kind: "entertainment", Location: models.Coordinate{Lat: 35.6951, Lng: 139.7020}},
	},
	"shibuya": {
		{Name: "Shibuya Scramble Crossing", Duration: 1, Kind: "landmark", Location: models.Coordinate{Lat: 35.6594, Lng: 139.7005}},
		{Name: "Harajuku", Duration: 2, Kind: "shopping", Location: models.Coordinate{Lat: 35.6716, Lng: 139.7031}},
		{Name: "Meiji Jingu", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 35.6764, Lng: 139.6993}},
	},
	"sumida": {
		{Name: "Tokyo Skytree", Duration: 3, Kind: "landmark", Location: models.Coordinate{Lat: 35.7101, Lng: 139.8107}},
	},
	"taito": {
		{Name: "Senso-ji Temple", Duration: 2, Kind: "cultural", Location: models.Coordinate{Lat: 35.7147, Lng: 139.7966}},
		{Name: "Ueno Park", Duration: 3, Kind: "nature", Location: models.Coordinate{Lat: 35.7156, Lng: 139.7713}},
	},
}

// Hub is a named well-known area used as a search start point.
type Hub struct {
	Name     string
	Location models.Coordinate
}

// WardHotspots maps a ward id to its busiest sightseeing area, which makes a
// better search anchor than the ward's administrative center.
var WardHotspots = map[string]Hub{
	"chuo":      {Name: "Ginza", Location: models.Coordinate{Lat: 35.6719, Lng: 139.7650}},
	"chiyoda":   {Name: "Tokyo Station", Location: models.Coordinate{Lat: 35.6812, Lng: 139.7671}},
	"minato":    {Name: "Roppongi", Location: models.Coordinate{Lat: 35.6586, Lng: 139.7454}},
	"shinjuku":  {Name: "Shinjuku", Location: models.Coordinate{Lat: 35.6896, Lng: 139.7006}},
	"shibuya":   {Name: "Shibuya", Location: models.Coordinate{Lat: 35.6595, Lng: 139.7004}},
	"taito":     {Name: "Asakusa", Location: models.Coordinate{Lat: 35.7148, Lng: 139.7967}},
	"sumida":    {Name: "Skytree", Location: models.Coordinate{Lat: 35.7101, Lng: 139.8107}},
	"koto":      {Name: "Odaiba", Location: models.Coordinate{Lat: 35.6270, Lng: 139.7789}},
	"shinagawa": {Name: "Shinagawa", Location: models.Coordinate{Lat: 35.6284, Lng: 139.7387}},
	"meguro":    {Name: "Nakameguro", Location: models.Coordinate{Lat: 35.6438, Lng: 139.7156}},
	"setagaya":  {Name: "Shimokitazawa", Location: models.Coordinate{Lat: 35.6464, Lng: 139.6533}},
	"toshima":   {Name: "Ikebukuro", Location: models.Coordinate{Lat: 35.7295, Lng: 139.7109}},
	"bunkyo":    {Name: "Hongo", Location: models.Coordinate{Lat: 35.7071, Lng: 139.7514}},
}

// StartHubs are the well-known Tokyo areas used as random search start points
// when the caller picked no ward.
var StartHubs = []Hub{
	{Name: "Shinjuku", Location: models.Coordinate{Lat: 35.6938, Lng: 139.7036}},
	{Name: "Shibuya", Location: models.Coordinate{Lat: 35.6595, Lng: 139.7004}},
	{Name: "Asakusa", Location: models.Coordinate{Lat: 35.7148, Lng: 139.7967}},
	{Name: "Ginza", Location: models.Coordinate{Lat: 35.6720, Lng: 139.7650}},
	{Name: "Ueno", Location: models.Coordinate{Lat: 35.7141, Lng: 139.7774}},
	{Name: "Harajuku", Location: models.Coordinate{Lat: 35.6702, Lng: 139.7027}},
	{Name: "Akihabara", Location: models.Coordinate{Lat: 35.6984, Lng: 139.7731}},
	{Name: "Roppongi", Location: models.Coordinate{Lat: 35.6627, Lng: 139.7300}},
}

// FallbackHubs is the ordered retry list when a search anchor yields nothing.
var FallbackHubs = []Hub{
	{Name: "Shinjuku", Location: models.Coordinate{Lat: 35.6938, Lng: 139.7036}},
	{Name: "Shibuya", Location: models.Coordinate{Lat: 35.6595, Lng: 139.7004}},
	{Name: "Ginza", Location: models.Coordinate{Lat: 35.6720, Lng: 139.7650}},
	{Name: "Asakusa", Location: models.Coordinate{Lat: 35.7148, Lng: 139.7967}},
}

// Airport is a catalogued airport with a fixed coordinate.
type Airport struct {
	ID       string
	Name     string
	Code     string
	Address  string
	Location models.Coordinate
}

// Airports maps airport selectors to their catalogue entries.
var Airports = map[string]Airport{
	"narita": {
		ID: "narita", Name: "Narita International Airport", Code: "NRT",
		Address:  "1-1 Furugome, Narita, Chiba 282-0004, Japan",
		Location: models.Coordinate{Lat: 35.7647, Lng: 140.3864},
	},
	"haneda": {
		ID: "haneda", Name: "Haneda Airport", Code: "HND",
		Address:  "Hanedakuko, Ota City, Tokyo 144-0041, Japan",
		Location: models.Coordinate{Lat: 35.5494, Lng: 139.7798},
	},
}
