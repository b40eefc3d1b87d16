package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Google Maps web service access
	PlacesAPIKey    string
	ProviderTimeout time.Duration

	// Credential endpoint throttling
	AuthRateLimit  int
	AuthRateWindow time.Duration

	Planning PlanningPolicy
}

// PlanningPolicy carries the tunable constants of the itinerary pipeline.
// The defaults mirror the behaviour the product shipped with; treat them as
// policy, not as facts about the world.
type PlanningPolicy struct {
	AttractionRadiusMeters int     // nearby-search radius for attraction slots
	MealRadiusMeters       int     // nearby-search radius for meal slots
	AttractionMinRating    float64 // candidates below this rating are dropped
	MealMinRating          float64
	AttractionPickTopK     int // random pick among the best K attraction candidates
	MealPickTopK           int

	MaxWalkingMeters     int           // above this, walking is not considered
	ShortWalkSeconds     int           // walks at or under this render as "under 5 min"
	DriveToTransitFactor float64       // driving duration × factor ≈ estimated transit
	FallbackTransitMin   int           // assumed leg duration when every mode fails
	CallDelay            time.Duration // pause between consecutive provider calls
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local runs.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/itineraries.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:            port,
		DBPath:          dbPath,
		JWTSecret:       jwtSecret,
		PlacesAPIKey:    os.Getenv("PLACES_API_KEY"),
		ProviderTimeout: durationEnv("PROVIDER_TIMEOUT", 10*time.Second),
		AuthRateLimit:   intEnv("AUTH_RATE_LIMIT", 20),
		AuthRateWindow:  durationEnv("AUTH_RATE_WINDOW", time.Minute),
		Planning: PlanningPolicy{
			AttractionRadiusMeters: intEnv("ATTRACTION_RADIUS_M", 4000),
			MealRadiusMeters:       intEnv("MEAL_RADIUS_M", 500),
			AttractionMinRating:    floatEnv("ATTRACTION_MIN_RATING", 3.8),
			MealMinRating:          floatEnv("MEAL_MIN_RATING", 3.5),
			AttractionPickTopK:     intEnv("ATTRACTION_PICK_TOP_K", 3),
			MealPickTopK:           intEnv("MEAL_PICK_TOP_K", 5),
			MaxWalkingMeters:       intEnv("MAX_WALKING_M", 1500),
			ShortWalkSeconds:       intEnv("SHORT_WALK_SECONDS", 300),
			DriveToTransitFactor:   floatEnv("DRIVE_TO_TRANSIT_FACTOR", 1.3),
			FallbackTransitMin:     intEnv("FALLBACK_TRANSIT_MIN", 30),
			CallDelay:              durationEnv("PROVIDER_CALL_DELAY", 200*time.Millisecond),
		},
	}
}

func intEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func durationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
