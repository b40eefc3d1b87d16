package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hyunseo/itinerary-backend-go/internal/api"
	"github.com/hyunseo/itinerary-backend-go/internal/config"
	"github.com/hyunseo/itinerary-backend-go/internal/database"
	"github.com/hyunseo/itinerary-backend-go/internal/handler"
	"github.com/hyunseo/itinerary-backend-go/internal/planner"
	"github.com/hyunseo/itinerary-backend-go/internal/places"
	"github.com/hyunseo/itinerary-backend-go/internal/repository"
	"github.com/hyunseo/itinerary-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	if err := database.Migrate(database.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	provider := places.NewGoogleClient(cfg.PlacesAPIKey, cfg.ProviderTimeout)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	plan := planner.New(provider, cfg.Planning, rng)

	userRepo := repository.NewUserRepository(database.GetDB())
	itinRepo := repository.NewItineraryRepository(database.GetDB())

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	itinService := service.NewItineraryService(itinRepo)
	planService := service.NewPlanService(plan)

	router := api.SetupRouter(api.Handlers{
		Auth:           handler.NewAuthHandler(authService),
		Plan:           handler.NewPlanHandler(planService),
		Itinerary:      handler.NewItineraryHandler(itinService),
		AuthService:    authService,
		AuthRateLimit:  cfg.AuthRateLimit,
		AuthRateWindow: cfg.AuthRateWindow,
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
