package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hyunseo/itinerary-backend-go/internal/handler"
	"github.com/hyunseo/itinerary-backend-go/internal/middleware"
	"github.com/hyunseo/itinerary-backend-go/internal/service"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Auth      *handler.AuthHandler
	Plan      *handler.PlanHandler
	Itinerary *handler.ItineraryHandler

	AuthService *service.AuthService

	// Credential endpoint throttling; zero values fall back to defaults.
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// SetupRouter wires middleware and routes
func SetupRouter(h Handlers) *gin.Engine {
	if h.AuthRateLimit <= 0 {
		h.AuthRateLimit = 20
	}
	if h.AuthRateWindow <= 0 {
		h.AuthRateWindow = time.Minute
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Itinerary Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(h.AuthRateLimit, h.AuthRateWindow))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		itineraries := api.Group("/itineraries")
		{
			// Generation runs without an account; saving needs one.
			itineraries.POST("/generate", h.Plan.Generate)
			itineraries.POST("/retime", h.Plan.Retime)

			itineraries.GET("", middleware.OptionalAuth(h.AuthService), h.Itinerary.List)

			authed := itineraries.Group("")
			authed.Use(middleware.RequireAuth(h.AuthService))
			{
				authed.POST("", h.Itinerary.Create)
				authed.GET("/:id", h.Itinerary.Get)
				authed.PUT("/:id", h.Itinerary.Update)
				authed.DELETE("/:id", h.Itinerary.Delete)
			}
		}
	}

	return r
}
