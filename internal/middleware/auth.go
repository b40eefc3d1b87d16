package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hyunseo/itinerary-backend-go/internal/service"
	"github.com/hyunseo/itinerary-backend-go/pkg/response"
)

// userIDKey is the context key middleware sets for handlers.
const userIDKey = "userID"

// RequireAuth rejects requests without a valid bearer token
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := bearerUserID(c, auth)
		if !ok {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves a bearer token when present but lets anonymous
// requests through. Handlers see user ID 0 for anonymous callers.
func OptionalAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := bearerUserID(c, auth); ok {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// UserID returns the authenticated user's ID, or 0 for anonymous requests
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

func bearerUserID(c *gin.Context, auth *service.AuthService) (int64, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return 0, false
	}

	userID, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return 0, false
	}
	return userID, true
}
