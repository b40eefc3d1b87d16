package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hyunseo/itinerary-backend-go/internal/middleware"
	"github.com/hyunseo/itinerary-backend-go/internal/models"
	"github.com/hyunseo/itinerary-backend-go/internal/service"
	"github.com/hyunseo/itinerary-backend-go/pkg/response"
)

// ItineraryHandler handles HTTP requests for saved itineraries
type ItineraryHandler struct {
	service *service.ItineraryService
}

// NewItineraryHandler creates a new itinerary handler
func NewItineraryHandler(service *service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

type saveItineraryRequest struct {
	Title     string            `json:"title"`
	Itinerary *models.Itinerary `json:"itinerary" binding:"required"`
}

type updateItineraryRequest struct {
	Title     *string           `json:"title"`
	Itinerary *models.Itinerary `json:"itinerary"`
}

// Create handles POST /api/v1/itineraries
func (h *ItineraryHandler) Create(c *gin.Context) {
	var req saveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Itinerary payload is required")
		return
	}

	rec, err := h.service.Save(middleware.UserID(c), req.Title, req.Itinerary)
	if err != nil {
		response.InternalError(c, "Failed to save itinerary")
		return
	}

	response.Success(c, rec)
}

// Get handles GET /api/v1/itineraries/:id
func (h *ItineraryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid itinerary ID")
		return
	}

	rec, err := h.service.Get(id, middleware.UserID(c))
	if err != nil {
		response.InternalError(c, "Failed to get itinerary")
		return
	}
	if rec == nil {
		response.NotFound(c, "Itinerary not found")
		return
	}

	var it models.Itinerary
	if err := json.Unmarshal([]byte(rec.Data), &it); err != nil {
		response.InternalError(c, "Stored itinerary is corrupt")
		return
	}

	response.Success(c, gin.H{
		"id":         rec.ID,
		"title":      rec.Title,
		"created_at": rec.CreatedAt,
		"itinerary":  it,
	})
}

// List handles GET /api/v1/itineraries. Authenticated callers see their own
// saves; anonymous callers see the most recent saves.
func (h *ItineraryHandler) List(c *gin.Context) {
	records, err := h.service.List(middleware.UserID(c))
	if err != nil {
		response.InternalError(c, "Failed to list itineraries")
		return
	}

	response.Success(c, gin.H{"data": records, "total": len(records)})
}

// Update handles PUT /api/v1/itineraries/:id
func (h *ItineraryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid itinerary ID")
		return
	}

	var req updateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid update payload")
		return
	}

	found, err := h.service.Update(id, middleware.UserID(c), req.Title, req.Itinerary)
	if err != nil {
		response.InternalError(c, "Failed to update itinerary")
		return
	}
	if !found {
		response.NotFound(c, "Itinerary not found")
		return
	}

	response.Success(c, gin.H{"id": id})
}

// Delete handles DELETE /api/v1/itineraries/:id
func (h *ItineraryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid itinerary ID")
		return
	}

	found, err := h.service.Delete(id, middleware.UserID(c))
	if err != nil {
		response.InternalError(c, "Failed to delete itinerary")
		return
	}
	if !found {
		response.NotFound(c, "Itinerary not found")
		return
	}

	response.Success(c, gin.H{"id": id})
}
