package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hyunseo/itinerary-backend-go/internal/models"
	"github.com/hyunseo/itinerary-backend-go/internal/service"
	"github.com/hyunseo/itinerary-backend-go/pkg/response"
)

// PlanHandler handles HTTP requests for itinerary generation
type PlanHandler struct {
	service *service.PlanService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(service *service.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// Generate handles POST /api/v1/itineraries/generate
func (h *PlanHandler) Generate(c *gin.Context) {
	var params models.TripParameters
	if err := c.ShouldBindJSON(&params); err != nil {
		response.BadRequest(c, "Invalid trip parameters")
		return
	}

	it, err := h.service.Generate(c.Request.Context(), params)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, it)
}

// Retime handles POST /api/v1/itineraries/retime
func (h *PlanHandler) Retime(c *gin.Context) {
	var it models.Itinerary
	if err := c.ShouldBindJSON(&it); err != nil {
		response.BadRequest(c, "Invalid itinerary payload")
		return
	}

	response.Success(c, h.service.Retime(c.Request.Context(), &it))
}
