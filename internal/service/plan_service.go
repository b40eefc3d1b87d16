package service

import (
	"context"

	"github.com/hyunseo/itinerary-backend-go/internal/models"
	"github.com/hyunseo/itinerary-backend-go/internal/planner"
)

// PlanService fronts the generation pipeline for the HTTP layer
type PlanService struct {
	planner *planner.Planner
}

// NewPlanService creates a new plan service
func NewPlanService(p *planner.Planner) *PlanService {
	return &PlanService{planner: p}
}

// Generate builds a fully enriched itinerary from trip parameters
func (s *PlanService) Generate(ctx context.Context, params models.TripParameters) (*models.Itinerary, error) {
	return s.planner.Generate(ctx, params)
}

// Retime recomputes travel legs and wall-clock times after manual edits
func (s *PlanService) Retime(ctx context.Context, it *models.Itinerary) *models.Itinerary {
	return s.planner.Retime(ctx, it)
}
