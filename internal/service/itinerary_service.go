package service

import (
	"encoding/json"
	"fmt"

	"github.com/hyunseo/itinerary-backend-go/internal/models"
	"github.com/hyunseo/itinerary-backend-go/internal/repository"
)

// ItineraryService handles business logic for saved itineraries
type ItineraryService struct {
	repo *repository.ItineraryRepository
}

// NewItineraryService creates a new itinerary service
func NewItineraryService(repo *repository.ItineraryRepository) *ItineraryService {
	return &ItineraryService{repo: repo}
}

// Save stores an itinerary under the owner's account. The payload is
// serialized as JSON; an untitled save falls back to the destination name.
func (s *ItineraryService) Save(userID int64, title string, it *models.Itinerary) (*models.ItineraryRecord, error) {
	if title == "" && len(it.Destinations) > 0 {
		title = it.Destinations[0]
	}
	if title == "" {
		title = "Untitled trip"
	}

	data, err := json.Marshal(it)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize itinerary: %w", err)
	}

	return s.repo.Create(userID, title, string(data))
}

// Get retrieves one saved itinerary scoped to its owner
func (s *ItineraryService) Get(id, userID int64) (*models.ItineraryRecord, error) {
	return s.repo.GetByID(id, userID)
}

// List retrieves the owner's itineraries; with no authenticated user it
// falls back to the most recent saves across all accounts.
func (s *ItineraryService) List(userID int64) ([]models.ItineraryRecord, error) {
	if userID > 0 {
		return s.repo.ListByUser(userID)
	}
	return s.repo.ListRecent()
}

// Update changes the title and/or payload of an owner's itinerary. It
// reports whether the itinerary existed.
func (s *ItineraryService) Update(id, userID int64, title *string, it *models.Itinerary) (bool, error) {
	var data *string
	if it != nil {
		raw, err := json.Marshal(it)
		if err != nil {
			return false, fmt.Errorf("failed to serialize itinerary: %w", err)
		}
		str := string(raw)
		data = &str
	}
	return s.repo.Update(id, userID, title, data)
}

// Delete removes an owner's itinerary. It reports whether the itinerary
// existed.
func (s *ItineraryService) Delete(id, userID int64) (bool, error) {
	return s.repo.Delete(id, userID)
}
