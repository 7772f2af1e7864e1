package venues

import (
	"fmt"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"

	"github.com/google/uuid"
)

// CreateTestVenue inserts a venue with a unique name so tests sharing
// the in-memory store never collide.
func CreateTestVenue(name string) *models.Venue {
	capacity := 22000
	openedYear := 2019

	venue := &models.Venue{
		Name:       fmt.Sprintf("%s %s", name, uuid.New().String()[:8]),
		City:       "Portland",
		State:      "OR",
		Capacity:   &capacity,
		Surface:    "grass",
		OpenedYear: &openedYear,
	}

	if err := storage.GetDb().Create(venue).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test venue: %v", err))
	}

	return venue
}
