package teams

import (
	"fmt"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"

	"github.com/google/uuid"
)

// CreateTestTeam inserts a team with a unique name so tests sharing
// the in-memory store never collide.
func CreateTestTeam(name string) *models.Team {
	foundedYear := 2013
	capacity := 25000

	team := &models.Team{
		Name:        fmt.Sprintf("%s %s", name, uuid.New().String()[:8]),
		City:        "Portland",
		Stadium:     "Providence Park",
		FoundedYear: &foundedYear,
		Capacity:    &capacity,
	}

	if err := storage.GetDb().Create(team).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test team: %v", err))
	}

	return team
}
