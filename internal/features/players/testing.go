package players

import (
	"fmt"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
)

// CreateTestPlayer inserts a player on the given roster. Pass nil for
// teamID to create a free agent.
func CreateTestPlayer(teamID *int64, firstName, lastName, position string) *models.Player {
	jerseyNumber := 10

	player := &models.Player{
		FirstName:    firstName,
		LastName:     lastName,
		JerseyNumber: &jerseyNumber,
		Position:     position,
		TeamID:       teamID,
		Nationality:  "USA",
	}

	if err := storage.GetDb().Create(player).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test player: %v", err))
	}

	return player
}
