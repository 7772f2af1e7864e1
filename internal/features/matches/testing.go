package matches

import (
	"fmt"
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
)

// CreateTestMatch inserts a finished match between the two teams,
// dated mid-June of the season so ordering stays deterministic.
func CreateTestMatch(homeTeamID, awayTeamID int64, season, homeScore, awayScore int) *models.Match {
	matchDate := time.Date(season, time.June, 15, 19, 0, 0, 0, time.UTC)
	return CreateTestMatchOn(homeTeamID, awayTeamID, season, homeScore, awayScore, matchDate)
}

// CreateTestMatchOn inserts a finished match played at the given time.
func CreateTestMatchOn(
	homeTeamID, awayTeamID int64,
	season, homeScore, awayScore int,
	matchDate time.Time,
) *models.Match {
	match := &models.Match{
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		MatchDate:  matchDate,
		Season:     season,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
	}

	if err := storage.GetDb().Create(match).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test match: %v", err))
	}

	return match
}

// CreateTestMatchAtVenue inserts a finished match hosted at the venue
// with the given attendance.
func CreateTestMatchAtVenue(
	homeTeamID, awayTeamID, venueID int64,
	season, homeScore, awayScore, attendance int,
) *models.Match {
	match := &models.Match{
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		MatchDate:  time.Date(season, time.June, 15, 19, 0, 0, 0, time.UTC),
		Season:     season,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		VenueID:    &venueID,
		Attendance: &attendance,
	}

	if err := storage.GetDb().Create(match).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test match: %v", err))
	}

	return match
}

// CreateTestLineupEntry puts a player in a match lineup for a team.
func CreateTestLineupEntry(
	matchID, teamID, playerID int64,
	position string,
	started bool,
	minutesPlayed int,
) *models.MatchLineup {
	entry := &models.MatchLineup{
		MatchID:       matchID,
		TeamID:        teamID,
		PlayerID:      playerID,
		Position:      position,
		Started:       started,
		MinutesPlayed: minutesPlayed,
	}

	if err := storage.GetDb().Create(entry).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test lineup entry: %v", err))
	}

	return entry
}

// CreateTestEvent records a match event attributed to a team and player.
func CreateTestEvent(
	matchID, teamID, playerID int64,
	eventType models.MatchEventType,
	minute int,
) *models.MatchEvent {
	event := &models.MatchEvent{
		MatchID:   matchID,
		TeamID:    &teamID,
		PlayerID:  &playerID,
		EventType: eventType,
		Minute:    minute,
	}

	if err := storage.GetDb().Create(event).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test event: %v", err))
	}

	return event
}

// CreateTestGoal records a goal, optionally crediting an assist.
func CreateTestGoal(matchID, teamID, scorerID int64, assistID *int64, minute int) *models.MatchEvent {
	event := &models.MatchEvent{
		MatchID:         matchID,
		TeamID:          &teamID,
		PlayerID:        &scorerID,
		RelatedPlayerID: assistID,
		EventType:       models.MatchEventTypeGoal,
		Minute:          minute,
	}

	if err := storage.GetDb().Create(event).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test goal: %v", err))
	}

	return event
}
