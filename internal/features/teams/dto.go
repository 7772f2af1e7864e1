package teams

import (
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

type ListTeamsResponseDTO struct {
	Teams      []*models.Team  `json:"teams"`
	Pagination pagination.Meta `json:"pagination"`
}

type TeamPlayersResponseDTO struct {
	TeamID  int64            `json:"team_id"`
	Season  int              `json:"season,omitempty"`
	Players []*models.Player `json:"players"`
	Total   int              `json:"total"`
}

// TeamMatchDTO carries a match from the perspective of one team:
// which side it played on, who the opponent was and how it ended.
type TeamMatchDTO struct {
	ID        int64     `json:"id"         gorm:"column:id"`
	MatchDate time.Time `json:"match_date" gorm:"column:match_date"`
	Season    int       `json:"season"     gorm:"column:season"`
	Opponent  string    `json:"opponent"   gorm:"column:opponent"`
	Side      string    `json:"side"       gorm:"column:side"`
	HomeScore int       `json:"home_score" gorm:"column:home_score"`
	AwayScore int       `json:"away_score" gorm:"column:away_score"`
	Result    string    `json:"result"     gorm:"column:result"`
}

type TeamMatchesResponseDTO struct {
	TeamID     int64           `json:"team_id"`
	Matches    []*TeamMatchDTO `json:"matches"`
	Pagination pagination.Meta `json:"pagination"`
}

type TeamStatsDTO struct {
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	Season         int    `json:"season,omitempty"`
	MatchesPlayed  int64  `json:"matches_played"`
	Wins           int64  `json:"wins"`
	Draws          int64  `json:"draws"`
	Losses         int64  `json:"losses"`
	GoalsFor       int64  `json:"goals_for"`
	GoalsAgainst   int64  `json:"goals_against"`
	GoalDifference int64  `json:"goal_difference"`
	Points         int64  `json:"points"`
}
