package players

import (
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

// PlayerDetailDTO is a player row with the team name resolved.
type PlayerDetailDTO struct {
	ID           int64      `json:"id"            gorm:"column:id"`
	FirstName    string     `json:"first_name"    gorm:"column:first_name"`
	LastName     string     `json:"last_name"     gorm:"column:last_name"`
	JerseyNumber *int       `json:"jersey_number" gorm:"column:jersey_number"`
	Position     string     `json:"position"      gorm:"column:position"`
	TeamID       *int64     `json:"team_id"       gorm:"column:team_id"`
	TeamName     string     `json:"team_name,omitempty" gorm:"column:team_name"`
	BirthDate    *time.Time `json:"birth_date"    gorm:"column:birth_date"`
	Nationality  string     `json:"nationality"   gorm:"column:nationality"`
}

type ListPlayersResponseDTO struct {
	Players    []*PlayerDetailDTO `json:"players"`
	Pagination pagination.Meta    `json:"pagination"`
}

// PlayerFilters are the query parameters of the player list.
type PlayerFilters struct {
	Search      string
	Position    string
	Nationality string
	TeamID      int64
}

// PlayerMatchDTO is one appearance from the player's perspective.
type PlayerMatchDTO struct {
	MatchID       int64     `json:"match_id"       gorm:"column:match_id"`
	MatchDate     time.Time `json:"match_date"     gorm:"column:match_date"`
	Season        int       `json:"season"         gorm:"column:season"`
	TeamID        int64     `json:"team_id"        gorm:"column:team_id"`
	Team          string    `json:"team"           gorm:"column:team"`
	Opponent      string    `json:"opponent"       gorm:"column:opponent"`
	Side          string    `json:"side"           gorm:"column:side"`
	HomeScore     int       `json:"home_score"     gorm:"column:home_score"`
	AwayScore     int       `json:"away_score"     gorm:"column:away_score"`
	Started       bool      `json:"started"        gorm:"column:started"`
	MinutesPlayed int       `json:"minutes_played" gorm:"column:minutes_played"`
}

type PlayerMatchesResponseDTO struct {
	PlayerID   int64             `json:"player_id"`
	Matches    []*PlayerMatchDTO `json:"matches"`
	Pagination pagination.Meta   `json:"pagination"`
}

type PlayerStatsDTO struct {
	PlayerID      int64  `json:"player_id"`
	PlayerName    string `json:"player_name"`
	Season        int    `json:"season,omitempty"`
	Appearances   int64  `json:"appearances"`
	Starts        int64  `json:"starts"`
	MinutesPlayed int64  `json:"minutes_played"`
	Goals         int64  `json:"goals"`
	Assists       int64  `json:"assists"`
	YellowCards   int64  `json:"yellow_cards"`
	RedCards      int64  `json:"red_cards"`
}

// PlayerTeamDTO is one stop in a player's career, reconstructed from
// the lineups they actually appeared in.
type PlayerTeamDTO struct {
	TeamID      int64  `json:"team_id"      gorm:"column:team_id"`
	TeamName    string `json:"team_name"    gorm:"column:team_name"`
	FirstSeason int    `json:"first_season" gorm:"column:first_season"`
	LastSeason  int    `json:"last_season"  gorm:"column:last_season"`
	Appearances int64  `json:"appearances"  gorm:"column:appearances"`
}

type PlayerTeamsResponseDTO struct {
	PlayerID int64            `json:"player_id"`
	Teams    []*PlayerTeamDTO `json:"teams"`
	Total    int              `json:"total"`
}
