package matches

import (
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

// MatchSummaryDTO is a match row with both team names and the venue
// name resolved, so list consumers never need follow-up lookups.
type MatchSummaryDTO struct {
	ID         int64     `json:"id"           gorm:"column:id"`
	MatchDate  time.Time `json:"match_date"   gorm:"column:match_date"`
	Season     int       `json:"season"       gorm:"column:season"`
	HomeTeamID int64     `json:"home_team_id" gorm:"column:home_team_id"`
	HomeTeam   string    `json:"home_team"    gorm:"column:home_team"`
	AwayTeamID int64     `json:"away_team_id" gorm:"column:away_team_id"`
	AwayTeam   string    `json:"away_team"    gorm:"column:away_team"`
	HomeScore  int       `json:"home_score"   gorm:"column:home_score"`
	AwayScore  int       `json:"away_score"   gorm:"column:away_score"`
	Venue      string    `json:"venue,omitempty" gorm:"column:venue"`
	Attendance *int      `json:"attendance"   gorm:"column:attendance"`
}

type ListMatchesResponseDTO struct {
	Matches    []*MatchSummaryDTO `json:"matches"`
	Pagination pagination.Meta    `json:"pagination"`
}

// MatchFilters are the raw query parameters of the match list. Dates
// stay strings here so the service owns parsing and rejection.
type MatchFilters struct {
	Season    int
	TeamID    int64
	StartDate string
	EndDate   string
}

type LineupEntryDTO struct {
	PlayerID      int64  `json:"player_id"      gorm:"column:player_id"`
	PlayerName    string `json:"player_name"    gorm:"column:player_name"`
	Position      string `json:"position"       gorm:"column:position"`
	ShirtNumber   *int   `json:"shirt_number"   gorm:"column:shirt_number"`
	Started       bool   `json:"started"        gorm:"column:started"`
	MinutesPlayed int    `json:"minutes_played" gorm:"column:minutes_played"`
}

type TeamLineupDTO struct {
	TeamID   int64             `json:"team_id"`
	TeamName string            `json:"team_name"`
	Players  []*LineupEntryDTO `json:"players"`
}

type MatchLineupsResponseDTO struct {
	MatchID int64         `json:"match_id"`
	Home    TeamLineupDTO `json:"home"`
	Away    TeamLineupDTO `json:"away"`
}

type MatchEventDTO struct {
	ID                int64  `json:"id"                  gorm:"column:id"`
	Minute            int    `json:"minute"              gorm:"column:minute"`
	EventType         string `json:"event_type"          gorm:"column:event_type"`
	TeamID            *int64 `json:"team_id"             gorm:"column:team_id"`
	TeamName          string `json:"team_name,omitempty" gorm:"column:team_name"`
	PlayerID          *int64 `json:"player_id"           gorm:"column:player_id"`
	PlayerName        string `json:"player_name,omitempty" gorm:"column:player_name"`
	RelatedPlayerID   *int64 `json:"related_player_id"   gorm:"column:related_player_id"`
	RelatedPlayerName string `json:"related_player_name,omitempty" gorm:"column:related_player_name"`
	Detail            string `json:"detail,omitempty"    gorm:"column:detail"`
}

type MatchEventsResponseDTO struct {
	MatchID int64            `json:"match_id"`
	Events  []*MatchEventDTO `json:"events"`
	Total   int              `json:"total"`
}

type MatchSideStatsDTO struct {
	TeamID        int64  `json:"team_id"`
	TeamName      string `json:"team_name"`
	Goals         int    `json:"goals"`
	YellowCards   int64  `json:"yellow_cards"`
	RedCards      int64  `json:"red_cards"`
	Substitutions int64  `json:"substitutions"`
}

type MatchStatsDTO struct {
	MatchID   int64             `json:"match_id"`
	MatchDate time.Time         `json:"match_date"`
	Season    int               `json:"season"`
	Home      MatchSideStatsDTO `json:"home"`
	Away      MatchSideStatsDTO `json:"away"`
}
