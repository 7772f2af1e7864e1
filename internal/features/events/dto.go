package events

import (
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

// EventFilters are the query parameters shared by the event listings.
type EventFilters struct {
	EventType string
	CardType  string
	Season    int
	TeamID    int64
	PlayerID  int64
}

type EventRowDTO struct {
	ID                int64     `json:"id"         gorm:"column:id"`
	MatchID           int64     `json:"match_id"   gorm:"column:match_id"`
	MatchDate         time.Time `json:"match_date" gorm:"column:match_date"`
	Season            int       `json:"season"     gorm:"column:season"`
	EventType         string    `json:"event_type" gorm:"column:event_type"`
	Minute            int       `json:"minute"     gorm:"column:minute"`
	TeamID            *int64    `json:"team_id"    gorm:"column:team_id"`
	TeamName          string    `json:"team_name,omitempty" gorm:"column:team_name"`
	PlayerID          *int64    `json:"player_id"  gorm:"column:player_id"`
	PlayerName        string    `json:"player_name,omitempty" gorm:"column:player_name"`
	RelatedPlayerID   *int64    `json:"related_player_id" gorm:"column:related_player_id"`
	RelatedPlayerName string    `json:"related_player_name,omitempty" gorm:"column:related_player_name"`
	Detail            string    `json:"detail,omitempty" gorm:"column:detail"`
}

type ListEventsResponseDTO struct {
	Events     []*EventRowDTO  `json:"events"`
	Pagination pagination.Meta `json:"pagination"`
}

// GoalRowDTO is one goal with scorer, assist and fixture context.
type GoalRowDTO struct {
	ID        int64     `json:"id"         gorm:"column:id"`
	MatchID   int64     `json:"match_id"   gorm:"column:match_id"`
	MatchDate time.Time `json:"match_date" gorm:"column:match_date"`
	Season    int       `json:"season"     gorm:"column:season"`
	Minute    int       `json:"minute"     gorm:"column:minute"`
	TeamID    *int64    `json:"team_id"    gorm:"column:team_id"`
	TeamName  string    `json:"team_name,omitempty" gorm:"column:team_name"`
	ScorerID  *int64    `json:"scorer_id"  gorm:"column:scorer_id"`
	Scorer    string    `json:"scorer,omitempty" gorm:"column:scorer"`
	AssistID  *int64    `json:"assist_id"  gorm:"column:assist_id"`
	Assist    string    `json:"assist,omitempty" gorm:"column:assist"`
	HomeTeam  string    `json:"home_team"  gorm:"column:home_team"`
	AwayTeam  string    `json:"away_team"  gorm:"column:away_team"`
}

type ListGoalsResponseDTO struct {
	Goals      []*GoalRowDTO   `json:"goals"`
	Pagination pagination.Meta `json:"pagination"`
}

// CardRowDTO is one booking. CardType is "yellow" or "red".
type CardRowDTO struct {
	ID         int64     `json:"id"         gorm:"column:id"`
	MatchID    int64     `json:"match_id"   gorm:"column:match_id"`
	MatchDate  time.Time `json:"match_date" gorm:"column:match_date"`
	Season     int       `json:"season"     gorm:"column:season"`
	Minute     int       `json:"minute"     gorm:"column:minute"`
	CardType   string    `json:"card_type"  gorm:"column:card_type"`
	TeamID     *int64    `json:"team_id"    gorm:"column:team_id"`
	TeamName   string    `json:"team_name,omitempty" gorm:"column:team_name"`
	PlayerID   *int64    `json:"player_id"  gorm:"column:player_id"`
	PlayerName string    `json:"player_name,omitempty" gorm:"column:player_name"`
}

type ListCardsResponseDTO struct {
	Cards      []*CardRowDTO   `json:"cards"`
	Pagination pagination.Meta `json:"pagination"`
}
