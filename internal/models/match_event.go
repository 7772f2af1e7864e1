package models

type MatchEventType string

const (
	MatchEventTypeGoal         MatchEventType = "goal"
	MatchEventTypeYellowCard   MatchEventType = "yellow_card"
	MatchEventTypeRedCard      MatchEventType = "red_card"
	MatchEventTypeSubstitution MatchEventType = "substitution"
)

// MatchEvent is one in-match occurrence. RelatedPlayerID carries the
// assist scorer for goals and the replaced player for substitutions.
type MatchEvent struct {
	ID              int64          `json:"id"                gorm:"column:id;primaryKey"`
	MatchID         int64          `json:"match_id"          gorm:"column:match_id;index"`
	TeamID          *int64         `json:"team_id"           gorm:"column:team_id;index"`
	PlayerID        *int64         `json:"player_id"         gorm:"column:player_id;index"`
	RelatedPlayerID *int64         `json:"related_player_id" gorm:"column:related_player_id;index"`
	EventType       MatchEventType `json:"event_type"        gorm:"column:event_type;index"`
	Minute          int            `json:"minute"            gorm:"column:minute"`
	Detail          string         `json:"detail"            gorm:"column:detail"`

	Match         *Match  `json:"-" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Team          *Team   `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Player        *Player `json:"-" gorm:"foreignKey:PlayerID;constraint:OnDelete:SET NULL"`
	RelatedPlayer *Player `json:"-" gorm:"foreignKey:RelatedPlayerID;constraint:OnDelete:SET NULL"`
}

func (MatchEvent) TableName() string {
	return "match_events"
}
