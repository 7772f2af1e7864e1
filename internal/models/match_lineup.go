package models

type MatchLineup struct {
	ID            int64  `json:"id"             gorm:"column:id;primaryKey"`
	MatchID       int64  `json:"match_id"       gorm:"column:match_id;uniqueIndex:idx_match_lineups_match_player"`
	TeamID        int64  `json:"team_id"        gorm:"column:team_id;index"`
	PlayerID      int64  `json:"player_id"      gorm:"column:player_id;uniqueIndex:idx_match_lineups_match_player;index"`
	Position      string `json:"position"       gorm:"column:position"`
	ShirtNumber   *int   `json:"shirt_number"   gorm:"column:shirt_number"`
	Started       bool   `json:"started"        gorm:"column:started"`
	MinutesPlayed int    `json:"minutes_played" gorm:"column:minutes_played"`

	Match  *Match  `json:"-" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Team   *Team   `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Player *Player `json:"-" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}

func (MatchLineup) TableName() string {
	return "match_lineups"
}
