package models

import "time"

type Match struct {
	ID         int64     `json:"id"           gorm:"column:id;primaryKey"`
	HomeTeamID int64     `json:"home_team_id" gorm:"column:home_team_id;index"`
	AwayTeamID int64     `json:"away_team_id" gorm:"column:away_team_id;index"`
	MatchDate  time.Time `json:"match_date"   gorm:"column:match_date;index"`
	Season     int       `json:"season"       gorm:"column:season;index"`
	HomeScore  int       `json:"home_score"   gorm:"column:home_score"`
	AwayScore  int       `json:"away_score"   gorm:"column:away_score"`
	VenueID    *int64    `json:"venue_id"     gorm:"column:venue_id;index"`
	Attendance *int      `json:"attendance"   gorm:"column:attendance"`

	HomeTeam *Team  `json:"-" gorm:"foreignKey:HomeTeamID;constraint:OnDelete:CASCADE"`
	AwayTeam *Team  `json:"-" gorm:"foreignKey:AwayTeamID;constraint:OnDelete:CASCADE"`
	Venue    *Venue `json:"-" gorm:"foreignKey:VenueID;constraint:OnDelete:SET NULL"`
}

func (Match) TableName() string {
	return "matches"
}
