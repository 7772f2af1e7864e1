package models

import "time"

type Player struct {
	ID           int64      `json:"id"            gorm:"column:id;primaryKey"`
	FirstName    string     `json:"first_name"    gorm:"column:first_name;index"`
	LastName     string     `json:"last_name"     gorm:"column:last_name;index"`
	JerseyNumber *int       `json:"jersey_number" gorm:"column:jersey_number"`
	Position     string     `json:"position"      gorm:"column:position;index"`
	TeamID       *int64     `json:"team_id"       gorm:"column:team_id;index"`
	BirthDate    *time.Time `json:"birth_date"    gorm:"column:birth_date"`
	Nationality  string     `json:"nationality"   gorm:"column:nationality;index"`

	Team *Team `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

func (Player) TableName() string {
	return "players"
}
