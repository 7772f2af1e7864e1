package models

type Venue struct {
	ID         int64  `json:"id"          gorm:"column:id;primaryKey"`
	Name       string `json:"name"        gorm:"column:name;uniqueIndex"`
	City       string `json:"city"        gorm:"column:city"`
	State      string `json:"state"       gorm:"column:state;index"`
	Capacity   *int   `json:"capacity"    gorm:"column:capacity"`
	Surface    string `json:"surface"     gorm:"column:surface"`
	OpenedYear *int   `json:"opened_year" gorm:"column:opened_year"`
}

func (Venue) TableName() string {
	return "venues"
}
