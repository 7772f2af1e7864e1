package models

type Team struct {
	ID          int64  `json:"id"           gorm:"column:id;primaryKey"`
	Name        string `json:"name"         gorm:"column:name;uniqueIndex"`
	City        string `json:"city"         gorm:"column:city"`
	Stadium     string `json:"stadium"      gorm:"column:stadium"`
	FoundedYear *int   `json:"founded_year" gorm:"column:founded_year"`
	Capacity    *int   `json:"capacity"     gorm:"column:capacity"`
}

func (Team) TableName() string {
	return "teams"
}
