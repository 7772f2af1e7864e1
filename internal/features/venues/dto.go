package venues

import (
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

type ListVenuesResponseDTO struct {
	Venues     []*models.Venue `json:"venues"`
	Pagination pagination.Meta `json:"pagination"`
}

// VenueMatchDTO is a hosted match with both team names resolved.
type VenueMatchDTO struct {
	ID         int64     `json:"id"         gorm:"column:id"`
	MatchDate  time.Time `json:"match_date" gorm:"column:match_date"`
	Season     int       `json:"season"     gorm:"column:season"`
	HomeTeam   string    `json:"home_team"  gorm:"column:home_team"`
	AwayTeam   string    `json:"away_team"  gorm:"column:away_team"`
	HomeScore  int       `json:"home_score" gorm:"column:home_score"`
	AwayScore  int       `json:"away_score" gorm:"column:away_score"`
	Attendance *int      `json:"attendance" gorm:"column:attendance"`
}

type VenueMatchesResponseDTO struct {
	VenueID    int64            `json:"venue_id"`
	Matches    []*VenueMatchDTO `json:"matches"`
	Pagination pagination.Meta  `json:"pagination"`
}

type VenueStatsDTO struct {
	VenueID           int64   `json:"venue_id"`
	VenueName         string  `json:"venue_name"`
	MatchesHosted     int64   `json:"matches_hosted"`
	TotalAttendance   int64   `json:"total_attendance"`
	AverageAttendance float64 `json:"average_attendance"`
	HighestAttendance int64   `json:"highest_attendance"`
	HomeWins          int64   `json:"home_wins"`
	HomeWinPercentage float64 `json:"home_win_percentage"`
}
