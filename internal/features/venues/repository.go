package venues

import (
	"context"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

type VenueRepository struct{}

func (r *VenueRepository) ListVenues(
	ctx context.Context,
	search, state string,
	params pagination.Params,
) ([]*models.Venue, int64, error) {
	query := storage.GetDb().WithContext(ctx).Model(&models.Venue{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(city) LIKE LOWER(?)", pattern, pattern)
	}

	if state != "" {
		query = query.Where("LOWER(state) = LOWER(?)", state)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var venues []*models.Venue
	err := query.
		Order("name ASC").
		Limit(params.PageSize).
		Offset(params.Offset()).
		Find(&venues).Error

	return venues, total, err
}

func (r *VenueRepository) GetVenueByID(ctx context.Context, venueID int64) (*models.Venue, error) {
	var venue models.Venue

	err := storage.GetDb().WithContext(ctx).
		Where("id = ?", venueID).
		First(&venue).Error

	if err != nil {
		return nil, err
	}

	return &venue, nil
}

func (r *VenueRepository) GetVenueMatches(
	ctx context.Context,
	venueID int64,
	season int,
	params pagination.Params,
) ([]*VenueMatchDTO, int64, error) {
	conditions := "m.venue_id = ?"
	args := []any{venueID}

	if season > 0 {
		conditions += " AND m.season = ?"
		args = append(args, season)
	}

	var total int64
	err := storage.GetDb().WithContext(ctx).
		Raw("SELECT COUNT(*) FROM matches m WHERE "+conditions, args...).
		Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	sql := `
		SELECT
			m.id,
			m.match_date,
			m.season,
			ht.name AS home_team,
			aw.name AS away_team,
			m.home_score,
			m.away_score,
			m.attendance
		FROM matches m
		JOIN teams ht ON m.home_team_id = ht.id
		JOIN teams aw ON m.away_team_id = aw.id
		WHERE ` + conditions + `
		ORDER BY m.match_date DESC, m.id DESC
		LIMIT ? OFFSET ?`

	args = append(args, params.PageSize, params.Offset())

	var matches = make([]*VenueMatchDTO, 0)
	err = storage.GetDb().WithContext(ctx).Raw(sql, args...).Scan(&matches).Error

	return matches, total, err
}

type venueStatsRow struct {
	MatchesHosted     int64   `gorm:"column:matches_hosted"`
	TotalAttendance   int64   `gorm:"column:total_attendance"`
	AverageAttendance float64 `gorm:"column:average_attendance"`
	HighestAttendance int64   `gorm:"column:highest_attendance"`
	HomeWins          int64   `gorm:"column:home_wins"`
}

func (r *VenueRepository) GetVenueStats(ctx context.Context, venueID int64) (*venueStatsRow, error) {
	sql := `
		SELECT
			COUNT(*) AS matches_hosted,
			COALESCE(SUM(attendance), 0) AS total_attendance,
			COALESCE(AVG(attendance), 0) AS average_attendance,
			COALESCE(MAX(attendance), 0) AS highest_attendance,
			COALESCE(SUM(CASE WHEN home_score > away_score THEN 1 ELSE 0 END), 0) AS home_wins
		FROM matches
		WHERE venue_id = ?`

	var row venueStatsRow
	err := storage.GetDb().WithContext(ctx).Raw(sql, venueID).Scan(&row).Error

	return &row, err
}
