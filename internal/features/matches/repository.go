package matches

import (
	"context"
	"strings"
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"

	"gorm.io/gorm"
)

type MatchRepository struct{}

const matchSummaryColumns = `
	m.id,
	m.match_date,
	m.season,
	m.home_team_id,
	ht.name AS home_team,
	m.away_team_id,
	aw.name AS away_team,
	m.home_score,
	m.away_score,
	COALESCE(v.name, '') AS venue,
	m.attendance`

const matchSummaryJoins = `
	FROM matches m
	JOIN teams ht ON m.home_team_id = ht.id
	JOIN teams aw ON m.away_team_id = aw.id
	LEFT JOIN venues v ON m.venue_id = v.id`

// ListMatches filters on match columns only, so the count query can
// skip the name joins. The end bound is exclusive; the service widens
// whole-date inputs to cover the full day.
func (r *MatchRepository) ListMatches(
	ctx context.Context,
	season int,
	teamID int64,
	start *time.Time,
	end *time.Time,
	params pagination.Params,
) ([]*MatchSummaryDTO, int64, error) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if season > 0 {
		conditions = append(conditions, "m.season = ?")
		args = append(args, season)
	}
	if teamID > 0 {
		conditions = append(conditions, "(m.home_team_id = ? OR m.away_team_id = ?)")
		args = append(args, teamID, teamID)
	}
	if start != nil {
		conditions = append(conditions, "m.match_date >= ?")
		args = append(args, *start)
	}
	if end != nil {
		conditions = append(conditions, "m.match_date < ?")
		args = append(args, *end)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	err := storage.GetDb().WithContext(ctx).
		Raw("SELECT COUNT(*) FROM matches m"+whereClause, args...).
		Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	sql := "SELECT " + matchSummaryColumns + matchSummaryJoins + whereClause + `
	ORDER BY m.match_date DESC, m.id DESC
	LIMIT ? OFFSET ?`

	queryArgs := append(args, params.PageSize, params.Offset())

	var matches = make([]*MatchSummaryDTO, 0)
	err = storage.GetDb().WithContext(ctx).Raw(sql, queryArgs...).Scan(&matches).Error

	return matches, total, err
}

func (r *MatchRepository) GetMatchByID(ctx context.Context, matchID int64) (*models.Match, error) {
	var match models.Match

	err := storage.GetDb().WithContext(ctx).
		Where("id = ?", matchID).
		First(&match).Error

	if err != nil {
		return nil, err
	}

	return &match, nil
}

func (r *MatchRepository) GetMatchDetail(ctx context.Context, matchID int64) (*MatchSummaryDTO, error) {
	sql := "SELECT " + matchSummaryColumns + matchSummaryJoins + " WHERE m.id = ?"

	var match MatchSummaryDTO
	err := storage.GetDb().WithContext(ctx).Raw(sql, matchID).Scan(&match).Error
	if err != nil {
		return nil, err
	}

	// Scan leaves the struct zeroed when no row matched.
	if match.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &match, nil
}

type lineupRow struct {
	TeamID        int64  `gorm:"column:team_id"`
	PlayerID      int64  `gorm:"column:player_id"`
	PlayerName    string `gorm:"column:player_name"`
	Position      string `gorm:"column:position"`
	ShirtNumber   *int   `gorm:"column:shirt_number"`
	Started       bool   `gorm:"column:started"`
	MinutesPlayed int    `gorm:"column:minutes_played"`
}

func (r *MatchRepository) GetMatchLineups(ctx context.Context, matchID int64) ([]*lineupRow, error) {
	sql := `
		SELECT
			ml.team_id,
			ml.player_id,
			p.first_name || ' ' || p.last_name AS player_name,
			ml.position,
			ml.shirt_number,
			ml.started,
			ml.minutes_played
		FROM match_lineups ml
		JOIN players p ON ml.player_id = p.id
		WHERE ml.match_id = ?
		ORDER BY ml.started DESC, ml.shirt_number ASC`

	var rows = make([]*lineupRow, 0)
	err := storage.GetDb().WithContext(ctx).Raw(sql, matchID).Scan(&rows).Error

	return rows, err
}

func (r *MatchRepository) GetMatchEvents(ctx context.Context, matchID int64) ([]*MatchEventDTO, error) {
	sql := `
		SELECT
			e.id,
			e.minute,
			e.event_type,
			e.team_id,
			COALESCE(t.name, '') AS team_name,
			e.player_id,
			COALESCE(p.first_name || ' ' || p.last_name, '') AS player_name,
			e.related_player_id,
			COALESCE(rp.first_name || ' ' || rp.last_name, '') AS related_player_name,
			e.detail
		FROM match_events e
		LEFT JOIN teams t ON e.team_id = t.id
		LEFT JOIN players p ON e.player_id = p.id
		LEFT JOIN players rp ON e.related_player_id = rp.id
		WHERE e.match_id = ?
		ORDER BY e.minute ASC, e.id ASC`

	var events = make([]*MatchEventDTO, 0)
	err := storage.GetDb().WithContext(ctx).Raw(sql, matchID).Scan(&events).Error

	return events, err
}

type eventCountRow struct {
	TeamID        int64 `gorm:"column:team_id"`
	YellowCards   int64 `gorm:"column:yellow_cards"`
	RedCards      int64 `gorm:"column:red_cards"`
	Substitutions int64 `gorm:"column:substitutions"`
}

func (r *MatchRepository) GetMatchEventCounts(ctx context.Context, matchID int64) ([]*eventCountRow, error) {
	sql := `
		SELECT
			e.team_id,
			COALESCE(SUM(CASE WHEN e.event_type = ? THEN 1 ELSE 0 END), 0) AS yellow_cards,
			COALESCE(SUM(CASE WHEN e.event_type = ? THEN 1 ELSE 0 END), 0) AS red_cards,
			COALESCE(SUM(CASE WHEN e.event_type = ? THEN 1 ELSE 0 END), 0) AS substitutions
		FROM match_events e
		WHERE e.match_id = ? AND e.team_id IS NOT NULL
		GROUP BY e.team_id`

	var rows = make([]*eventCountRow, 0)
	err := storage.GetDb().WithContext(ctx).Raw(
		sql,
		models.MatchEventTypeYellowCard,
		models.MatchEventTypeRedCard,
		models.MatchEventTypeSubstitution,
		matchID,
	).Scan(&rows).Error

	return rows, err
}
