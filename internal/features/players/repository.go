package players

import (
	"context"
	"strings"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"

	"gorm.io/gorm"
)

type PlayerRepository struct{}

const playerDetailColumns = `
	p.id,
	p.first_name,
	p.last_name,
	p.jersey_number,
	p.position,
	p.team_id,
	COALESCE(t.name, '') AS team_name,
	p.birth_date,
	p.nationality`

func (r *PlayerRepository) ListPlayers(
	ctx context.Context,
	filters PlayerFilters,
	params pagination.Params,
) ([]*PlayerDetailDTO, int64, error) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if filters.Search != "" {
		conditions = append(conditions, "LOWER(p.first_name || ' ' || p.last_name) LIKE LOWER(?)")
		args = append(args, "%"+filters.Search+"%")
	}
	if filters.Position != "" {
		conditions = append(conditions, "LOWER(p.position) = LOWER(?)")
		args = append(args, filters.Position)
	}
	if filters.Nationality != "" {
		conditions = append(conditions, "LOWER(p.nationality) = LOWER(?)")
		args = append(args, filters.Nationality)
	}
	if filters.TeamID > 0 {
		conditions = append(conditions, "p.team_id = ?")
		args = append(args, filters.TeamID)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	err := storage.GetDb().WithContext(ctx).
		Raw("SELECT COUNT(*) FROM players p"+whereClause, args...).
		Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	sql := "SELECT " + playerDetailColumns + `
	FROM players p
	LEFT JOIN teams t ON p.team_id = t.id` + whereClause + `
	ORDER BY p.last_name ASC, p.first_name ASC, p.id ASC
	LIMIT ? OFFSET ?`

	queryArgs := append(args, params.PageSize, params.Offset())

	var players = make([]*PlayerDetailDTO, 0)
	err = storage.GetDb().WithContext(ctx).Raw(sql, queryArgs...).Scan(&players).Error

	return players, total, err
}

func (r *PlayerRepository) GetPlayerByID(ctx context.Context, playerID int64) (*models.Player, error) {
	var player models.Player

	err := storage.GetDb().WithContext(ctx).
		Where("id = ?", playerID).
		First(&player).Error

	if err != nil {
		return nil, err
	}

	return &player, nil
}

func (r *PlayerRepository) GetPlayerDetail(ctx context.Context, playerID int64) (*PlayerDetailDTO, error) {
	sql := "SELECT " + playerDetailColumns + `
	FROM players p
	LEFT JOIN teams t ON p.team_id = t.id
	WHERE p.id = ?`

	var player PlayerDetailDTO
	err := storage.GetDb().WithContext(ctx).Raw(sql, playerID).Scan(&player).Error
	if err != nil {
		return nil, err
	}

	if player.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &player, nil
}

// GetPlayerMatches walks the player's lineup appearances. The side
// they played for comes from the lineup row, not the roster, so
// transfers keep their history.
func (r *PlayerRepository) GetPlayerMatches(
	ctx context.Context,
	playerID int64,
	season int,
	params pagination.Params,
) ([]*PlayerMatchDTO, int64, error) {
	conditions := "ml.player_id = ?"
	args := []any{playerID}

	if season > 0 {
		conditions += " AND m.season = ?"
		args = append(args, season)
	}

	countSQL := `
		SELECT COUNT(*)
		FROM match_lineups ml
		JOIN matches m ON ml.match_id = m.id
		WHERE ` + conditions

	var total int64
	err := storage.GetDb().WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	sql := `
		SELECT
			m.id AS match_id,
			m.match_date,
			m.season,
			ml.team_id,
			pt.name AS team,
			CASE WHEN m.home_team_id = ml.team_id THEN aw.name ELSE ht.name END AS opponent,
			CASE WHEN m.home_team_id = ml.team_id THEN 'home' ELSE 'away' END AS side,
			m.home_score,
			m.away_score,
			ml.started,
			ml.minutes_played
		FROM match_lineups ml
		JOIN matches m ON ml.match_id = m.id
		JOIN teams pt ON ml.team_id = pt.id
		JOIN teams ht ON m.home_team_id = ht.id
		JOIN teams aw ON m.away_team_id = aw.id
		WHERE ` + conditions + `
		ORDER BY m.match_date DESC, m.id DESC
		LIMIT ? OFFSET ?`

	queryArgs := append(args, params.PageSize, params.Offset())

	var matches = make([]*PlayerMatchDTO, 0)
	err = storage.GetDb().WithContext(ctx).Raw(sql, queryArgs...).Scan(&matches).Error

	return matches, total, err
}

type playerAppearanceRow struct {
	Appearances   int64 `gorm:"column:appearances"`
	Starts        int64 `gorm:"column:starts"`
	MinutesPlayed int64 `gorm:"column:minutes_played"`
}

func (r *PlayerRepository) GetPlayerAppearances(
	ctx context.Context,
	playerID int64,
	season int,
) (*playerAppearanceRow, error) {
	conditions := "ml.player_id = ?"
	args := []any{playerID}

	if season > 0 {
		conditions += " AND m.season = ?"
		args = append(args, season)
	}

	sql := `
		SELECT
			COUNT(*) AS appearances,
			COALESCE(SUM(CASE WHEN ml.started THEN 1 ELSE 0 END), 0) AS starts,
			COALESCE(SUM(ml.minutes_played), 0) AS minutes_played
		FROM match_lineups ml
		JOIN matches m ON ml.match_id = m.id
		WHERE ` + conditions

	var row playerAppearanceRow
	err := storage.GetDb().WithContext(ctx).Raw(sql, args...).Scan(&row).Error

	return &row, err
}

type playerEventTotalsRow struct {
	Goals       int64 `gorm:"column:goals"`
	Assists     int64 `gorm:"column:assists"`
	YellowCards int64 `gorm:"column:yellow_cards"`
	RedCards    int64 `gorm:"column:red_cards"`
}

// GetPlayerEventTotals counts goals scored, goals assisted and cards
// shown. An assist is a goal event carrying this player as the
// related player.
func (r *PlayerRepository) GetPlayerEventTotals(
	ctx context.Context,
	playerID int64,
	season int,
) (*playerEventTotalsRow, error) {
	conditions := "(e.player_id = ? OR e.related_player_id = ?)"
	args := []any{
		models.MatchEventTypeGoal, playerID,
		models.MatchEventTypeGoal, playerID,
		models.MatchEventTypeYellowCard, playerID,
		models.MatchEventTypeRedCard, playerID,
		playerID, playerID,
	}

	if season > 0 {
		conditions += " AND m.season = ?"
		args = append(args, season)
	}

	sql := `
		SELECT
			COALESCE(SUM(CASE WHEN e.event_type = ? AND e.player_id = ? THEN 1 ELSE 0 END), 0) AS goals,
			COALESCE(SUM(CASE WHEN e.event_type = ? AND e.related_player_id = ? THEN 1 ELSE 0 END), 0) AS assists,
			COALESCE(SUM(CASE WHEN e.event_type = ? AND e.player_id = ? THEN 1 ELSE 0 END), 0) AS yellow_cards,
			COALESCE(SUM(CASE WHEN e.event_type = ? AND e.player_id = ? THEN 1 ELSE 0 END), 0) AS red_cards
		FROM match_events e
		JOIN matches m ON e.match_id = m.id
		WHERE ` + conditions

	var row playerEventTotalsRow
	err := storage.GetDb().WithContext(ctx).Raw(sql, args...).Scan(&row).Error

	return &row, err
}

func (r *PlayerRepository) GetPlayerTeams(ctx context.Context, playerID int64) ([]*PlayerTeamDTO, error) {
	sql := `
		SELECT
			ml.team_id,
			t.name AS team_name,
			MIN(m.season) AS first_season,
			MAX(m.season) AS last_season,
			COUNT(*) AS appearances
		FROM match_lineups ml
		JOIN matches m ON ml.match_id = m.id
		JOIN teams t ON ml.team_id = t.id
		WHERE ml.player_id = ?
		GROUP BY ml.team_id, t.name
		ORDER BY MIN(m.season) ASC, t.name ASC`

	var teams = make([]*PlayerTeamDTO, 0)
	err := storage.GetDb().WithContext(ctx).Raw(sql, playerID).Scan(&teams).Error

	return teams, err
}
