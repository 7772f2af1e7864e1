package teams

import (
	"context"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

type TeamRepository struct{}

func (r *TeamRepository) ListTeams(
	ctx context.Context,
	search string,
	params pagination.Params,
) ([]*models.Team, int64, error) {
	query := storage.GetDb().WithContext(ctx).Model(&models.Team{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(city) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var teams []*models.Team
	err := query.
		Order("name ASC").
		Limit(params.PageSize).
		Offset(params.Offset()).
		Find(&teams).Error

	return teams, total, err
}

func (r *TeamRepository) GetTeamByID(ctx context.Context, teamID int64) (*models.Team, error) {
	var team models.Team

	err := storage.GetDb().WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error

	if err != nil {
		return nil, err
	}

	return &team, nil
}

// GetTeamPlayers returns the current roster, or the distinct players
// who appeared in a lineup for the team during the given season.
func (r *TeamRepository) GetTeamPlayers(
	ctx context.Context,
	teamID int64,
	season int,
) ([]*models.Player, error) {
	var players = make([]*models.Player, 0)

	if season == 0 {
		err := storage.GetDb().WithContext(ctx).
			Where("team_id = ?", teamID).
			Order("last_name ASC, first_name ASC").
			Find(&players).Error

		return players, err
	}

	sql := `
		SELECT DISTINCT p.*
		FROM players p
		JOIN match_lineups ml ON ml.player_id = p.id
		JOIN matches m ON ml.match_id = m.id
		WHERE ml.team_id = ? AND m.season = ?
		ORDER BY p.last_name ASC, p.first_name ASC`

	err := storage.GetDb().WithContext(ctx).Raw(sql, teamID, season).Scan(&players).Error

	return players, err
}

func (r *TeamRepository) GetTeamMatches(
	ctx context.Context,
	teamID int64,
	season int,
	params pagination.Params,
) ([]*TeamMatchDTO, int64, error) {
	conditions := "(m.home_team_id = ? OR m.away_team_id = ?)"
	args := []any{teamID, teamID}

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
			CASE WHEN m.home_team_id = ? THEN aw.name ELSE ht.name END AS opponent,
			CASE WHEN m.home_team_id = ? THEN 'home' ELSE 'away' END AS side,
			m.home_score,
			m.away_score,
			CASE
				WHEN (m.home_team_id = ? AND m.home_score > m.away_score)
					OR (m.away_team_id = ? AND m.away_score > m.home_score) THEN 'W'
				WHEN m.home_score = m.away_score THEN 'D'
				ELSE 'L'
			END AS result
		FROM matches m
		JOIN teams ht ON m.home_team_id = ht.id
		JOIN teams aw ON m.away_team_id = aw.id
		WHERE ` + conditions + `
		ORDER BY m.match_date DESC, m.id DESC
		LIMIT ? OFFSET ?`

	queryArgs := []any{teamID, teamID, teamID, teamID}
	queryArgs = append(queryArgs, args...)
	queryArgs = append(queryArgs, params.PageSize, params.Offset())

	var matches = make([]*TeamMatchDTO, 0)
	err = storage.GetDb().WithContext(ctx).Raw(sql, queryArgs...).Scan(&matches).Error

	return matches, total, err
}

type teamStatsRow struct {
	MatchesPlayed int64 `gorm:"column:matches_played"`
	Wins          int64 `gorm:"column:wins"`
	Draws         int64 `gorm:"column:draws"`
	GoalsFor      int64 `gorm:"column:goals_for"`
	GoalsAgainst  int64 `gorm:"column:goals_against"`
}

func (r *TeamRepository) GetTeamStats(
	ctx context.Context,
	teamID int64,
	season int,
) (*teamStatsRow, error) {
	conditions := "(m.home_team_id = ? OR m.away_team_id = ?)"
	args := []any{teamID, teamID, teamID, teamID, teamID, teamID}

	if season > 0 {
		conditions += " AND m.season = ?"
		args = append(args, season)
	}

	sql := `
		SELECT
			COUNT(*) AS matches_played,
			COALESCE(SUM(CASE
				WHEN (m.home_team_id = ? AND m.home_score > m.away_score)
					OR (m.away_team_id = ? AND m.away_score > m.home_score) THEN 1
				ELSE 0
			END), 0) AS wins,
			COALESCE(SUM(CASE WHEN m.home_score = m.away_score THEN 1 ELSE 0 END), 0) AS draws,
			COALESCE(SUM(CASE WHEN m.home_team_id = ? THEN m.home_score ELSE m.away_score END), 0) AS goals_for,
			COALESCE(SUM(CASE WHEN m.home_team_id = ? THEN m.away_score ELSE m.home_score END), 0) AS goals_against
		FROM matches m
		WHERE ` + conditions

	var row teamStatsRow
	err := storage.GetDb().WithContext(ctx).Raw(sql, args...).Scan(&row).Error

	return &row, err
}
