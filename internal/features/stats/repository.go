package stats

import (
	"context"
	"fmt"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
)

type StatsRepository struct{}

// leaderRow is one leaderboard line before ranking. value carries the
// board's stat; matches carries the tie-breaking appearance count.
type leaderRow struct {
	PlayerID   int64  `gorm:"column:player_id"`
	PlayerName string `gorm:"column:player_name"`
	TeamName   string `gorm:"column:team_name"`
	Value      int64  `gorm:"column:value"`
	Matches    int64  `gorm:"column:matches"`
}

// getScoringBoard ranks players by goal events. playerColumn selects
// who gets the credit: e.player_id for scorers, e.related_player_id
// for assists. It is an internal column reference, never user input.
func (r *StatsRepository) getScoringBoard(
	ctx context.Context,
	playerColumn string,
	season, limit int,
) ([]*leaderRow, error) {
	args := make([]any, 0, 4)

	appearanceFilter := ""
	if season > 0 {
		appearanceFilter = " WHERE lm.season = ?"
		args = append(args, season)
	}

	outerFilter := ""
	args = append(args, models.MatchEventTypeGoal)
	if season > 0 {
		outerFilter = " AND m.season = ?"
		args = append(args, season)
	}

	args = append(args, limit)

	sql := fmt.Sprintf(`
		SELECT
			p.id AS player_id,
			p.first_name || ' ' || p.last_name AS player_name,
			COALESCE(t.name, '') AS team_name,
			COUNT(*) AS value,
			COALESCE(la.appearances, 0) AS matches
		FROM match_events e
		JOIN matches m ON e.match_id = m.id
		JOIN players p ON %s = p.id
		LEFT JOIN teams t ON p.team_id = t.id
		LEFT JOIN (
			SELECT ml.player_id, COUNT(*) AS appearances
			FROM match_lineups ml
			JOIN matches lm ON ml.match_id = lm.id%s
			GROUP BY ml.player_id
		) la ON la.player_id = p.id
		WHERE e.event_type = ?%s
		GROUP BY p.id, p.first_name, p.last_name, t.name, la.appearances
		ORDER BY value DESC, matches DESC, player_name ASC
		LIMIT ?`, playerColumn, appearanceFilter, outerFilter)

	var rows = make([]*leaderRow, 0)
	err := storage.GetDb().WithContext(ctx).Raw(sql, args...).Scan(&rows).Error

	return rows, err
}

func (r *StatsRepository) GetGoalBoard(ctx context.Context, season, limit int) ([]*leaderRow, error) {
	return r.getScoringBoard(ctx, "e.player_id", season, limit)
}

func (r *StatsRepository) GetAssistBoard(ctx context.Context, season, limit int) ([]*leaderRow, error) {
	return r.getScoringBoard(ctx, "e.related_player_id", season, limit)
}

// GetCleanSheetBoard ranks goalkeepers by matches where their side
// conceded nothing. Keepers below minAppearances are excluded so a
// single shutout cannot top the board.
func (r *StatsRepository) GetCleanSheetBoard(
	ctx context.Context,
	season, limit, minAppearances int,
) ([]*leaderRow, error) {
	conditions := "ml.position = ?"
	args := []any{"GK"}

	if season > 0 {
		conditions += " AND m.season = ?"
		args = append(args, season)
	}

	args = append(args, minAppearances, limit)

	sql := `
		SELECT
			p.id AS player_id,
			p.first_name || ' ' || p.last_name AS player_name,
			COALESCE(t.name, '') AS team_name,
			COALESCE(SUM(CASE
				WHEN (m.home_team_id = ml.team_id AND m.away_score = 0)
					OR (m.away_team_id = ml.team_id AND m.home_score = 0) THEN 1
				ELSE 0
			END), 0) AS value,
			COUNT(*) AS matches
		FROM match_lineups ml
		JOIN matches m ON ml.match_id = m.id
		JOIN players p ON ml.player_id = p.id
		LEFT JOIN teams t ON p.team_id = t.id
		WHERE ` + conditions + `
		GROUP BY p.id, p.first_name, p.last_name, t.name
		HAVING COUNT(*) >= ?
		ORDER BY value DESC, matches DESC, player_name ASC
		LIMIT ?`

	var rows = make([]*leaderRow, 0)
	err := storage.GetDb().WithContext(ctx).Raw(sql, args...).Scan(&rows).Error

	return rows, err
}

type sideRecordRow struct {
	MatchesPlayed int64 `gorm:"column:matches_played"`
	Wins          int64 `gorm:"column:wins"`
	Draws         int64 `gorm:"column:draws"`
	GoalsFor      int64 `gorm:"column:goals_for"`
	GoalsAgainst  int64 `gorm:"column:goals_against"`
}

// GetSideRecord aggregates one half of a team's season: its home
// matches or its away matches.
func (r *StatsRepository) GetSideRecord(
	ctx context.Context,
	teamID int64,
	season int,
	home bool,
) (*sideRecordRow, error) {
	teamColumn, goalsFor, goalsAgainst := "m.home_team_id", "m.home_score", "m.away_score"
	if !home {
		teamColumn, goalsFor, goalsAgainst = "m.away_team_id", "m.away_score", "m.home_score"
	}

	sql := fmt.Sprintf(`
		SELECT
			COUNT(*) AS matches_played,
			COALESCE(SUM(CASE WHEN %s > %s THEN 1 ELSE 0 END), 0) AS wins,
			COALESCE(SUM(CASE WHEN m.home_score = m.away_score THEN 1 ELSE 0 END), 0) AS draws,
			COALESCE(SUM(%s), 0) AS goals_for,
			COALESCE(SUM(%s), 0) AS goals_against
		FROM matches m
		WHERE %s = ? AND m.season = ?`,
		goalsFor, goalsAgainst, goalsFor, goalsAgainst, teamColumn)

	var row sideRecordRow
	err := storage.GetDb().WithContext(ctx).Raw(sql, teamID, season).Scan(&row).Error

	return &row, err
}

func (r *StatsRepository) GetTeamTopScorers(
	ctx context.Context,
	teamID int64,
	season, limit int,
) ([]*TeamScorerDTO, error) {
	sql := `
		SELECT
			p.id AS player_id,
			p.first_name || ' ' || p.last_name AS player_name,
			COUNT(*) AS goals
		FROM match_events e
		JOIN matches m ON e.match_id = m.id
		JOIN players p ON e.player_id = p.id
		WHERE e.event_type = ? AND e.team_id = ? AND m.season = ?
		GROUP BY p.id, p.first_name, p.last_name
		ORDER BY goals DESC, player_name ASC
		LIMIT ?`

	var scorers = make([]*TeamScorerDTO, 0)
	err := storage.GetDb().WithContext(ctx).Raw(
		sql, models.MatchEventTypeGoal, teamID, season, limit,
	).Scan(&scorers).Error

	return scorers, err
}

type seasonAppearanceRow struct {
	Season        int   `gorm:"column:season"`
	Appearances   int64 `gorm:"column:appearances"`
	Starts        int64 `gorm:"column:starts"`
	MinutesPlayed int64 `gorm:"column:minutes_played"`
}

func (r *StatsRepository) GetSeasonAppearances(
	ctx context.Context,
	playerID int64,
) ([]*seasonAppearanceRow, error) {
	sql := `
		SELECT
			m.season AS season,
			COUNT(*) AS appearances,
			COALESCE(SUM(CASE WHEN ml.started THEN 1 ELSE 0 END), 0) AS starts,
			COALESCE(SUM(ml.minutes_played), 0) AS minutes_played
		FROM match_lineups ml
		JOIN matches m ON ml.match_id = m.id
		WHERE ml.player_id = ?
		GROUP BY m.season
		ORDER BY m.season ASC`

	var rows = make([]*seasonAppearanceRow, 0)
	err := storage.GetDb().WithContext(ctx).Raw(sql, playerID).Scan(&rows).Error

	return rows, err
}

type seasonEventRow struct {
	Season      int   `gorm:"column:season"`
	Goals       int64 `gorm:"column:goals"`
	Assists     int64 `gorm:"column:assists"`
	YellowCards int64 `gorm:"column:yellow_cards"`
	RedCards    int64 `gorm:"column:red_cards"`
}

func (r *StatsRepository) GetSeasonEventTotals(
	ctx context.Context,
	playerID int64,
) ([]*seasonEventRow, error) {
	sql := `
		SELECT
			m.season AS season,
			COALESCE(SUM(CASE WHEN e.event_type = ? AND e.player_id = ? THEN 1 ELSE 0 END), 0) AS goals,
			COALESCE(SUM(CASE WHEN e.event_type = ? AND e.related_player_id = ? THEN 1 ELSE 0 END), 0) AS assists,
			COALESCE(SUM(CASE WHEN e.event_type = ? AND e.player_id = ? THEN 1 ELSE 0 END), 0) AS yellow_cards,
			COALESCE(SUM(CASE WHEN e.event_type = ? AND e.player_id = ? THEN 1 ELSE 0 END), 0) AS red_cards
		FROM match_events e
		JOIN matches m ON e.match_id = m.id
		WHERE e.player_id = ? OR e.related_player_id = ?
		GROUP BY m.season
		ORDER BY m.season ASC`

	var rows = make([]*seasonEventRow, 0)
	err := storage.GetDb().WithContext(ctx).Raw(
		sql,
		models.MatchEventTypeGoal, playerID,
		models.MatchEventTypeGoal, playerID,
		models.MatchEventTypeYellowCard, playerID,
		models.MatchEventTypeRedCard, playerID,
		playerID, playerID,
	).Scan(&rows).Error

	return rows, err
}
