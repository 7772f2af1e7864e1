package events

import (
	"context"
	"strings"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

type EventRepository struct{}

// eventConditions builds the WHERE fragment shared by the listings.
// Aliases: e match_events, m matches.
func eventConditions(eventTypes []models.MatchEventType, season int, teamID, playerID int64) (string, []any) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if len(eventTypes) == 1 {
		conditions = append(conditions, "e.event_type = ?")
		args = append(args, eventTypes[0])
	} else if len(eventTypes) > 1 {
		conditions = append(conditions, "e.event_type IN ?")
		args = append(args, eventTypes)
	}

	if season > 0 {
		conditions = append(conditions, "m.season = ?")
		args = append(args, season)
	}
	if teamID > 0 {
		conditions = append(conditions, "e.team_id = ?")
		args = append(args, teamID)
	}
	if playerID > 0 {
		conditions = append(conditions, "e.player_id = ?")
		args = append(args, playerID)
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *EventRepository) countEvents(ctx context.Context, whereClause string, args []any) (int64, error) {
	sql := `
		SELECT COUNT(*)
		FROM match_events e
		JOIN matches m ON e.match_id = m.id` + whereClause

	var total int64
	err := storage.GetDb().WithContext(ctx).Raw(sql, args...).Scan(&total).Error

	return total, err
}

func (r *EventRepository) ListEvents(
	ctx context.Context,
	eventTypes []models.MatchEventType,
	season int,
	teamID, playerID int64,
	params pagination.Params,
) ([]*EventRowDTO, int64, error) {
	whereClause, args := eventConditions(eventTypes, season, teamID, playerID)

	total, err := r.countEvents(ctx, whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	sql := `
		SELECT
			e.id,
			e.match_id,
			m.match_date,
			m.season,
			e.event_type,
			e.minute,
			e.team_id,
			COALESCE(t.name, '') AS team_name,
			e.player_id,
			COALESCE(p.first_name || ' ' || p.last_name, '') AS player_name,
			e.related_player_id,
			COALESCE(rp.first_name || ' ' || rp.last_name, '') AS related_player_name,
			e.detail
		FROM match_events e
		JOIN matches m ON e.match_id = m.id
		LEFT JOIN teams t ON e.team_id = t.id
		LEFT JOIN players p ON e.player_id = p.id
		LEFT JOIN players rp ON e.related_player_id = rp.id` + whereClause + `
		ORDER BY m.match_date DESC, e.match_id DESC, e.minute ASC, e.id ASC
		LIMIT ? OFFSET ?`

	queryArgs := append(args, params.PageSize, params.Offset())

	var events = make([]*EventRowDTO, 0)
	err = storage.GetDb().WithContext(ctx).Raw(sql, queryArgs...).Scan(&events).Error

	return events, total, err
}

func (r *EventRepository) ListGoals(
	ctx context.Context,
	season int,
	teamID, playerID int64,
	params pagination.Params,
) ([]*GoalRowDTO, int64, error) {
	goalOnly := []models.MatchEventType{models.MatchEventTypeGoal}
	whereClause, args := eventConditions(goalOnly, season, teamID, playerID)

	total, err := r.countEvents(ctx, whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	sql := `
		SELECT
			e.id,
			e.match_id,
			m.match_date,
			m.season,
			e.minute,
			e.team_id,
			COALESCE(t.name, '') AS team_name,
			e.player_id AS scorer_id,
			COALESCE(p.first_name || ' ' || p.last_name, '') AS scorer,
			e.related_player_id AS assist_id,
			COALESCE(rp.first_name || ' ' || rp.last_name, '') AS assist,
			ht.name AS home_team,
			aw.name AS away_team
		FROM match_events e
		JOIN matches m ON e.match_id = m.id
		JOIN teams ht ON m.home_team_id = ht.id
		JOIN teams aw ON m.away_team_id = aw.id
		LEFT JOIN teams t ON e.team_id = t.id
		LEFT JOIN players p ON e.player_id = p.id
		LEFT JOIN players rp ON e.related_player_id = rp.id` + whereClause + `
		ORDER BY m.match_date DESC, e.match_id DESC, e.minute ASC, e.id ASC
		LIMIT ? OFFSET ?`

	queryArgs := append(args, params.PageSize, params.Offset())

	var goals = make([]*GoalRowDTO, 0)
	err = storage.GetDb().WithContext(ctx).Raw(sql, queryArgs...).Scan(&goals).Error

	return goals, total, err
}

func (r *EventRepository) ListCards(
	ctx context.Context,
	cardTypes []models.MatchEventType,
	season int,
	teamID, playerID int64,
	params pagination.Params,
) ([]*CardRowDTO, int64, error) {
	whereClause, args := eventConditions(cardTypes, season, teamID, playerID)

	total, err := r.countEvents(ctx, whereClause, args)
	if err != nil {
		return nil, 0, err
	}

	sql := `
		SELECT
			e.id,
			e.match_id,
			m.match_date,
			m.season,
			e.minute,
			CASE WHEN e.event_type = ? THEN 'yellow' ELSE 'red' END AS card_type,
			e.team_id,
			COALESCE(t.name, '') AS team_name,
			e.player_id,
			COALESCE(p.first_name || ' ' || p.last_name, '') AS player_name
		FROM match_events e
		JOIN matches m ON e.match_id = m.id
		LEFT JOIN teams t ON e.team_id = t.id
		LEFT JOIN players p ON e.player_id = p.id` + whereClause + `
		ORDER BY m.match_date DESC, e.match_id DESC, e.minute ASC, e.id ASC
		LIMIT ? OFFSET ?`

	queryArgs := []any{models.MatchEventTypeYellowCard}
	queryArgs = append(queryArgs, args...)
	queryArgs = append(queryArgs, params.PageSize, params.Offset())

	var cards = make([]*CardRowDTO, 0)
	err = storage.GetDb().WithContext(ctx).Raw(sql, queryArgs...).Scan(&cards).Error

	return cards, total, err
}
