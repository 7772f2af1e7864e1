package events

import (
	"context"
	"fmt"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

type EventService struct {
	eventRepository *EventRepository
}

func (s *EventService) ListEvents(
	ctx context.Context,
	filters EventFilters,
	params pagination.Params,
) (*ListEventsResponseDTO, error) {
	eventTypes, err := parseEventTypeFilter(filters.EventType)
	if err != nil {
		return nil, err
	}

	events, total, err := s.eventRepository.ListEvents(
		ctx, eventTypes, filters.Season, filters.TeamID, filters.PlayerID, params)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &ListEventsResponseDTO{
		Events:     events,
		Pagination: pagination.NewMeta(total, params),
	}, nil
}

func (s *EventService) ListGoals(
	ctx context.Context,
	filters EventFilters,
	params pagination.Params,
) (*ListGoalsResponseDTO, error) {
	goals, total, err := s.eventRepository.ListGoals(
		ctx, filters.Season, filters.TeamID, filters.PlayerID, params)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &ListGoalsResponseDTO{
		Goals:      goals,
		Pagination: pagination.NewMeta(total, params),
	}, nil
}

func (s *EventService) ListCards(
	ctx context.Context,
	filters EventFilters,
	params pagination.Params,
) (*ListCardsResponseDTO, error) {
	cardTypes, err := parseCardTypeFilter(filters.CardType)
	if err != nil {
		return nil, err
	}

	cards, total, err := s.eventRepository.ListCards(
		ctx, cardTypes, filters.Season, filters.TeamID, filters.PlayerID, params)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &ListCardsResponseDTO{
		Cards:      cards,
		Pagination: pagination.NewMeta(total, params),
	}, nil
}

// parseEventTypeFilter validates the event_type parameter. An empty
// value means no filter.
func parseEventTypeFilter(raw string) ([]models.MatchEventType, error) {
	if raw == "" {
		return nil, nil
	}

	eventType := models.MatchEventType(raw)
	switch eventType {
	case models.MatchEventTypeGoal,
		models.MatchEventTypeYellowCard,
		models.MatchEventTypeRedCard,
		models.MatchEventTypeSubstitution:
		return []models.MatchEventType{eventType}, nil
	}

	return nil, api_errors.InvalidParameter(
		fmt.Sprintf("unknown event_type %q", raw))
}

// parseCardTypeFilter maps the card_type parameter onto event types.
// An empty value covers both colors.
func parseCardTypeFilter(raw string) ([]models.MatchEventType, error) {
	switch raw {
	case "":
		return []models.MatchEventType{
			models.MatchEventTypeYellowCard,
			models.MatchEventTypeRedCard,
		}, nil
	case "yellow":
		return []models.MatchEventType{models.MatchEventTypeYellowCard}, nil
	case "red":
		return []models.MatchEventType{models.MatchEventTypeRedCard}, nil
	}

	return nil, api_errors.InvalidParameter(
		fmt.Sprintf("card_type must be yellow or red, got %q", raw))
}
