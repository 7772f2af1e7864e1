package players

import (
	"context"
	"fmt"

	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

type PlayerService struct {
	playerRepository *PlayerRepository
}

func (s *PlayerService) ListPlayers(
	ctx context.Context,
	filters PlayerFilters,
	params pagination.Params,
) (*ListPlayersResponseDTO, error) {
	players, total, err := s.playerRepository.ListPlayers(ctx, filters, params)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &ListPlayersResponseDTO{
		Players:    players,
		Pagination: pagination.NewMeta(total, params),
	}, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64) (*PlayerDetailDTO, error) {
	player, err := s.playerRepository.GetPlayerDetail(ctx, playerID)
	if err != nil {
		return nil, api_errors.FromStore(err, "Player")
	}

	return player, nil
}

func (s *PlayerService) GetPlayerMatches(
	ctx context.Context,
	playerID int64,
	season int,
	params pagination.Params,
) (*PlayerMatchesResponseDTO, error) {
	if _, err := s.playerRepository.GetPlayerByID(ctx, playerID); err != nil {
		return nil, api_errors.FromStore(err, "Player")
	}

	matches, total, err := s.playerRepository.GetPlayerMatches(ctx, playerID, season, params)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &PlayerMatchesResponseDTO{
		PlayerID:   playerID,
		Matches:    matches,
		Pagination: pagination.NewMeta(total, params),
	}, nil
}

func (s *PlayerService) GetPlayerStats(
	ctx context.Context,
	playerID int64,
	season int,
) (*PlayerStatsDTO, error) {
	player, err := s.playerRepository.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, api_errors.FromStore(err, "Player")
	}

	appearances, err := s.playerRepository.GetPlayerAppearances(ctx, playerID, season)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	events, err := s.playerRepository.GetPlayerEventTotals(ctx, playerID, season)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &PlayerStatsDTO{
		PlayerID:      player.ID,
		PlayerName:    fmt.Sprintf("%s %s", player.FirstName, player.LastName),
		Season:        season,
		Appearances:   appearances.Appearances,
		Starts:        appearances.Starts,
		MinutesPlayed: appearances.MinutesPlayed,
		Goals:         events.Goals,
		Assists:       events.Assists,
		YellowCards:   events.YellowCards,
		RedCards:      events.RedCards,
	}, nil
}

func (s *PlayerService) GetPlayerTeams(ctx context.Context, playerID int64) (*PlayerTeamsResponseDTO, error) {
	if _, err := s.playerRepository.GetPlayerByID(ctx, playerID); err != nil {
		return nil, api_errors.FromStore(err, "Player")
	}

	teams, err := s.playerRepository.GetPlayerTeams(ctx, playerID)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &PlayerTeamsResponseDTO{
		PlayerID: playerID,
		Teams:    teams,
		Total:    len(teams),
	}, nil
}
