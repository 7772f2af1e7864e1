package teams

import (
	"context"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
)

type TeamService struct {
	teamRepository *TeamRepository
}

func (s *TeamService) ListTeams(
	ctx context.Context,
	search string,
	params pagination.Params,
) (*ListTeamsResponseDTO, error) {
	teams, total, err := s.teamRepository.ListTeams(ctx, search, params)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &ListTeamsResponseDTO{
		Teams:      teams,
		Pagination: pagination.NewMeta(total, params),
	}, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID int64) (*models.Team, error) {
	team, err := s.teamRepository.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, api_errors.FromStore(err, "Team")
	}

	return team, nil
}

func (s *TeamService) GetTeamPlayers(
	ctx context.Context,
	teamID int64,
	season int,
) (*TeamPlayersResponseDTO, error) {
	if _, err := s.teamRepository.GetTeamByID(ctx, teamID); err != nil {
		return nil, api_errors.FromStore(err, "Team")
	}

	players, err := s.teamRepository.GetTeamPlayers(ctx, teamID, season)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &TeamPlayersResponseDTO{
		TeamID:  teamID,
		Season:  season,
		Players: players,
		Total:   len(players),
	}, nil
}

func (s *TeamService) GetTeamMatches(
	ctx context.Context,
	teamID int64,
	season int,
	params pagination.Params,
) (*TeamMatchesResponseDTO, error) {
	if _, err := s.teamRepository.GetTeamByID(ctx, teamID); err != nil {
		return nil, api_errors.FromStore(err, "Team")
	}

	matches, total, err := s.teamRepository.GetTeamMatches(ctx, teamID, season, params)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &TeamMatchesResponseDTO{
		TeamID:     teamID,
		Matches:    matches,
		Pagination: pagination.NewMeta(total, params),
	}, nil
}

func (s *TeamService) GetTeamStats(
	ctx context.Context,
	teamID int64,
	season int,
) (*TeamStatsDTO, error) {
	team, err := s.teamRepository.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, api_errors.FromStore(err, "Team")
	}

	row, err := s.teamRepository.GetTeamStats(ctx, teamID, season)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	losses := row.MatchesPlayed - row.Wins - row.Draws

	return &TeamStatsDTO{
		TeamID:         team.ID,
		TeamName:       team.Name,
		Season:         season,
		MatchesPlayed:  row.MatchesPlayed,
		Wins:           row.Wins,
		Draws:          row.Draws,
		Losses:         losses,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalsFor - row.GoalsAgainst,
		Points:         row.Wins*3 + row.Draws,
	}, nil
}
