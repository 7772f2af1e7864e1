package matches

import (
	"context"
	"fmt"
	"time"

	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"
	time_parser "github.com/tom-mcmillan/nwsl-api/internal/util/time"
)

type MatchService struct {
	matchRepository *MatchRepository
}

func (s *MatchService) ListMatches(
	ctx context.Context,
	filters MatchFilters,
	params pagination.Params,
) (*ListMatchesResponseDTO, error) {
	start, err := parseDateFilter(filters.StartDate, "start_date", false)
	if err != nil {
		return nil, err
	}

	end, err := parseDateFilter(filters.EndDate, "end_date", true)
	if err != nil {
		return nil, err
	}

	matches, total, err := s.matchRepository.ListMatches(
		ctx, filters.Season, filters.TeamID, start, end, params)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &ListMatchesResponseDTO{
		Matches:    matches,
		Pagination: pagination.NewMeta(total, params),
	}, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID int64) (*MatchSummaryDTO, error) {
	match, err := s.matchRepository.GetMatchDetail(ctx, matchID)
	if err != nil {
		return nil, api_errors.FromStore(err, "Match")
	}

	return match, nil
}

func (s *MatchService) GetMatchLineups(ctx context.Context, matchID int64) (*MatchLineupsResponseDTO, error) {
	match, err := s.matchRepository.GetMatchDetail(ctx, matchID)
	if err != nil {
		return nil, api_errors.FromStore(err, "Match")
	}

	rows, err := s.matchRepository.GetMatchLineups(ctx, matchID)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	response := &MatchLineupsResponseDTO{
		MatchID: match.ID,
		Home: TeamLineupDTO{
			TeamID:   match.HomeTeamID,
			TeamName: match.HomeTeam,
			Players:  make([]*LineupEntryDTO, 0),
		},
		Away: TeamLineupDTO{
			TeamID:   match.AwayTeamID,
			TeamName: match.AwayTeam,
			Players:  make([]*LineupEntryDTO, 0),
		},
	}

	for _, row := range rows {
		entry := &LineupEntryDTO{
			PlayerID:      row.PlayerID,
			PlayerName:    row.PlayerName,
			Position:      row.Position,
			ShirtNumber:   row.ShirtNumber,
			Started:       row.Started,
			MinutesPlayed: row.MinutesPlayed,
		}

		switch row.TeamID {
		case match.HomeTeamID:
			response.Home.Players = append(response.Home.Players, entry)
		case match.AwayTeamID:
			response.Away.Players = append(response.Away.Players, entry)
		}
	}

	return response, nil
}

func (s *MatchService) GetMatchEvents(ctx context.Context, matchID int64) (*MatchEventsResponseDTO, error) {
	if _, err := s.matchRepository.GetMatchByID(ctx, matchID); err != nil {
		return nil, api_errors.FromStore(err, "Match")
	}

	events, err := s.matchRepository.GetMatchEvents(ctx, matchID)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &MatchEventsResponseDTO{
		MatchID: matchID,
		Events:  events,
		Total:   len(events),
	}, nil
}

// GetMatchStats reports goals from the recorded score and cards and
// substitutions from the event stream.
func (s *MatchService) GetMatchStats(ctx context.Context, matchID int64) (*MatchStatsDTO, error) {
	match, err := s.matchRepository.GetMatchDetail(ctx, matchID)
	if err != nil {
		return nil, api_errors.FromStore(err, "Match")
	}

	counts, err := s.matchRepository.GetMatchEventCounts(ctx, matchID)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	response := &MatchStatsDTO{
		MatchID:   match.ID,
		MatchDate: match.MatchDate,
		Season:    match.Season,
		Home: MatchSideStatsDTO{
			TeamID:   match.HomeTeamID,
			TeamName: match.HomeTeam,
			Goals:    match.HomeScore,
		},
		Away: MatchSideStatsDTO{
			TeamID:   match.AwayTeamID,
			TeamName: match.AwayTeam,
			Goals:    match.AwayScore,
		},
	}

	for _, row := range counts {
		var side *MatchSideStatsDTO
		switch row.TeamID {
		case match.HomeTeamID:
			side = &response.Home
		case match.AwayTeamID:
			side = &response.Away
		default:
			continue
		}

		side.YellowCards = row.YellowCards
		side.RedCards = row.RedCards
		side.Substitutions = row.Substitutions
	}

	return response, nil
}

// parseDateFilter turns a date query parameter into a bound usable by
// the repository. Whole-date end bounds are widened by a day so the
// named day is included under the exclusive comparison.
func parseDateFilter(raw, name string, isEndBound bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time_parser.ParseDate(raw)
	if err != nil {
		return nil, api_errors.InvalidParameter(
			fmt.Sprintf("%s must be a YYYY-MM-DD date", name))
	}

	if isEndBound && len(raw) == len(time_parser.DateFormat) {
		parsed = parsed.Add(24 * time.Hour)
	}

	return &parsed, nil
}
