package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/tom-mcmillan/nwsl-api/internal/features/players"
	"github.com/tom-mcmillan/nwsl-api/internal/features/teams"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"

	"golang.org/x/sync/singleflight"
)

// Keepers with fewer appearances than this stay off the clean sheet
// board, so one lucky shutout cannot top it.
const minCleanSheetAppearances = 5

// How many scorers a team season review lists.
const topScorerCount = 5

type StatsService struct {
	statsRepository *StatsRepository
	teamService     *teams.TeamService
	playerService   *players.PlayerService
	singleflight    singleflight.Group // Coalesces identical concurrent leaderboard queries
}

func (s *StatsService) GetGoalLeaderboard(
	ctx context.Context,
	season, limit int,
) (*GoalLeaderboardResponseDTO, error) {
	key := fmt.Sprintf("goals:%d:%d", season, limit)

	result, err, _ := s.singleflight.Do(key, func() (any, error) {
		rows, err := s.statsRepository.GetGoalBoard(ctx, season, limit)
		if err != nil {
			return nil, err
		}

		leaders := make([]*ScorerEntryDTO, 0, len(rows))
		for i, row := range rows {
			leaders = append(leaders, &ScorerEntryDTO{
				Rank:       i + 1,
				PlayerID:   row.PlayerID,
				PlayerName: row.PlayerName,
				TeamName:   row.TeamName,
				Goals:      row.Value,
				Matches:    row.Matches,
			})
		}

		return &GoalLeaderboardResponseDTO{
			Season:  season,
			Limit:   limit,
			Leaders: leaders,
		}, nil
	})
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	response, ok := result.(*GoalLeaderboardResponseDTO)
	if !ok {
		return nil, fmt.Errorf("failed to cast goal leaderboard result")
	}

	return response, nil
}

func (s *StatsService) GetAssistLeaderboard(
	ctx context.Context,
	season, limit int,
) (*AssistLeaderboardResponseDTO, error) {
	key := fmt.Sprintf("assists:%d:%d", season, limit)

	result, err, _ := s.singleflight.Do(key, func() (any, error) {
		rows, err := s.statsRepository.GetAssistBoard(ctx, season, limit)
		if err != nil {
			return nil, err
		}

		leaders := make([]*AssistEntryDTO, 0, len(rows))
		for i, row := range rows {
			leaders = append(leaders, &AssistEntryDTO{
				Rank:       i + 1,
				PlayerID:   row.PlayerID,
				PlayerName: row.PlayerName,
				TeamName:   row.TeamName,
				Assists:    row.Value,
				Matches:    row.Matches,
			})
		}

		return &AssistLeaderboardResponseDTO{
			Season:  season,
			Limit:   limit,
			Leaders: leaders,
		}, nil
	})
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	response, ok := result.(*AssistLeaderboardResponseDTO)
	if !ok {
		return nil, fmt.Errorf("failed to cast assist leaderboard result")
	}

	return response, nil
}

func (s *StatsService) GetCleanSheetLeaderboard(
	ctx context.Context,
	season, limit int,
) (*CleanSheetLeaderboardResponseDTO, error) {
	key := fmt.Sprintf("clean-sheets:%d:%d", season, limit)

	result, err, _ := s.singleflight.Do(key, func() (any, error) {
		rows, err := s.statsRepository.GetCleanSheetBoard(ctx, season, limit, minCleanSheetAppearances)
		if err != nil {
			return nil, err
		}

		leaders := make([]*CleanSheetEntryDTO, 0, len(rows))
		for i, row := range rows {
			leaders = append(leaders, &CleanSheetEntryDTO{
				Rank:        i + 1,
				PlayerID:    row.PlayerID,
				PlayerName:  row.PlayerName,
				TeamName:    row.TeamName,
				CleanSheets: row.Value,
				Appearances: row.Matches,
			})
		}

		return &CleanSheetLeaderboardResponseDTO{
			Season:         season,
			Limit:          limit,
			MinAppearances: minCleanSheetAppearances,
			Leaders:        leaders,
		}, nil
	})
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	response, ok := result.(*CleanSheetLeaderboardResponseDTO)
	if !ok {
		return nil, fmt.Errorf("failed to cast clean sheet leaderboard result")
	}

	return response, nil
}

func (s *StatsService) GetTeamSeasonReview(
	ctx context.Context,
	teamID int64,
	season int,
) (*TeamSeasonReviewDTO, error) {
	team, err := s.teamService.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	homeRow, err := s.statsRepository.GetSideRecord(ctx, teamID, season, true)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	awayRow, err := s.statsRepository.GetSideRecord(ctx, teamID, season, false)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	scorers, err := s.statsRepository.GetTeamTopScorers(ctx, teamID, season, topScorerCount)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	return &TeamSeasonReviewDTO{
		TeamID:   team.ID,
		TeamName: team.Name,
		Season:   season,
		Overall: buildRecord(
			homeRow.MatchesPlayed+awayRow.MatchesPlayed,
			homeRow.Wins+awayRow.Wins,
			homeRow.Draws+awayRow.Draws,
			homeRow.GoalsFor+awayRow.GoalsFor,
			homeRow.GoalsAgainst+awayRow.GoalsAgainst,
		),
		Home: buildRecord(
			homeRow.MatchesPlayed, homeRow.Wins, homeRow.Draws,
			homeRow.GoalsFor, homeRow.GoalsAgainst),
		Away: buildRecord(
			awayRow.MatchesPlayed, awayRow.Wins, awayRow.Draws,
			awayRow.GoalsFor, awayRow.GoalsAgainst),
		TopScorers: scorers,
	}, nil
}

func (s *StatsService) GetPlayerCareer(
	ctx context.Context,
	playerID int64,
) (*PlayerCareerResponseDTO, error) {
	totals, err := s.playerService.GetPlayerStats(ctx, playerID, 0)
	if err != nil {
		return nil, err
	}

	appearances, err := s.statsRepository.GetSeasonAppearances(ctx, playerID)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	events, err := s.statsRepository.GetSeasonEventTotals(ctx, playerID)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	bySeason := make(map[int]*SeasonStatsDTO)

	for _, row := range appearances {
		bySeason[row.Season] = &SeasonStatsDTO{
			Season:        row.Season,
			Appearances:   row.Appearances,
			Starts:        row.Starts,
			MinutesPlayed: row.MinutesPlayed,
		}
	}

	// A season can show up in events without any lineup row (data
	// loaded without lineups); keep it rather than dropping the goals.
	for _, row := range events {
		entry, ok := bySeason[row.Season]
		if !ok {
			entry = &SeasonStatsDTO{Season: row.Season}
			bySeason[row.Season] = entry
		}

		entry.Goals = row.Goals
		entry.Assists = row.Assists
		entry.YellowCards = row.YellowCards
		entry.RedCards = row.RedCards
	}

	years := make([]int, 0, len(bySeason))
	for year := range bySeason {
		years = append(years, year)
	}
	sort.Ints(years)

	seasons := make([]*SeasonStatsDTO, 0, len(years))
	for _, year := range years {
		seasons = append(seasons, bySeason[year])
	}

	return &PlayerCareerResponseDTO{
		PlayerID:   totals.PlayerID,
		PlayerName: totals.PlayerName,
		Totals: CareerTotalsDTO{
			Appearances:   totals.Appearances,
			Starts:        totals.Starts,
			MinutesPlayed: totals.MinutesPlayed,
			Goals:         totals.Goals,
			Assists:       totals.Assists,
			YellowCards:   totals.YellowCards,
			RedCards:      totals.RedCards,
		},
		Seasons: seasons,
	}, nil
}

func buildRecord(matchesPlayed, wins, draws, goalsFor, goalsAgainst int64) RecordDTO {
	return RecordDTO{
		MatchesPlayed:  matchesPlayed,
		Wins:           wins,
		Draws:          draws,
		Losses:         matchesPlayed - wins - draws,
		GoalsFor:       goalsFor,
		GoalsAgainst:   goalsAgainst,
		GoalDifference: goalsFor - goalsAgainst,
		Points:         wins*3 + draws,
	}
}
