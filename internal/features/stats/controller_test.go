package stats

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/tom-mcmillan/nwsl-api/internal/features/api_keys"
	"github.com/tom-mcmillan/nwsl-api/internal/features/matches"
	"github.com/tom-mcmillan/nwsl-api/internal/features/players"
	"github.com/tom-mcmillan/nwsl-api/internal/features/teams"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	testing_utils "github.com/tom-mcmillan/nwsl-api/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createStatsRouter() (*gin.Engine, string) {
	router := api_keys.CreateProtectedTestRouter(GetStatsController())
	return router, api_keys.CreateTestApiKey("Stats Test")
}

func decodeErrorCode(t *testing.T, body []byte) string {
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded["code"]
}

// Leaderboards are league-wide, so each test scopes itself to a season
// year no other test touches.

func Test_GoalLeaderboard_WhenSeasonScoped_RanksScorersByGoals(t *testing.T) {
	router, apiKey := createStatsRouter()
	season := 2931

	team := teams.CreateTestTeam("Thorns")
	rival := teams.CreateTestTeam("Reign")
	striker := players.CreateTestPlayer(&team.ID, "Greta", "Golden", "FW")
	runnerUp := players.CreateTestPlayer(&rival.ID, "Silva", "Second", "FW")

	first := matches.CreateTestMatch(team.ID, rival.ID, season, 2, 1)
	second := matches.CreateTestMatch(rival.ID, team.ID, season, 0, 1)

	matches.CreateTestLineupEntry(first.ID, team.ID, striker.ID, "FW", true, 90)
	matches.CreateTestLineupEntry(second.ID, team.ID, striker.ID, "FW", true, 90)
	matches.CreateTestLineupEntry(first.ID, rival.ID, runnerUp.ID, "FW", true, 90)

	matches.CreateTestGoal(first.ID, team.ID, striker.ID, nil, 11)
	matches.CreateTestGoal(first.ID, team.ID, striker.ID, nil, 47)
	matches.CreateTestGoal(second.ID, team.ID, striker.ID, nil, 71)
	matches.CreateTestGoal(first.ID, rival.ID, runnerUp.ID, nil, 83)

	url := fmt.Sprintf("/api/v1/stats/leaderboard/goals?season=%d", season)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response GoalLeaderboardResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Leaders, 2)

	assert.Equal(t, 1, response.Leaders[0].Rank)
	assert.Equal(t, striker.ID, response.Leaders[0].PlayerID)
	assert.Equal(t, int64(3), response.Leaders[0].Goals)
	assert.Equal(t, int64(2), response.Leaders[0].Matches)
	assert.Equal(t, team.Name, response.Leaders[0].TeamName)

	assert.Equal(t, 2, response.Leaders[1].Rank)
	assert.Equal(t, int64(1), response.Leaders[1].Goals)
}

func Test_GoalLeaderboard_WhenGoalsTied_MoreAppearancesRanksFirst(t *testing.T) {
	router, apiKey := createStatsRouter()
	season := 2932

	team := teams.CreateTestTeam("Current")
	rival := teams.CreateTestTeam("Spirit")
	veteran := players.CreateTestPlayer(&team.ID, "Vera", "Veteran", "FW")
	rookie := players.CreateTestPlayer(&team.ID, "Rae", "Rookie", "FW")

	first := matches.CreateTestMatch(team.ID, rival.ID, season, 2, 0)
	second := matches.CreateTestMatch(team.ID, rival.ID, season, 2, 1)
	third := matches.CreateTestMatch(team.ID, rival.ID, season, 0, 0)

	matches.CreateTestLineupEntry(first.ID, team.ID, veteran.ID, "FW", true, 90)
	matches.CreateTestLineupEntry(second.ID, team.ID, veteran.ID, "FW", true, 90)
	matches.CreateTestLineupEntry(third.ID, team.ID, veteran.ID, "FW", true, 90)
	matches.CreateTestLineupEntry(second.ID, team.ID, rookie.ID, "FW", false, 30)

	matches.CreateTestGoal(first.ID, team.ID, veteran.ID, nil, 9)
	matches.CreateTestGoal(second.ID, team.ID, veteran.ID, nil, 18)
	matches.CreateTestGoal(second.ID, team.ID, rookie.ID, nil, 88)
	matches.CreateTestGoal(first.ID, team.ID, rookie.ID, nil, 90)

	url := fmt.Sprintf("/api/v1/stats/leaderboard/goals?season=%d", season)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response GoalLeaderboardResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Leaders, 2)
	assert.Equal(t, veteran.ID, response.Leaders[0].PlayerID)
	assert.Equal(t, rookie.ID, response.Leaders[1].PlayerID)
	assert.Equal(t, response.Leaders[0].Goals, response.Leaders[1].Goals)
}

func Test_GoalLeaderboard_WhenLimitGiven_TruncatesBoard(t *testing.T) {
	router, apiKey := createStatsRouter()
	season := 2933

	team := teams.CreateTestTeam("Gotham")
	rival := teams.CreateTestTeam("Bay")
	match := matches.CreateTestMatch(team.ID, rival.ID, season, 3, 0)

	for i := range 3 {
		scorer := players.CreateTestPlayer(&team.ID, fmt.Sprintf("Scorer%d", i), "Lim", "FW")
		matches.CreateTestGoal(match.ID, team.ID, scorer.ID, nil, 10+i)
	}

	url := fmt.Sprintf("/api/v1/stats/leaderboard/goals?season=%d&limit=2", season)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response GoalLeaderboardResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Leaders, 2)
	assert.Equal(t, 2, response.Limit)
}

func Test_GoalLeaderboard_WhenLimitExceedsMax_Returns422(t *testing.T) {
	router, apiKey := createStatsRouter()

	w := testing_utils.MakeAPIRequest(
		router, "GET", "/api/v1/stats/leaderboard/goals?limit=500", apiKey, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, api_errors.ErrorInvalidParameter, decodeErrorCode(t, w.Body.Bytes()))
}

func Test_AssistLeaderboard_WhenGoalsCarryRelatedPlayer_CountsAssists(t *testing.T) {
	router, apiKey := createStatsRouter()
	season := 2934

	team := teams.CreateTestTeam("Angel City")
	rival := teams.CreateTestTeam("Wave")
	provider := players.CreateTestPlayer(&team.ID, "Paula", "Provider", "MF")
	finisherA := players.CreateTestPlayer(&team.ID, "Fay", "FinisherA", "FW")
	finisherB := players.CreateTestPlayer(&team.ID, "Flo", "FinisherB", "FW")

	match := matches.CreateTestMatch(team.ID, rival.ID, season, 2, 0)
	matches.CreateTestLineupEntry(match.ID, team.ID, provider.ID, "MF", true, 90)

	matches.CreateTestGoal(match.ID, team.ID, finisherA.ID, &provider.ID, 33)
	matches.CreateTestGoal(match.ID, team.ID, finisherB.ID, &provider.ID, 58)

	url := fmt.Sprintf("/api/v1/stats/leaderboard/assists?season=%d", season)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response AssistLeaderboardResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Leaders, 1)
	assert.Equal(t, provider.ID, response.Leaders[0].PlayerID)
	assert.Equal(t, int64(2), response.Leaders[0].Assists)
	assert.Equal(t, int64(1), response.Leaders[0].Matches)
}

func Test_CleanSheetLeaderboard_WhenKeeperBelowFloor_IsExcluded(t *testing.T) {
	router, apiKey := createStatsRouter()
	season := 2935

	team := teams.CreateTestTeam("Courage")
	rival := teams.CreateTestTeam("Dash")
	regular := players.CreateTestPlayer(&team.ID, "Kim", "Keeper", "GK")
	standIn := players.CreateTestPlayer(&rival.ID, "Sub", "Stopper", "GK")

	// Five appearances with three shutouts for the regular keeper.
	scores := [][2]int{{1, 0}, {2, 0}, {0, 0}, {1, 2}, {0, 1}}
	for _, score := range scores {
		match := matches.CreateTestMatch(team.ID, rival.ID, season, score[0], score[1])
		matches.CreateTestLineupEntry(match.ID, team.ID, regular.ID, "GK", true, 90)
	}

	// Two shutouts in two appearances, still below the floor.
	for range 2 {
		match := matches.CreateTestMatch(rival.ID, team.ID, season, 1, 0)
		matches.CreateTestLineupEntry(match.ID, rival.ID, standIn.ID, "GK", true, 90)
	}

	url := fmt.Sprintf("/api/v1/stats/leaderboard/clean-sheets?season=%d", season)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response CleanSheetLeaderboardResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 5, response.MinAppearances)
	require.Len(t, response.Leaders, 1)
	assert.Equal(t, regular.ID, response.Leaders[0].PlayerID)
	assert.Equal(t, int64(3), response.Leaders[0].CleanSheets)
	assert.Equal(t, int64(5), response.Leaders[0].Appearances)
}

func Test_TeamSeasonReview_WhenHomeAndAwaySplit_RecordsAddUp(t *testing.T) {
	router, apiKey := createStatsRouter()
	season := 2936

	team := teams.CreateTestTeam("Royals")
	rivalA := teams.CreateTestTeam("Red Stars")
	rivalB := teams.CreateTestTeam("Louisville")
	scorer := players.CreateTestPlayer(&team.ID, "Top", "Scorer", "FW")

	home1 := matches.CreateTestMatch(team.ID, rivalA.ID, season, 2, 0)
	matches.CreateTestMatch(team.ID, rivalB.ID, season, 1, 1)
	matches.CreateTestMatch(rivalA.ID, team.ID, season, 3, 0)

	matches.CreateTestGoal(home1.ID, team.ID, scorer.ID, nil, 12)
	matches.CreateTestGoal(home1.ID, team.ID, scorer.ID, nil, 34)

	url := fmt.Sprintf("/api/v1/stats/team/%d/season/%d", team.ID, season)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response TeamSeasonReviewDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, team.Name, response.TeamName)
	assert.Equal(t, season, response.Season)

	assert.Equal(t, int64(3), response.Overall.MatchesPlayed)
	assert.Equal(t, int64(1), response.Overall.Wins)
	assert.Equal(t, int64(1), response.Overall.Draws)
	assert.Equal(t, int64(1), response.Overall.Losses)
	assert.Equal(t, int64(3), response.Overall.GoalsFor)
	assert.Equal(t, int64(4), response.Overall.GoalsAgainst)
	assert.Equal(t, int64(-1), response.Overall.GoalDifference)
	assert.Equal(t, int64(4), response.Overall.Points)

	assert.Equal(t, int64(2), response.Home.MatchesPlayed)
	assert.Equal(t, int64(1), response.Home.Wins)
	assert.Equal(t, int64(1), response.Away.MatchesPlayed)
	assert.Equal(t, int64(1), response.Away.Losses)

	require.Len(t, response.TopScorers, 1)
	assert.Equal(t, scorer.ID, response.TopScorers[0].PlayerID)
	assert.Equal(t, int64(2), response.TopScorers[0].Goals)
}

func Test_TeamSeasonReview_WhenTeamMissing_Returns404(t *testing.T) {
	router, apiKey := createStatsRouter()

	w := testing_utils.MakeAPIRequest(
		router, "GET", "/api/v1/stats/team/99999999/season/2023", apiKey, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, api_errors.ErrorNotFound, decodeErrorCode(t, w.Body.Bytes()))
}

func Test_TeamSeasonReview_WhenSeasonNotNumeric_Returns422(t *testing.T) {
	router, apiKey := createStatsRouter()

	team := teams.CreateTestTeam("Stars")

	url := fmt.Sprintf("/api/v1/stats/team/%d/season/abc", team.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func Test_PlayerCareer_WhenMultipleSeasons_SeasonsAscendWithTotals(t *testing.T) {
	router, apiKey := createStatsRouter()
	earlySeason, lateSeason := 2937, 2938

	team := teams.CreateTestTeam("Pride")
	rival := teams.CreateTestTeam("Reign")
	player := players.CreateTestPlayer(&team.ID, "Cara", "Career", "FW")
	helper := players.CreateTestPlayer(&team.ID, "Help", "Hand", "MF")

	early := matches.CreateTestMatch(team.ID, rival.ID, earlySeason, 2, 0)
	late := matches.CreateTestMatch(team.ID, rival.ID, lateSeason, 1, 1)

	matches.CreateTestLineupEntry(early.ID, team.ID, player.ID, "FW", true, 90)
	matches.CreateTestLineupEntry(late.ID, team.ID, player.ID, "FW", false, 60)

	matches.CreateTestGoal(early.ID, team.ID, player.ID, nil, 20)
	matches.CreateTestGoal(early.ID, team.ID, player.ID, nil, 75)
	matches.CreateTestGoal(late.ID, team.ID, helper.ID, &player.ID, 51)

	url := fmt.Sprintf("/api/v1/stats/player/%d/career", player.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response PlayerCareerResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, player.ID, response.PlayerID)
	assert.Equal(t, "Cara Career", response.PlayerName)

	assert.Equal(t, int64(2), response.Totals.Appearances)
	assert.Equal(t, int64(1), response.Totals.Starts)
	assert.Equal(t, int64(150), response.Totals.MinutesPlayed)
	assert.Equal(t, int64(2), response.Totals.Goals)
	assert.Equal(t, int64(1), response.Totals.Assists)

	require.Len(t, response.Seasons, 2)
	assert.Equal(t, earlySeason, response.Seasons[0].Season)
	assert.Equal(t, int64(2), response.Seasons[0].Goals)
	assert.Equal(t, int64(1), response.Seasons[0].Starts)
	assert.Equal(t, lateSeason, response.Seasons[1].Season)
	assert.Equal(t, int64(1), response.Seasons[1].Assists)
	assert.Equal(t, int64(0), response.Seasons[1].Starts)
}

func Test_PlayerCareer_WhenEventHasNoLineupRow_SeasonStillListed(t *testing.T) {
	router, apiKey := createStatsRouter()
	season := 2939

	team := teams.CreateTestTeam("Bay")
	rival := teams.CreateTestTeam("Wave")
	player := players.CreateTestPlayer(&team.ID, "Gina", "Ghost", "FW")

	match := matches.CreateTestMatch(team.ID, rival.ID, season, 1, 0)
	matches.CreateTestGoal(match.ID, team.ID, player.ID, nil, 66)

	url := fmt.Sprintf("/api/v1/stats/player/%d/career", player.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response PlayerCareerResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Seasons, 1)
	assert.Equal(t, season, response.Seasons[0].Season)
	assert.Equal(t, int64(1), response.Seasons[0].Goals)
	assert.Equal(t, int64(0), response.Seasons[0].Appearances)
}

func Test_PlayerCareer_WhenPlayerMissing_Returns404(t *testing.T) {
	router, apiKey := createStatsRouter()

	w := testing_utils.MakeAPIRequest(
		router, "GET", "/api/v1/stats/player/99999999/career", apiKey, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
