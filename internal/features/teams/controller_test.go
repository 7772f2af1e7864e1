package teams

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/features/api_keys"
	"github.com/tom-mcmillan/nwsl-api/internal/features/matches"
	"github.com/tom-mcmillan/nwsl-api/internal/features/players"
	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	testing_utils "github.com/tom-mcmillan/nwsl-api/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTeamsRouter() (*gin.Engine, string) {
	router := api_keys.CreateProtectedTestRouter(GetTeamController())
	return router, api_keys.CreateTestApiKey("Teams Test")
}

// uniquePart returns the uuid suffix CreateTestTeam appends, which is
// the only search needle guaranteed not to match other tests' rows.
func uniquePart(team *models.Team) string {
	fields := strings.Fields(team.Name)
	return fields[len(fields)-1]
}

func decodeErrorCode(t *testing.T, body []byte) string {
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded["code"]
}

func renameTeam(t *testing.T, teamID int64, name string) {
	err := storage.GetDb().
		Model(&models.Team{}).
		Where("id = ?", teamID).
		Update("name", name).Error
	require.NoError(t, err)
}

func Test_ListTeams_WhenSearchMatchesName_ReturnsOnlyThatTeam(t *testing.T) {
	router, apiKey := createTeamsRouter()

	team := CreateTestTeam("Thorns")
	CreateTestTeam("Current")

	url := "/api/v1/teams?search=" + strings.ToUpper(uniquePart(team))
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response ListTeamsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Teams, 1)
	assert.Equal(t, team.Name, response.Teams[0].Name)
	assert.Equal(t, int64(1), response.Pagination.Total)
}

func Test_ListTeams_WhenPaged_EnvelopeCountsAllMatches(t *testing.T) {
	router, apiKey := createTeamsRouter()

	marker := uniquePart(CreateTestTeam("Spirit"))
	for range 2 {
		team := CreateTestTeam("Spirit")
		renameTeam(t, team.ID, fmt.Sprintf("Spirit %s %s", marker, uniquePart(team)))
	}

	url := fmt.Sprintf("/api/v1/teams?search=%s&page=1&page_size=2", marker)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response ListTeamsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Teams, 2)
	assert.Equal(t, int64(3), response.Pagination.Total)
	assert.Equal(t, 2, response.Pagination.TotalPages)
}

func Test_ListTeams_WhenPageSizeExceedsMax_Returns422(t *testing.T) {
	router, apiKey := createTeamsRouter()

	w := testing_utils.MakeAPIRequest(router, "GET", "/api/v1/teams?page_size=5000", apiKey, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, api_errors.ErrorInvalidParameter, decodeErrorCode(t, w.Body.Bytes()))
}

func Test_GetTeam_WhenExists_ReturnsTeam(t *testing.T) {
	router, apiKey := createTeamsRouter()

	team := CreateTestTeam("Reign")

	url := fmt.Sprintf("/api/v1/teams/%d", team.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response models.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, team.ID, response.ID)
	assert.Equal(t, team.Name, response.Name)
}

func Test_GetTeam_WhenMissing_Returns404(t *testing.T) {
	router, apiKey := createTeamsRouter()

	w := testing_utils.MakeAPIRequest(router, "GET", "/api/v1/teams/99999999", apiKey, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, api_errors.ErrorNotFound, decodeErrorCode(t, w.Body.Bytes()))
}

func Test_GetTeam_WhenIDNotNumeric_Returns422(t *testing.T) {
	router, apiKey := createTeamsRouter()

	w := testing_utils.MakeAPIRequest(router, "GET", "/api/v1/teams/abc", apiKey, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, api_errors.ErrorInvalidParameter, decodeErrorCode(t, w.Body.Bytes()))
}

func Test_GetTeamPlayers_WhenNoSeason_ReturnsCurrentRoster(t *testing.T) {
	router, apiKey := createTeamsRouter()

	team := CreateTestTeam("Wave")
	other := CreateTestTeam("Pride")
	players.CreateTestPlayer(&team.ID, "Zoe", "Young", "FW")
	players.CreateTestPlayer(&team.ID, "Ada", "Abbot", "GK")
	players.CreateTestPlayer(&other.ID, "Eve", "Elsewhere", "MF")

	url := fmt.Sprintf("/api/v1/teams/%d/players", team.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response TeamPlayersResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 2, response.Total)
	assert.Equal(t, "Abbot", response.Players[0].LastName)
	assert.Equal(t, "Young", response.Players[1].LastName)
}

func Test_GetTeamPlayers_WhenSeasonGiven_ReturnsPlayersFieldedThatSeason(t *testing.T) {
	router, apiKey := createTeamsRouter()

	team := CreateTestTeam("Dash")
	opponent := CreateTestTeam("Stars")

	// Departed from the roster but fielded in 2023, so the season view
	// must include her while the roster view must not.
	departed := players.CreateTestPlayer(nil, "Dana", "Departed", "MF")
	players.CreateTestPlayer(&team.ID, "Rosa", "Rostered", "DF")

	match := matches.CreateTestMatch(team.ID, opponent.ID, 2023, 1, 0)
	matches.CreateTestLineupEntry(match.ID, team.ID, departed.ID, "MF", true, 90)

	url := fmt.Sprintf("/api/v1/teams/%d/players?season=2023", team.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response TeamPlayersResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 1, response.Total)
	assert.Equal(t, departed.ID, response.Players[0].ID)
	assert.Equal(t, 2023, response.Season)
}

func Test_GetTeamMatches_WhenBothSidesPlayed_ResolvesPerspective(t *testing.T) {
	router, apiKey := createTeamsRouter()

	team := CreateTestTeam("Gotham")
	rivalA := CreateTestTeam("Angel City")
	rivalB := CreateTestTeam("Bay")

	older := time.Date(2023, time.April, 2, 19, 0, 0, 0, time.UTC)
	newer := time.Date(2023, time.May, 7, 19, 0, 0, 0, time.UTC)
	matches.CreateTestMatchOn(team.ID, rivalA.ID, 2023, 3, 1, older)
	matches.CreateTestMatchOn(rivalB.ID, team.ID, 2023, 2, 2, newer)

	url := fmt.Sprintf("/api/v1/teams/%d/matches", team.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response TeamMatchesResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Matches, 2)

	// Newest match comes first.
	assert.Equal(t, "away", response.Matches[0].Side)
	assert.Equal(t, rivalB.Name, response.Matches[0].Opponent)
	assert.Equal(t, "D", response.Matches[0].Result)

	assert.Equal(t, "home", response.Matches[1].Side)
	assert.Equal(t, rivalA.Name, response.Matches[1].Opponent)
	assert.Equal(t, "W", response.Matches[1].Result)
}

func Test_GetTeamMatches_WhenSeasonFiltered_ReturnsThatSeasonOnly(t *testing.T) {
	router, apiKey := createTeamsRouter()

	team := CreateTestTeam("Royals")
	rival := CreateTestTeam("Red Stars")
	matches.CreateTestMatch(team.ID, rival.ID, 2022, 1, 0)
	matches.CreateTestMatch(team.ID, rival.ID, 2023, 0, 2)

	url := fmt.Sprintf("/api/v1/teams/%d/matches?season=2023", team.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response TeamMatchesResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Matches, 1)
	assert.Equal(t, 2023, response.Matches[0].Season)
	assert.Equal(t, "L", response.Matches[0].Result)
}

func Test_GetTeamMatches_WhenTeamMissing_Returns404(t *testing.T) {
	router, apiKey := createTeamsRouter()

	w := testing_utils.MakeAPIRequest(router, "GET", "/api/v1/teams/99999999/matches", apiKey, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_GetTeamStats_WhenMixedResults_RecordAddsUp(t *testing.T) {
	router, apiKey := createTeamsRouter()

	team := CreateTestTeam("Courage")
	rival := CreateTestTeam("Pride")

	matches.CreateTestMatch(team.ID, rival.ID, 2023, 3, 1) // home win
	matches.CreateTestMatch(rival.ID, team.ID, 2023, 2, 2) // away draw
	matches.CreateTestMatch(team.ID, rival.ID, 2023, 0, 1) // home loss

	url := fmt.Sprintf("/api/v1/teams/%d/stats", team.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response TeamStatsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, team.Name, response.TeamName)
	assert.Equal(t, int64(3), response.MatchesPlayed)
	assert.Equal(t, int64(1), response.Wins)
	assert.Equal(t, int64(1), response.Draws)
	assert.Equal(t, int64(1), response.Losses)
	assert.Equal(t, int64(5), response.GoalsFor)
	assert.Equal(t, int64(4), response.GoalsAgainst)
	assert.Equal(t, int64(1), response.GoalDifference)
	assert.Equal(t, int64(4), response.Points)
}

func Test_GetTeamStats_WhenSeasonFiltered_IgnoresOtherSeasons(t *testing.T) {
	router, apiKey := createTeamsRouter()

	team := CreateTestTeam("Current")
	rival := CreateTestTeam("Louisville")

	matches.CreateTestMatch(team.ID, rival.ID, 2022, 4, 0)
	matches.CreateTestMatch(team.ID, rival.ID, 2023, 1, 1)

	url := fmt.Sprintf("/api/v1/teams/%d/stats?season=2023", team.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response TeamStatsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.MatchesPlayed)
	assert.Equal(t, int64(0), response.Wins)
	assert.Equal(t, int64(1), response.Draws)
	assert.Equal(t, 2023, response.Season)
}

func Test_GetTeamStats_WhenTeamMissing_Returns404(t *testing.T) {
	router, apiKey := createTeamsRouter()

	w := testing_utils.MakeAPIRequest(router, "GET", "/api/v1/teams/99999999/stats", apiKey, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, api_errors.ErrorNotFound, decodeErrorCode(t, w.Body.Bytes()))
}
