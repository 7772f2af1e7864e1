package events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/tom-mcmillan/nwsl-api/internal/features/api_keys"
	"github.com/tom-mcmillan/nwsl-api/internal/features/matches"
	"github.com/tom-mcmillan/nwsl-api/internal/features/players"
	"github.com/tom-mcmillan/nwsl-api/internal/features/teams"
	"github.com/tom-mcmillan/nwsl-api/internal/models"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	testing_utils "github.com/tom-mcmillan/nwsl-api/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEventsRouter() (*gin.Engine, string) {
	router := api_keys.CreateProtectedTestRouter(GetEventController())
	return router, api_keys.CreateTestApiKey("Events Test")
}

func decodeErrorCode(t *testing.T, body []byte) string {
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded["code"]
}

func Test_ListEvents_WhenPlayerFiltered_ReturnsOnlyAttributedEvents(t *testing.T) {
	router, apiKey := createEventsRouter()

	team := teams.CreateTestTeam("Thorns")
	rival := teams.CreateTestTeam("Reign")
	player := players.CreateTestPlayer(&team.ID, "Elle", "Eventful", "FW")
	bystander := players.CreateTestPlayer(&rival.ID, "Quinn", "Quiet", "DF")

	match := matches.CreateTestMatch(team.ID, rival.ID, 2023, 2, 1)
	matches.CreateTestGoal(match.ID, team.ID, player.ID, nil, 21)
	matches.CreateTestEvent(match.ID, rival.ID, bystander.ID, models.MatchEventTypeYellowCard, 44)

	url := fmt.Sprintf("/api/v1/events?player_id=%d", player.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response ListEventsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Events, 1)
	assert.Equal(t, "Elle Eventful", response.Events[0].PlayerName)
	assert.Equal(t, team.Name, response.Events[0].TeamName)
	assert.Equal(t, string(models.MatchEventTypeGoal), response.Events[0].EventType)
	assert.Equal(t, 2023, response.Events[0].Season)
}

func Test_ListEvents_WhenTypeFiltered_ReturnsOnlyThatType(t *testing.T) {
	router, apiKey := createEventsRouter()

	team := teams.CreateTestTeam("Dash")
	rival := teams.CreateTestTeam("Current")
	player := players.CreateTestPlayer(&team.ID, "Mara", "Mixed", "MF")

	match := matches.CreateTestMatch(team.ID, rival.ID, 2023, 1, 1)
	matches.CreateTestGoal(match.ID, team.ID, player.ID, nil, 18)
	matches.CreateTestEvent(match.ID, team.ID, player.ID, models.MatchEventTypeYellowCard, 77)

	url := fmt.Sprintf("/api/v1/events?player_id=%d&event_type=goal", player.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response ListEventsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Events, 1)
	assert.Equal(t, string(models.MatchEventTypeGoal), response.Events[0].EventType)
	assert.Equal(t, int64(1), response.Pagination.Total)
}

func Test_ListEvents_WhenTypeUnknown_Returns422(t *testing.T) {
	router, apiKey := createEventsRouter()

	w := testing_utils.MakeAPIRequest(
		router, "GET", "/api/v1/events?event_type=corner", apiKey, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, api_errors.ErrorInvalidParameter, decodeErrorCode(t, w.Body.Bytes()))
}

func Test_ListGoals_WhenAssisted_ResolvesScorerAndAssist(t *testing.T) {
	router, apiKey := createEventsRouter()

	team := teams.CreateTestTeam("Gotham")
	rival := teams.CreateTestTeam("Spirit")
	scorer := players.CreateTestPlayer(&team.ID, "Esther", "Finisher", "FW")
	provider := players.CreateTestPlayer(&team.ID, "Rose", "Provider", "MF")

	match := matches.CreateTestMatch(team.ID, rival.ID, 2023, 1, 0)
	matches.CreateTestGoal(match.ID, team.ID, scorer.ID, &provider.ID, 63)

	url := fmt.Sprintf("/api/v1/events/goals?player_id=%d", scorer.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response ListGoalsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Goals, 1)

	goal := response.Goals[0]
	assert.Equal(t, "Esther Finisher", goal.Scorer)
	assert.Equal(t, "Rose Provider", goal.Assist)
	assert.Equal(t, team.Name, goal.HomeTeam)
	assert.Equal(t, rival.Name, goal.AwayTeam)
	assert.Equal(t, 63, goal.Minute)
}

func Test_ListGoals_WhenUnassisted_AssistStaysEmpty(t *testing.T) {
	router, apiKey := createEventsRouter()

	team := teams.CreateTestTeam("Bay")
	rival := teams.CreateTestTeam("Royals")
	scorer := players.CreateTestPlayer(&team.ID, "Solo", "Strike", "FW")

	match := matches.CreateTestMatch(team.ID, rival.ID, 2023, 1, 0)
	matches.CreateTestGoal(match.ID, team.ID, scorer.ID, nil, 5)

	url := fmt.Sprintf("/api/v1/events/goals?player_id=%d", scorer.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response ListGoalsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Goals, 1)
	assert.Empty(t, response.Goals[0].Assist)
	assert.Nil(t, response.Goals[0].AssistID)
}

func Test_ListCards_WhenNoColorGiven_LabelsBothColors(t *testing.T) {
	router, apiKey := createEventsRouter()

	team := teams.CreateTestTeam("Angel City")
	rival := teams.CreateTestTeam("Wave")
	player := players.CreateTestPlayer(&team.ID, "Bea", "Booked", "DF")

	match := matches.CreateTestMatch(team.ID, rival.ID, 2023, 0, 0)
	matches.CreateTestEvent(match.ID, team.ID, player.ID, models.MatchEventTypeYellowCard, 30)
	matches.CreateTestEvent(match.ID, team.ID, player.ID, models.MatchEventTypeRedCard, 80)

	url := fmt.Sprintf("/api/v1/events/cards?player_id=%d", player.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response ListCardsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Cards, 2)
	assert.Equal(t, "yellow", response.Cards[0].CardType)
	assert.Equal(t, 30, response.Cards[0].Minute)
	assert.Equal(t, "red", response.Cards[1].CardType)
	assert.Equal(t, "Bea Booked", response.Cards[1].PlayerName)
}

func Test_ListCards_WhenColorFiltered_ReturnsOnlyThatColor(t *testing.T) {
	router, apiKey := createEventsRouter()

	team := teams.CreateTestTeam("Pride")
	rival := teams.CreateTestTeam("Stars")
	player := players.CreateTestPlayer(&team.ID, "Red", "Carded", "MF")

	match := matches.CreateTestMatch(team.ID, rival.ID, 2023, 2, 0)
	matches.CreateTestEvent(match.ID, team.ID, player.ID, models.MatchEventTypeYellowCard, 15)
	matches.CreateTestEvent(match.ID, team.ID, player.ID, models.MatchEventTypeRedCard, 85)

	url := fmt.Sprintf("/api/v1/events/cards?player_id=%d&card_type=red", player.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response ListCardsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Cards, 1)
	assert.Equal(t, "red", response.Cards[0].CardType)
}

func Test_ListCards_WhenColorUnknown_Returns422(t *testing.T) {
	router, apiKey := createEventsRouter()

	w := testing_utils.MakeAPIRequest(
		router, "GET", "/api/v1/events/cards?card_type=blue", apiKey, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, api_errors.ErrorInvalidParameter, decodeErrorCode(t, w.Body.Bytes()))
}
