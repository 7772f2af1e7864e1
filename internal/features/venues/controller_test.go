package venues

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/tom-mcmillan/nwsl-api/internal/features/api_keys"
	"github.com/tom-mcmillan/nwsl-api/internal/features/matches"
	"github.com/tom-mcmillan/nwsl-api/internal/features/teams"
	"github.com/tom-mcmillan/nwsl-api/internal/models"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	testing_utils "github.com/tom-mcmillan/nwsl-api/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createVenuesRouter() (*gin.Engine, string) {
	router := api_keys.CreateProtectedTestRouter(GetVenueController())
	return router, api_keys.CreateTestApiKey("Venues Test")
}

func uniquePart(venue *models.Venue) string {
	fields := strings.Fields(venue.Name)
	return fields[len(fields)-1]
}

func decodeErrorCode(t *testing.T, body []byte) string {
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded["code"]
}

func Test_ListVenues_WhenSearchMatchesName_ReturnsOnlyThatVenue(t *testing.T) {
	router, apiKey := createVenuesRouter()

	venue := CreateTestVenue("Providence Park")
	CreateTestVenue("Audi Field")

	url := "/api/v1/venues?search=" + strings.ToUpper(uniquePart(venue))
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response ListVenuesResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Venues, 1)
	assert.Equal(t, venue.Name, response.Venues[0].Name)
}

func Test_ListVenues_WhenStateFiltered_ExcludesOtherStates(t *testing.T) {
	router, apiKey := createVenuesRouter()

	venue := CreateTestVenue("Lumen Field")
	needle := uniquePart(venue)

	matching := testing_utils.MakeAPIRequest(
		router, "GET", fmt.Sprintf("/api/v1/venues?search=%s&state=or", needle), apiKey, nil)
	empty := testing_utils.MakeAPIRequest(
		router, "GET", fmt.Sprintf("/api/v1/venues?search=%s&state=WA", needle), apiKey, nil)

	require.Equal(t, http.StatusOK, matching.Code)
	require.Equal(t, http.StatusOK, empty.Code)

	var matched ListVenuesResponseDTO
	require.NoError(t, json.Unmarshal(matching.Body.Bytes(), &matched))
	assert.Len(t, matched.Venues, 1)

	var missed ListVenuesResponseDTO
	require.NoError(t, json.Unmarshal(empty.Body.Bytes(), &missed))
	assert.Empty(t, missed.Venues)
}

func Test_GetVenue_WhenExists_ReturnsVenue(t *testing.T) {
	router, apiKey := createVenuesRouter()

	venue := CreateTestVenue("Snapdragon")

	url := fmt.Sprintf("/api/v1/venues/%d", venue.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response models.Venue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, venue.ID, response.ID)
	assert.Equal(t, "grass", response.Surface)
}

func Test_GetVenue_WhenMissing_Returns404(t *testing.T) {
	router, apiKey := createVenuesRouter()

	w := testing_utils.MakeAPIRequest(router, "GET", "/api/v1/venues/99999999", apiKey, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, api_errors.ErrorNotFound, decodeErrorCode(t, w.Body.Bytes()))
}

func Test_GetVenueMatches_WhenHosted_ReturnsMatchesNewestFirst(t *testing.T) {
	router, apiKey := createVenuesRouter()

	venue := CreateTestVenue("Shell Energy")
	home := teams.CreateTestTeam("Dash")
	away := teams.CreateTestTeam("Wave")

	matches.CreateTestMatchAtVenue(home.ID, away.ID, venue.ID, 2022, 2, 0, 18000)
	matches.CreateTestMatchAtVenue(home.ID, away.ID, venue.ID, 2023, 1, 1, 21000)

	url := fmt.Sprintf("/api/v1/venues/%d/matches", venue.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response VenueMatchesResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Matches, 2)
	assert.Equal(t, 2023, response.Matches[0].Season)
	assert.Equal(t, home.Name, response.Matches[0].HomeTeam)
	assert.Equal(t, away.Name, response.Matches[0].AwayTeam)
	require.NotNil(t, response.Matches[0].Attendance)
	assert.Equal(t, 21000, *response.Matches[0].Attendance)
}

func Test_GetVenueMatches_WhenSeasonFiltered_ReturnsThatSeasonOnly(t *testing.T) {
	router, apiKey := createVenuesRouter()

	venue := CreateTestVenue("CPKC")
	home := teams.CreateTestTeam("Current")
	away := teams.CreateTestTeam("Spirit")

	matches.CreateTestMatchAtVenue(home.ID, away.ID, venue.ID, 2022, 3, 0, 11000)
	matches.CreateTestMatchAtVenue(home.ID, away.ID, venue.ID, 2023, 0, 1, 11500)

	url := fmt.Sprintf("/api/v1/venues/%d/matches?season=2022", venue.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response VenueMatchesResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Matches, 1)
	assert.Equal(t, 2022, response.Matches[0].Season)
	assert.Equal(t, int64(1), response.Pagination.Total)
}

func Test_GetVenueMatches_WhenVenueMissing_Returns404(t *testing.T) {
	router, apiKey := createVenuesRouter()

	w := testing_utils.MakeAPIRequest(router, "GET", "/api/v1/venues/99999999/matches", apiKey, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_GetVenueStats_WhenMatchesHosted_AggregatesAttendance(t *testing.T) {
	router, apiKey := createVenuesRouter()

	venue := CreateTestVenue("America First")
	home := teams.CreateTestTeam("Royals")
	away := teams.CreateTestTeam("Reign")

	matches.CreateTestMatchAtVenue(home.ID, away.ID, venue.ID, 2023, 2, 0, 20000) // home win
	matches.CreateTestMatchAtVenue(home.ID, away.ID, venue.ID, 2023, 1, 1, 10000) // draw

	url := fmt.Sprintf("/api/v1/venues/%d/stats", venue.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response VenueStatsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, venue.Name, response.VenueName)
	assert.Equal(t, int64(2), response.MatchesHosted)
	assert.Equal(t, int64(30000), response.TotalAttendance)
	assert.Equal(t, 15000.0, response.AverageAttendance)
	assert.Equal(t, int64(20000), response.HighestAttendance)
	assert.Equal(t, int64(1), response.HomeWins)
	assert.Equal(t, 50.0, response.HomeWinPercentage)
}

func Test_GetVenueStats_WhenNothingHosted_ReturnsZeroes(t *testing.T) {
	router, apiKey := createVenuesRouter()

	venue := CreateTestVenue("Empty Grounds")

	url := fmt.Sprintf("/api/v1/venues/%d/stats", venue.ID)
	w := testing_utils.MakeAPIRequest(router, "GET", url, apiKey, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response VenueStatsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(0), response.MatchesHosted)
	assert.Equal(t, 0.0, response.HomeWinPercentage)
}
