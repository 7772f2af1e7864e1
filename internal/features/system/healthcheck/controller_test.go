package system_healthcheck

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/tom-mcmillan/nwsl-api/internal/config"
	testing_utils "github.com/tom-mcmillan/nwsl-api/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetApiInfo_WhenCalled_ReturnsNameAndDemoKey(t *testing.T) {
	router := testing_utils.CreateTestRouter(GetHealthcheckController())

	w := testing_utils.MakeAPIRequest(router, "GET", "/", "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response ApiInfoResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "NWSL Statistics API", response.Name)
	assert.Equal(t, config.GetEnv().DemoApiKey, response.DemoApiKey)
	assert.Equal(t, "X-API-Key", response.KeyHeader)
	assert.NotEmpty(t, response.DocsURL)
}

func Test_GetHealth_WhenStoreUp_ReportsHealthy(t *testing.T) {
	router := testing_utils.CreateTestRouter(GetHealthcheckController())

	w := testing_utils.MakeAPIRequest(router, "GET", "/health", "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response HealthResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "up", response.Database)
}

func Test_GetReadiness_WhenStoreUp_ReturnsReady(t *testing.T) {
	router := testing_utils.CreateTestRouter(GetHealthcheckController())

	w := testing_utils.MakeAPIRequest(router, "GET", "/health/ready", "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response ReadyResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ready", response.Status)
}
