package api_keys

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ExpirySweep_WhenKeyExpired_DeactivatesAndAudits(t *testing.T) {
	response, row := registerTestKey(t, "Short Lived")
	setKeyColumn(t, row.ID, "expires_at", time.Now().UTC().Add(-time.Hour))

	require.NoError(t, apiKeyBackgroundService.ExecuteAllTasksForTest())

	refreshed := fetchKeyRow(t, response.ApiKey)
	assert.False(t, refreshed.IsActive)

	events, err := apiKeyBackgroundService.auditLogService.GetKeyEvents(
		context.Background(),
		response.Email,
		10,
	)
	require.NoError(t, err)

	found := false
	for _, event := range events {
		if strings.HasPrefix(event.Message, "API key expired") {
			found = true
		}
	}
	assert.True(t, found)
}

func Test_ExpirySweep_WhenNoExpiry_KeyStaysActive(t *testing.T) {
	response, _ := registerTestKey(t, "Evergreen")

	require.NoError(t, apiKeyBackgroundService.ExecuteAllTasksForTest())

	assert.True(t, fetchKeyRow(t, response.ApiKey).IsActive)
}
