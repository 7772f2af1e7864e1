package audit_logs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func uniqueEmail() string {
	return fmt.Sprintf("%s@test.nwsldata.com", uuid.New().String()[:8])
}

func Test_WriteKeyEvent_WhenCalled_EventPersisted(t *testing.T) {
	email := uniqueEmail()
	keyID := uuid.New()

	GetAuditLogService().WriteKeyEvent("API key registered: Test Key", &keyID, email)

	events, err := GetAuditLogService().GetKeyEvents(context.Background(), email, 10)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "API key registered: Test Key", events[0].Message)
	assert.Equal(t, keyID, *events[0].ApiKeyID)
	assert.Equal(t, email, events[0].Email)
	assert.False(t, events[0].CreatedAt.IsZero())
}

func Test_WriteKeyEvent_WhenNoKeyID_EventPersistedWithoutKey(t *testing.T) {
	email := uniqueEmail()

	GetAuditLogService().WriteKeyEvent("registration rejected: duplicate", nil, email)

	events, err := GetAuditLogService().GetKeyEvents(context.Background(), email, 10)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Nil(t, events[0].ApiKeyID)
}

func Test_GetKeyEvents_WhenMultipleEvents_NewestFirst(t *testing.T) {
	email := uniqueEmail()
	keyID := uuid.New()

	GetAuditLogService().WriteKeyEvent("first", &keyID, email)
	time.Sleep(10 * time.Millisecond)
	GetAuditLogService().WriteKeyEvent("second", &keyID, email)

	events, err := GetAuditLogService().GetKeyEvents(context.Background(), email, 10)

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "second", events[0].Message)
	assert.Equal(t, "first", events[1].Message)
}

func Test_GetKeyEvents_WhenLimitOutOfRange_FallsBackToDefault(t *testing.T) {
	email := uniqueEmail()

	events, err := GetAuditLogService().GetKeyEvents(context.Background(), email, -5)

	assert.NoError(t, err)
	assert.Empty(t, events)
}
