package audit_logs

import (
	"context"
	"log/slog"

	"github.com/tom-mcmillan/nwsl-api/internal/models"

	"github.com/google/uuid"
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

// WriteKeyEvent records a lifecycle event for an API key. Failures are
// logged and swallowed so auditing never blocks the calling operation.
func (s *AuditLogService) WriteKeyEvent(message string, apiKeyID *uuid.UUID, email string) {
	auditLog := &models.AuditLog{
		ApiKeyID: apiKeyID,
		Email:    email,
		Message:  message,
	}

	if err := s.auditLogRepository.Create(context.Background(), auditLog); err != nil {
		s.logger.Error("failed to create audit log", "error", err)
	}
}

func (s *AuditLogService) GetKeyEvents(
	ctx context.Context,
	email string,
	limit int,
) ([]*models.AuditLog, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	return s.auditLogRepository.GetByEmail(ctx, email, limit)
}
