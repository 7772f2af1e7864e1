package audit_logs

import (
	"context"
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) Create(ctx context.Context, auditLog *models.AuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	if auditLog.CreatedAt.IsZero() {
		auditLog.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().WithContext(ctx).Create(auditLog).Error
}

func (r *AuditLogRepository) GetByEmail(
	ctx context.Context,
	email string,
	limit int,
) ([]*models.AuditLog, error) {
	var auditLogs = make([]*models.AuditLog, 0)

	err := storage.GetDb().WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Limit(limit).
		Find(&auditLogs).Error

	return auditLogs, err
}
