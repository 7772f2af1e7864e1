package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records API key lifecycle events (registration, revocation,
// expiry). Keys are never deleted, so the trail stays joinable.
type AuditLog struct {
	ID        uuid.UUID  `json:"id"         gorm:"column:id;type:uuid;primaryKey"`
	ApiKeyID  *uuid.UUID `json:"api_key_id" gorm:"column:api_key_id;type:uuid;index"`
	Email     string     `json:"email"      gorm:"column:email;index"`
	Message   string     `json:"message"    gorm:"column:message"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at;index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
