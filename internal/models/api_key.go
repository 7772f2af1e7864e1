package models

import (
	"time"

	"github.com/google/uuid"
)

type ApiKey struct {
	ID          uuid.UUID  `json:"id"           gorm:"column:id;type:uuid;primaryKey"`
	Name        string     `json:"name"         gorm:"column:name;uniqueIndex:idx_api_keys_email_name"`
	Email       string     `json:"email"        gorm:"column:email;uniqueIndex:idx_api_keys_email_name;index"`
	TokenPrefix string     `json:"token_prefix" gorm:"column:token_prefix"`
	TokenHash   string     `json:"-"            gorm:"column:token_hash;uniqueIndex"` // Never expose in JSON
	IsActive    bool       `json:"is_active"    gorm:"column:is_active"`
	RateLimit   int        `json:"rate_limit"   gorm:"column:rate_limit"`
	UsageCount  int64      `json:"usage_count"  gorm:"column:usage_count"`
	WindowStart *time.Time `json:"-"            gorm:"column:window_start"`
	WindowCount int        `json:"-"            gorm:"column:window_count"`
	LastUsed    *time.Time `json:"last_used"    gorm:"column:last_used"`
	ExpiresAt   *time.Time `json:"expires_at"   gorm:"column:expires_at"`
	Metadata    string     `json:"-"            gorm:"column:metadata"`
	CreatedAt   time.Time  `json:"created_at"   gorm:"column:created_at"`

	Token string `json:"api_key,omitempty" gorm:"-"` // Populated only during registration
}

func (ApiKey) TableName() string {
	return "api_keys"
}
