package api_keys

import (
	"time"

	"github.com/google/uuid"
)

type RegisterKeyRequestDTO struct {
	Name  string `json:"name"  binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"required,email,max=255"`
}

type RegisterKeyResponseDTO struct {
	ApiKey      string    `json:"api_key"`
	TokenPrefix string    `json:"token_prefix"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	RateLimit   int       `json:"rate_limit"`
	CreatedAt   time.Time `json:"created_at"`
	Message     string    `json:"message"`
}

// KeySummaryDTO is the listing form of a key: prefix only, never the
// full token, which is shown exactly once at registration.
type KeySummaryDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	TokenPrefix string     `json:"token_prefix"`
	IsActive    bool       `json:"is_active"`
	RateLimit   int        `json:"rate_limit"`
	UsageCount  int64      `json:"usage_count"`
	LastUsed    *time.Time `json:"last_used"`
	ExpiresAt   *time.Time `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

type GetKeysResponseDTO struct {
	Email string           `json:"email"`
	Keys  []*KeySummaryDTO `json:"keys"`
	Total int              `json:"total"`
}

type RevokeKeyResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthorizedKey is the consumer identity attached to the request
// context after the middleware admits a request.
type AuthorizedKey struct {
	ID        uuid.UUID
	Name      string
	Email     string
	RateLimit int
	Remaining int
	ResetAt   time.Time
}
