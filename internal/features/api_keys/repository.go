package api_keys

import (
	"context"
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
	rate_limit "github.com/tom-mcmillan/nwsl-api/internal/util/rate_limit"

	"github.com/google/uuid"
)

type ApiKeyRepository struct{}

func (r *ApiKeyRepository) CreateApiKey(ctx context.Context, apiKey *models.ApiKey) error {
	if apiKey.ID == uuid.Nil {
		apiKey.ID = uuid.New()
	}

	if apiKey.CreatedAt.IsZero() {
		apiKey.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().WithContext(ctx).Create(apiKey).Error
}

func (r *ApiKeyRepository) GetApiKeysByEmail(
	ctx context.Context,
	email string,
) ([]*models.ApiKey, error) {
	var apiKeys []*models.ApiKey

	err := storage.GetDb().WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&apiKeys).Error

	return apiKeys, err
}

func (r *ApiKeyRepository) GetApiKeyByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*models.ApiKey, error) {
	var apiKey models.ApiKey

	err := storage.GetDb().WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&apiKey).Error

	if err != nil {
		return nil, err
	}

	return &apiKey, nil
}

// ConsumeRequest is the only place usage counters mutate. A single
// conditional UPDATE matches the key, checks active/expiry state and
// hourly window capacity, and accounts the request; the database
// serializes concurrent executions on the row, so an admitted request
// increments the counters exactly once and a key at its limit is
// never incremented. Returns whether a row was consumed.
func (r *ApiKeyRepository) ConsumeRequest(
	ctx context.Context,
	tokenHash string,
	now time.Time,
) (bool, error) {
	windowStart := rate_limit.WindowStart(now)

	result := storage.GetDb().WithContext(ctx).Exec(`
		UPDATE api_keys
		SET usage_count = usage_count + 1,
		    last_used = ?,
		    window_count = CASE
		        WHEN window_start IS NULL OR window_start < ? THEN 1
		        ELSE window_count + 1
		    END,
		    window_start = ?
		WHERE token_hash = ?
		  AND is_active = ?
		  AND (expires_at IS NULL OR expires_at > ?)
		  AND (window_start IS NULL OR window_start < ? OR window_count < rate_limit)`,
		now, windowStart, windowStart,
		tokenHash, true, now, windowStart,
	)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// RevokeApiKey deactivates the key matching both id and owner email.
// Returns whether a key was actually revoked.
func (r *ApiKeyRepository) RevokeApiKey(
	ctx context.Context,
	apiKeyID uuid.UUID,
	email string,
) (bool, error) {
	result := storage.GetDb().WithContext(ctx).
		Model(&models.ApiKey{}).
		Where("id = ? AND email = ? AND is_active = ?", apiKeyID, email, true).
		Update("is_active", false)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// DeactivateExpiredKeys flips is_active off for every key whose expiry
// has passed and returns the affected keys for auditing.
func (r *ApiKeyRepository) DeactivateExpiredKeys(
	ctx context.Context,
	now time.Time,
) ([]*models.ApiKey, error) {
	var expired []*models.ApiKey

	err := storage.GetDb().WithContext(ctx).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		Find(&expired).Error
	if err != nil {
		return nil, err
	}

	if len(expired) == 0 {
		return expired, nil
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, apiKey := range expired {
		ids = append(ids, apiKey.ID)
	}

	err = storage.GetDb().WithContext(ctx).
		Model(&models.ApiKey{}).
		Where("id IN ?", ids).
		Update("is_active", false).Error
	if err != nil {
		return nil, err
	}

	return expired, nil
}
