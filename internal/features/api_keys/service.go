package api_keys

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tom-mcmillan/nwsl-api/internal/config"
	"github.com/tom-mcmillan/nwsl-api/internal/features/audit_logs"
	"github.com/tom-mcmillan/nwsl-api/internal/models"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	rate_limit "github.com/tom-mcmillan/nwsl-api/internal/util/rate_limit"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApiKeyService struct {
	apiKeyRepository *ApiKeyRepository
	auditLogService  *audit_logs.AuditLogService
	logger           *slog.Logger
}

const (
	TokenPrefix = "nwsl_live_"
	TokenLength = 48
)

func (s *ApiKeyService) RegisterKey(
	ctx context.Context,
	request *RegisterKeyRequestDTO,
) (*RegisterKeyResponseDTO, error) {
	name := strings.TrimSpace(request.Name)
	email := strings.ToLower(strings.TrimSpace(request.Email))

	fullToken, tokenPrefix, tokenHash, err := s.generateSecureToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	apiKey := &models.ApiKey{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		TokenPrefix: tokenPrefix,
		TokenHash:   tokenHash,
		IsActive:    true,
		RateLimit:   config.GetEnv().DefaultRateLimit,
		Metadata:    "{}",
	}

	if err := s.apiKeyRepository.CreateApiKey(ctx, apiKey); err != nil {
		if isUniqueViolation(err) {
			return nil, &api_errors.ApiError{
				Code:    api_errors.ErrorDuplicateKey,
				Message: fmt.Sprintf("an API key named %q is already registered for %s", name, email),
			}
		}

		return nil, fmt.Errorf("failed to create API key: %w", err)
	}

	s.auditLogService.WriteKeyEvent(
		fmt.Sprintf("API key registered: %s (%s)", name, tokenPrefix),
		&apiKey.ID,
		email,
	)

	// The full token leaves the server exactly once, right here.
	return &RegisterKeyResponseDTO{
		ApiKey:      fullToken,
		TokenPrefix: tokenPrefix,
		Name:        name,
		Email:       email,
		RateLimit:   apiKey.RateLimit,
		CreatedAt:   apiKey.CreatedAt,
		Message:     "Store this key securely. It will not be shown again.",
	}, nil
}

func (s *ApiKeyService) GetKeysForEmail(
	ctx context.Context,
	email string,
) (*GetKeysResponseDTO, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	apiKeys, err := s.apiKeyRepository.GetApiKeysByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	keys := make([]*KeySummaryDTO, 0, len(apiKeys))
	for _, apiKey := range apiKeys {
		keys = append(keys, &KeySummaryDTO{
			ID:          apiKey.ID,
			Name:        apiKey.Name,
			TokenPrefix: apiKey.TokenPrefix,
			IsActive:    apiKey.IsActive,
			RateLimit:   apiKey.RateLimit,
			UsageCount:  apiKey.UsageCount,
			LastUsed:    apiKey.LastUsed,
			ExpiresAt:   apiKey.ExpiresAt,
			CreatedAt:   apiKey.CreatedAt,
		})
	}

	return &GetKeysResponseDTO{
		Email: email,
		Keys:  keys,
		Total: len(keys),
	}, nil
}

func (s *ApiKeyService) RevokeKey(ctx context.Context, apiKeyID uuid.UUID, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	revoked, err := s.apiKeyRepository.RevokeApiKey(ctx, apiKeyID, email)
	if err != nil {
		return fmt.Errorf("failed to revoke API key: %w", err)
	}

	if !revoked {
		return api_errors.NotFound("API key")
	}

	s.auditLogService.WriteKeyEvent(
		fmt.Sprintf("API key revoked: %s", apiKeyID),
		&apiKeyID,
		email,
	)

	return nil
}

// Authorize validates the candidate token and accounts the request
// against the key's hourly window in a single store-side operation.
// On success it returns the consumer identity with the remaining
// window capacity; on refusal the error carries the taxonomy code.
func (s *ApiKeyService) Authorize(ctx context.Context, candidate string) (*AuthorizedKey, error) {
	if candidate == "" {
		return nil, &api_errors.ApiError{
			Code:    api_errors.ErrorApiKeyRequired,
			Message: "API key required. Pass it in the X-API-Key header.",
		}
	}

	now := time.Now().UTC()
	tokenHash := s.hashToken(candidate)

	consumed, err := s.apiKeyRepository.ConsumeRequest(ctx, tokenHash, now)
	if err != nil {
		return nil, api_errors.FromStore(err, "")
	}

	if !consumed {
		return nil, s.rejectionFor(ctx, tokenHash, now)
	}

	apiKey, err := s.apiKeyRepository.GetApiKeyByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidKeyError()
		}

		return nil, api_errors.FromStore(err, "")
	}

	state := rate_limit.Evaluate(apiKey.RateLimit, apiKey.WindowStart, apiKey.WindowCount, now)

	return &AuthorizedKey{
		ID:        apiKey.ID,
		Name:      apiKey.Name,
		Email:     apiKey.Email,
		RateLimit: apiKey.RateLimit,
		Remaining: state.Remaining,
		ResetAt:   state.ResetTime,
	}, nil
}

// rejectionFor decides between 401 and 429 after the conditional
// UPDATE matched nothing. The read is advisory only; the request was
// already refused without touching any counter.
func (s *ApiKeyService) rejectionFor(ctx context.Context, tokenHash string, now time.Time) error {
	apiKey, err := s.apiKeyRepository.GetApiKeyByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidKeyError()
		}

		return api_errors.FromStore(err, "")
	}

	if !apiKey.IsActive || (apiKey.ExpiresAt != nil && !apiKey.ExpiresAt.After(now)) {
		return invalidKeyError()
	}

	state := rate_limit.Evaluate(apiKey.RateLimit, apiKey.WindowStart, apiKey.WindowCount, now)

	retryAfter := state.RetryAfterSec
	if retryAfter < 1 {
		retryAfter = 1
	}

	return &api_errors.ApiError{
		Code:          api_errors.ErrorRateLimitExceeded,
		Message:       fmt.Sprintf("Rate limit of %d requests per hour exceeded", apiKey.RateLimit),
		RetryAfterSec: retryAfter,
	}
}

// EnsureDemoKey provisions the configured demo key as a real row so
// demo traffic obeys the same accounting as registered keys.
func (s *ApiKeyService) EnsureDemoKey(ctx context.Context) error {
	demoKey := config.GetEnv().DemoApiKey
	if demoKey == "" {
		return nil
	}

	tokenHash := s.hashToken(demoKey)

	_, err := s.apiKeyRepository.GetApiKeyByTokenHash(ctx, tokenHash)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up demo key: %w", err)
	}

	apiKey := &models.ApiKey{
		ID:          uuid.New(),
		Name:        "Demo Key",
		Email:       "demo@nwsldata.com",
		TokenPrefix: displayPrefix(demoKey),
		TokenHash:   tokenHash,
		IsActive:    true,
		RateLimit:   config.GetEnv().DefaultRateLimit,
		Metadata:    `{"demo": true}`,
	}

	if err := s.apiKeyRepository.CreateApiKey(ctx, apiKey); err != nil {
		return fmt.Errorf("failed to create demo key: %w", err)
	}

	s.auditLogService.WriteKeyEvent("demo API key provisioned", &apiKey.ID, apiKey.Email)
	s.logger.Info("Demo API key provisioned", "prefix", apiKey.TokenPrefix)

	return nil
}

func (s *ApiKeyService) generateSecureToken() (fullToken, prefix, hash string, err error) {
	tokenBytes := make([]byte, TokenLength/2) // hex encoding doubles the length
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", "", err
	}

	tokenSuffix := hex.EncodeToString(tokenBytes)
	fullToken = TokenPrefix + tokenSuffix
	prefix = TokenPrefix + tokenSuffix[:6] + "..."
	hash = s.hashToken(fullToken)

	return fullToken, prefix, hash, nil
}

func (s *ApiKeyService) hashToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}

func invalidKeyError() *api_errors.ApiError {
	return &api_errors.ApiError{
		Code:    api_errors.ErrorApiKeyInvalid,
		Message: "Invalid or inactive API key",
	}
}

func displayPrefix(token string) string {
	if len(token) <= 16 {
		return token
	}

	return token[:16] + "..."
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	message := err.Error()

	return strings.Contains(message, "UNIQUE constraint failed") ||
		strings.Contains(message, "duplicate key value")
}
