package api_keys

import (
	"github.com/tom-mcmillan/nwsl-api/internal/features/audit_logs"
	"github.com/tom-mcmillan/nwsl-api/internal/util/logger"

	"golang.org/x/time/rate"
)

var apiKeyRepository = &ApiKeyRepository{}

var apiKeyService = &ApiKeyService{
	apiKeyRepository,
	audit_logs.GetAuditLogService(),
	logger.GetLogger(),
}

var apiKeyController = &ApiKeyController{
	apiKeyService,
	rate.NewLimiter(rate.Limit(3), 3), // 3 RPS with burst of 3
}

var apiKeyBackgroundService = &ApiKeyBackgroundService{
	apiKeyRepository: apiKeyRepository,
	auditLogService:  audit_logs.GetAuditLogService(),
	logger:           logger.GetLogger(),
}

func GetApiKeyService() *ApiKeyService {
	return apiKeyService
}

func GetApiKeyController() *ApiKeyController {
	return apiKeyController
}

func GetApiKeyBackgroundService() *ApiKeyBackgroundService {
	return apiKeyBackgroundService
}
