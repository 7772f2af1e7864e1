package api_keys

import (
	"strconv"

	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

// RequireApiKey authorizes each request via the key service and
// attaches the consumer identity to the gin context.
func RequireApiKey(apiKeyService *ApiKeyService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		candidate := ctx.GetHeader(apiKeyHeader)

		authorizedKey, err := apiKeyService.Authorize(ctx.Request.Context(), candidate)
		if err != nil {
			api_errors.Respond(ctx, err)
			ctx.Abort()
			return
		}

		ctx.Header("X-RateLimit-Limit", strconv.Itoa(authorizedKey.RateLimit))
		ctx.Header("X-RateLimit-Remaining", strconv.Itoa(authorizedKey.Remaining))
		ctx.Header("X-RateLimit-Reset", strconv.FormatInt(authorizedKey.ResetAt.Unix(), 10))

		ctx.Set("apiKey", authorizedKey)
		ctx.Next()
	}
}

// GetApiKeyFromContext extracts the authorized key placed by RequireApiKey.
func GetApiKeyFromContext(ctx *gin.Context) (*AuthorizedKey, bool) {
	keyInterface, exists := ctx.Get("apiKey")
	if !exists {
		return nil, false
	}

	authorizedKey, ok := keyInterface.(*AuthorizedKey)

	return authorizedKey, ok
}
