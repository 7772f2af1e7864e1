package api_keys

import (
	"net/http"

	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type ApiKeyController struct {
	apiKeyService   *ApiKeyService
	registerLimiter *rate.Limiter
}

func (c *ApiKeyController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/register", c.RegisterKey)
	router.GET("/keys/:email", c.GetKeys)
	router.DELETE("/keys/:id", c.RevokeKey)
}

func (c *ApiKeyController) SetRegisterLimiter(limiter *rate.Limiter) {
	c.registerLimiter = limiter
}

// RegisterKey
// @Summary Register a new API key
// @Description Create an API key for the given developer name and email. The full key is returned once and never again.
// @Tags developers
// @Accept json
// @Produce json
// @Param request body RegisterKeyRequestDTO true "Developer registration data"
// @Success 200 {object} RegisterKeyResponseDTO
// @Failure 400 {object} map[string]string "Duplicate name for this email"
// @Failure 422 {object} map[string]string
// @Failure 429 {object} map[string]string "Registration rate limit exceeded"
// @Router /register [post]
func (c *ApiKeyController) RegisterKey(ctx *gin.Context) {
	// We use rate limiter to prevent automated key farming
	if !c.registerLimiter.Allow() {
		api_errors.Respond(ctx, &api_errors.ApiError{
			Code:          api_errors.ErrorRateLimitExceeded,
			Message:       "Too many registration attempts. Please try again later.",
			RetryAfterSec: 1,
		})
		return
	}

	var request RegisterKeyRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("name and a valid email are required"))
		return
	}

	response, err := c.apiKeyService.RegisterKey(ctx.Request.Context(), &request)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetKeys
// @Summary List API keys for an email
// @Description Get every key registered for the email in prefix form. Full tokens are never returned.
// @Tags developers
// @Produce json
// @Param email path string true "Developer email"
// @Success 200 {object} GetKeysResponseDTO
// @Failure 422 {object} map[string]string
// @Router /keys/{email} [get]
func (c *ApiKeyController) GetKeys(ctx *gin.Context) {
	email := ctx.Param("email")
	if email == "" {
		api_errors.Respond(ctx, api_errors.InvalidParameter("email is required"))
		return
	}

	response, err := c.apiKeyService.GetKeysForEmail(ctx.Request.Context(), email)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RevokeKey
// @Summary Revoke an API key
// @Description Deactivate the key matching both id and owner email. Keys are never deleted.
// @Tags developers
// @Produce json
// @Param id path string true "API key ID"
// @Param email query string true "Owner email"
// @Success 200 {object} RevokeKeyResponseDTO
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /keys/{id} [delete]
func (c *ApiKeyController) RevokeKey(ctx *gin.Context) {
	apiKeyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid API key id"))
		return
	}

	email := ctx.Query("email")
	if email == "" {
		api_errors.Respond(ctx, api_errors.InvalidParameter("email query parameter is required"))
		return
	}

	if err := c.apiKeyService.RevokeKey(ctx.Request.Context(), apiKeyID, email); err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, RevokeKeyResponseDTO{
		Success: true,
		Message: "API key revoked",
	})
}
