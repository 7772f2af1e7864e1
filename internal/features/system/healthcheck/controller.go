package system_healthcheck

import (
	"net/http"

	"github.com/tom-mcmillan/nwsl-api/internal/config"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", c.GetApiInfo)
	router.GET("/health", c.GetHealth)
	router.GET("/health/ready", c.GetReadiness)
}

// GetApiInfo
// @Summary API information
// @Description Name, version and how to get started with the demo key
// @Tags system
// @Produce json
// @Success 200 {object} ApiInfoResponseDTO
// @Router / [get]
func (c *HealthcheckController) GetApiInfo(ctx *gin.Context) {
	cfg := config.GetEnv()

	ctx.JSON(http.StatusOK, &ApiInfoResponseDTO{
		Name:        "NWSL Statistics API",
		Version:     apiVersion,
		Description: "Read-only statistics for National Women's Soccer League teams, players and matches",
		DocsURL:     "/docs/index.html",
		DemoApiKey:  cfg.DemoApiKey,
		KeyHeader:   "X-API-Key",
	})
}

// GetHealth
// @Summary Health snapshot
// @Description Store check plus a memory and host snapshot; always HTTP 200
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponseDTO
// @Router /health [get]
func (c *HealthcheckController) GetHealth(ctx *gin.Context) {
	report := c.healthcheckService.BuildHealthReport(ctx.Request.Context())
	ctx.JSON(http.StatusOK, report)
}

// GetReadiness
// @Summary Readiness probe
// @Description 503 while the store is unreachable
// @Tags system
// @Produce json
// @Success 200 {object} ReadyResponseDTO
// @Failure 503 {object} map[string]string
// @Router /health/ready [get]
func (c *HealthcheckController) GetReadiness(ctx *gin.Context) {
	if err := c.healthcheckService.CheckStore(ctx.Request.Context()); err != nil {
		api_errors.Respond(ctx, api_errors.Unavailable())
		return
	}

	ctx.JSON(http.StatusOK, &ReadyResponseDTO{Status: "ready"})
}
