package players

import (
	"net/http"
	"strconv"

	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"

	"github.com/gin-gonic/gin"
)

type PlayerController struct {
	playerService *PlayerService
}

func (c *PlayerController) RegisterRoutes(router *gin.RouterGroup) {
	playerRoutes := router.Group("/players")

	playerRoutes.GET("", c.ListPlayers)
	playerRoutes.GET("/:id", c.GetPlayer)
	playerRoutes.GET("/:id/matches", c.GetPlayerMatches)
	playerRoutes.GET("/:id/stats", c.GetPlayerStats)
	playerRoutes.GET("/:id/teams", c.GetPlayerTeams)
}

// ListPlayers
// @Summary List players
// @Description Get players with optional name search, position, nationality and team filters
// @Tags players
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Full-name substring"
// @Param position query string false "Position code, e.g. FW"
// @Param nationality query string false "Nationality"
// @Param team_id query int false "Current team"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} ListPlayersResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /players [get]
func (c *PlayerController) ListPlayers(ctx *gin.Context) {
	params, err := pagination.Parse(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	teamID, err := pagination.QueryInt64(ctx, "team_id")
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	filters := PlayerFilters{
		Search:      ctx.Query("search"),
		Position:    ctx.Query("position"),
		Nationality: ctx.Query("nationality"),
		TeamID:      teamID,
	}

	response, err := c.playerService.ListPlayers(ctx.Request.Context(), filters, params)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetPlayer
// @Summary Get a player
// @Tags players
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Player ID"
// @Success 200 {object} PlayerDetailDTO
// @Failure 404 {object} map[string]string
// @Router /players/{id} [get]
func (c *PlayerController) GetPlayer(ctx *gin.Context) {
	playerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid player id"))
		return
	}

	response, err := c.playerService.GetPlayer(ctx.Request.Context(), playerID)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetPlayerMatches
// @Summary List a player's appearances
// @Tags players
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Player ID"
// @Param season query int false "Season year"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page (max 200)"
// @Success 200 {object} PlayerMatchesResponseDTO
// @Failure 404 {object} map[string]string
// @Router /players/{id}/matches [get]
func (c *PlayerController) GetPlayerMatches(ctx *gin.Context) {
	playerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid player id"))
		return
	}

	params, err := pagination.ParseWithLimits(ctx, 50, 200)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	season, err := pagination.QueryInt(ctx, "season")
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.playerService.GetPlayerMatches(ctx.Request.Context(), playerID, season, params)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetPlayerStats
// @Summary Player appearance, scoring and discipline totals
// @Description Career totals, or totals for a single season
// @Tags players
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Player ID"
// @Param season query int false "Season year"
// @Success 200 {object} PlayerStatsDTO
// @Failure 404 {object} map[string]string
// @Router /players/{id}/stats [get]
func (c *PlayerController) GetPlayerStats(ctx *gin.Context) {
	playerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid player id"))
		return
	}

	season, err := pagination.QueryInt(ctx, "season")
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.playerService.GetPlayerStats(ctx.Request.Context(), playerID, season)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetPlayerTeams
// @Summary Teams a player has appeared for
// @Tags players
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Player ID"
// @Success 200 {object} PlayerTeamsResponseDTO
// @Failure 404 {object} map[string]string
// @Router /players/{id}/teams [get]
func (c *PlayerController) GetPlayerTeams(ctx *gin.Context) {
	playerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid player id"))
		return
	}

	response, err := c.playerService.GetPlayerTeams(ctx.Request.Context(), playerID)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
