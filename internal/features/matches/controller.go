package matches

import (
	"net/http"
	"strconv"

	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"

	"github.com/gin-gonic/gin"
)

type MatchController struct {
	matchService *MatchService
}

func (c *MatchController) RegisterRoutes(router *gin.RouterGroup) {
	matchRoutes := router.Group("/matches")

	matchRoutes.GET("", c.ListMatches)
	matchRoutes.GET("/:id", c.GetMatch)
	matchRoutes.GET("/:id/lineups", c.GetMatchLineups)
	matchRoutes.GET("/:id/events", c.GetMatchEvents)
	matchRoutes.GET("/:id/stats", c.GetMatchStats)
}

// ListMatches
// @Summary List matches
// @Description Get matches with optional season, team and date range filters
// @Tags matches
// @Produce json
// @Security ApiKeyAuth
// @Param season query int false "Season year"
// @Param team_id query int false "Matches a team played, home or away"
// @Param start_date query string false "Earliest match date (YYYY-MM-DD)"
// @Param end_date query string false "Latest match date, inclusive (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} ListMatchesResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /matches [get]
func (c *MatchController) ListMatches(ctx *gin.Context) {
	params, err := pagination.Parse(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	season, err := pagination.QueryInt(ctx, "season")
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	teamID, err := pagination.QueryInt64(ctx, "team_id")
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	filters := MatchFilters{
		Season:    season,
		TeamID:    teamID,
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	response, err := c.matchService.ListMatches(ctx.Request.Context(), filters, params)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetMatch
// @Summary Get a match
// @Description Match detail with team and venue names resolved
// @Tags matches
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Match ID"
// @Success 200 {object} MatchSummaryDTO
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (c *MatchController) GetMatch(ctx *gin.Context) {
	matchID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid match id"))
		return
	}

	response, err := c.matchService.GetMatch(ctx.Request.Context(), matchID)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetMatchLineups
// @Summary Match lineups grouped by side
// @Tags matches
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Match ID"
// @Success 200 {object} MatchLineupsResponseDTO
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/lineups [get]
func (c *MatchController) GetMatchLineups(ctx *gin.Context) {
	matchID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid match id"))
		return
	}

	response, err := c.matchService.GetMatchLineups(ctx.Request.Context(), matchID)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetMatchEvents
// @Summary Match events in chronological order
// @Tags matches
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Match ID"
// @Success 200 {object} MatchEventsResponseDTO
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/events [get]
func (c *MatchController) GetMatchEvents(ctx *gin.Context) {
	matchID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid match id"))
		return
	}

	response, err := c.matchService.GetMatchEvents(ctx.Request.Context(), matchID)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetMatchStats
// @Summary Per-side goal, card and substitution counts
// @Tags matches
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Match ID"
// @Success 200 {object} MatchStatsDTO
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/stats [get]
func (c *MatchController) GetMatchStats(ctx *gin.Context) {
	matchID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid match id"))
		return
	}

	response, err := c.matchService.GetMatchStats(ctx.Request.Context(), matchID)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
