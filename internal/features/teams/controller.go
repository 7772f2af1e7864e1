package teams

import (
	"net/http"
	"strconv"

	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"

	"github.com/gin-gonic/gin"
)

type TeamController struct {
	teamService *TeamService
}

func (c *TeamController) RegisterRoutes(router *gin.RouterGroup) {
	teamRoutes := router.Group("/teams")

	teamRoutes.GET("", c.ListTeams)
	teamRoutes.GET("/:id", c.GetTeam)
	teamRoutes.GET("/:id/players", c.GetTeamPlayers)
	teamRoutes.GET("/:id/matches", c.GetTeamMatches)
	teamRoutes.GET("/:id/stats", c.GetTeamStats)
}

// ListTeams
// @Summary List teams
// @Description Get teams with optional name/city search
// @Tags teams
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Name or city substring"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} ListTeamsResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /teams [get]
func (c *TeamController) ListTeams(ctx *gin.Context) {
	params, err := pagination.Parse(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.teamService.ListTeams(ctx.Request.Context(), ctx.Query("search"), params)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetTeam
// @Summary Get a team
// @Tags teams
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [get]
func (c *TeamController) GetTeam(ctx *gin.Context) {
	teamID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid team id"))
		return
	}

	team, err := c.teamService.GetTeam(ctx.Request.Context(), teamID)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// GetTeamPlayers
// @Summary List a team's players
// @Description Current roster, or the players fielded in a given season
// @Tags teams
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Team ID"
// @Param season query int false "Season year"
// @Success 200 {object} TeamPlayersResponseDTO
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/players [get]
func (c *TeamController) GetTeamPlayers(ctx *gin.Context) {
	teamID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid team id"))
		return
	}

	season, err := pagination.QueryInt(ctx, "season")
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.teamService.GetTeamPlayers(ctx.Request.Context(), teamID, season)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetTeamMatches
// @Summary List a team's matches
// @Description Matches from the team's perspective with opponent and result
// @Tags teams
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Team ID"
// @Param season query int false "Season year"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} TeamMatchesResponseDTO
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/matches [get]
func (c *TeamController) GetTeamMatches(ctx *gin.Context) {
	teamID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid team id"))
		return
	}

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

	response, err := c.teamService.GetTeamMatches(ctx.Request.Context(), teamID, season, params)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetTeamStats
// @Summary Team win/loss record and goal totals
// @Tags teams
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Team ID"
// @Param season query int false "Season year"
// @Success 200 {object} TeamStatsDTO
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/stats [get]
func (c *TeamController) GetTeamStats(ctx *gin.Context) {
	teamID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid team id"))
		return
	}

	season, err := pagination.QueryInt(ctx, "season")
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.teamService.GetTeamStats(ctx.Request.Context(), teamID, season)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
