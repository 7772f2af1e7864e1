package stats

import (
	"net/http"
	"strconv"

	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"

	"github.com/gin-gonic/gin"
)

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

type StatsController struct {
	statsService *StatsService
}

func (c *StatsController) RegisterRoutes(router *gin.RouterGroup) {
	statsRoutes := router.Group("/stats")

	statsRoutes.GET("/leaderboard/goals", c.GetGoalLeaderboard)
	statsRoutes.GET("/leaderboard/assists", c.GetAssistLeaderboard)
	statsRoutes.GET("/leaderboard/clean-sheets", c.GetCleanSheetLeaderboard)
	statsRoutes.GET("/team/:id/season/:season", c.GetTeamSeasonReview)
	statsRoutes.GET("/player/:id/career", c.GetPlayerCareer)
}

func parseLeaderboardQuery(ctx *gin.Context) (season, limit int, err error) {
	season, err = pagination.QueryInt(ctx, "season")
	if err != nil {
		return 0, 0, err
	}

	limit, err = pagination.ParseLimit(ctx, defaultLeaderboardSize, maxLeaderboardSize)
	if err != nil {
		return 0, 0, err
	}

	return season, limit, nil
}

// GetGoalLeaderboard
// @Summary Top scorers
// @Description Players ranked by goals, optionally within one season
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Param season query int false "Season year"
// @Param limit query int false "Rows to return (default 10, max 100)"
// @Success 200 {object} GoalLeaderboardResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /stats/leaderboard/goals [get]
func (c *StatsController) GetGoalLeaderboard(ctx *gin.Context) {
	season, limit, err := parseLeaderboardQuery(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.statsService.GetGoalLeaderboard(ctx.Request.Context(), season, limit)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetAssistLeaderboard
// @Summary Top assist providers
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Param season query int false "Season year"
// @Param limit query int false "Rows to return (default 10, max 100)"
// @Success 200 {object} AssistLeaderboardResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /stats/leaderboard/assists [get]
func (c *StatsController) GetAssistLeaderboard(ctx *gin.Context) {
	season, limit, err := parseLeaderboardQuery(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.statsService.GetAssistLeaderboard(ctx.Request.Context(), season, limit)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCleanSheetLeaderboard
// @Summary Goalkeepers ranked by clean sheets
// @Description Keepers with at least five appearances in scope
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Param season query int false "Season year"
// @Param limit query int false "Rows to return (default 10, max 100)"
// @Success 200 {object} CleanSheetLeaderboardResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /stats/leaderboard/clean-sheets [get]
func (c *StatsController) GetCleanSheetLeaderboard(ctx *gin.Context) {
	season, limit, err := parseLeaderboardQuery(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.statsService.GetCleanSheetLeaderboard(ctx.Request.Context(), season, limit)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetTeamSeasonReview
// @Summary One team's season in review
// @Description Overall record, home/away split and top scorers
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Team ID"
// @Param season path int true "Season year"
// @Success 200 {object} TeamSeasonReviewDTO
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /stats/team/{id}/season/{season} [get]
func (c *StatsController) GetTeamSeasonReview(ctx *gin.Context) {
	teamID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid team id"))
		return
	}

	season, err := strconv.Atoi(ctx.Param("season"))
	if err != nil || season < 1 {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid season"))
		return
	}

	response, err := c.statsService.GetTeamSeasonReview(ctx.Request.Context(), teamID, season)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetPlayerCareer
// @Summary A player's career, season by season
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Player ID"
// @Success 200 {object} PlayerCareerResponseDTO
// @Failure 404 {object} map[string]string
// @Router /stats/player/{id}/career [get]
func (c *StatsController) GetPlayerCareer(ctx *gin.Context) {
	playerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid player id"))
		return
	}

	response, err := c.statsService.GetPlayerCareer(ctx.Request.Context(), playerID)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
