package venues

import (
	"net/http"
	"strconv"

	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"

	"github.com/gin-gonic/gin"
)

type VenueController struct {
	venueService *VenueService
}

func (c *VenueController) RegisterRoutes(router *gin.RouterGroup) {
	venueRoutes := router.Group("/venues")

	venueRoutes.GET("", c.ListVenues)
	venueRoutes.GET("/:id", c.GetVenue)
	venueRoutes.GET("/:id/matches", c.GetVenueMatches)
	venueRoutes.GET("/:id/stats", c.GetVenueStats)
}

// ListVenues
// @Summary List venues
// @Description Get venues with optional name/city search and state filter
// @Tags venues
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Name or city substring"
// @Param state query string false "Two-letter state code"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} ListVenuesResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venues [get]
func (c *VenueController) ListVenues(ctx *gin.Context) {
	params, err := pagination.Parse(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.venueService.ListVenues(
		ctx.Request.Context(),
		ctx.Query("search"),
		ctx.Query("state"),
		params,
	)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetVenue
// @Summary Get a venue
// @Tags venues
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Venue ID"
// @Success 200 {object} models.Venue
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [get]
func (c *VenueController) GetVenue(ctx *gin.Context) {
	venueID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid venue id"))
		return
	}

	venue, err := c.venueService.GetVenue(ctx.Request.Context(), venueID)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, venue)
}

// GetVenueMatches
// @Summary List matches hosted at a venue
// @Tags venues
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Venue ID"
// @Param season query int false "Season year"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page (max 200)"
// @Success 200 {object} VenueMatchesResponseDTO
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/matches [get]
func (c *VenueController) GetVenueMatches(ctx *gin.Context) {
	venueID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid venue id"))
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

	response, err := c.venueService.GetVenueMatches(ctx.Request.Context(), venueID, season, params)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetVenueStats
// @Summary Venue attendance and result statistics
// @Tags venues
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Venue ID"
// @Success 200 {object} VenueStatsDTO
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/stats [get]
func (c *VenueController) GetVenueStats(ctx *gin.Context) {
	venueID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		api_errors.Respond(ctx, api_errors.InvalidParameter("invalid venue id"))
		return
	}

	response, err := c.venueService.GetVenueStats(ctx.Request.Context(), venueID)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
