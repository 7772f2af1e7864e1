package events

import (
	"net/http"

	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	"github.com/tom-mcmillan/nwsl-api/internal/util/pagination"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	eventService *EventService
}

func (c *EventController) RegisterRoutes(router *gin.RouterGroup) {
	eventRoutes := router.Group("/events")

	eventRoutes.GET("", c.ListEvents)
	eventRoutes.GET("/goals", c.ListGoals)
	eventRoutes.GET("/cards", c.ListCards)
}

// parseFilters reads the season/team_id/player_id parameters shared by
// every event listing.
func parseFilters(ctx *gin.Context) (EventFilters, error) {
	season, err := pagination.QueryInt(ctx, "season")
	if err != nil {
		return EventFilters{}, err
	}

	teamID, err := pagination.QueryInt64(ctx, "team_id")
	if err != nil {
		return EventFilters{}, err
	}

	playerID, err := pagination.QueryInt64(ctx, "player_id")
	if err != nil {
		return EventFilters{}, err
	}

	return EventFilters{
		EventType: ctx.Query("event_type"),
		CardType:  ctx.Query("card_type"),
		Season:    season,
		TeamID:    teamID,
		PlayerID:  playerID,
	}, nil
}

// ListEvents
// @Summary List match events league-wide
// @Description Get events with optional type, season, team and player filters
// @Tags events
// @Produce json
// @Security ApiKeyAuth
// @Param event_type query string false "goal, yellow_card, red_card or substitution"
// @Param season query int false "Season year"
// @Param team_id query int false "Team the event is attributed to"
// @Param player_id query int false "Player the event is attributed to"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} ListEventsResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	params, err := pagination.Parse(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	filters, err := parseFilters(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.eventService.ListEvents(ctx.Request.Context(), filters, params)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListGoals
// @Summary List goals with scorer and assist
// @Tags events
// @Produce json
// @Security ApiKeyAuth
// @Param season query int false "Season year"
// @Param team_id query int false "Scoring team"
// @Param player_id query int false "Scorer"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} ListGoalsResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /events/goals [get]
func (c *EventController) ListGoals(ctx *gin.Context) {
	params, err := pagination.Parse(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	filters, err := parseFilters(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.eventService.ListGoals(ctx.Request.Context(), filters, params)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListCards
// @Summary List bookings
// @Tags events
// @Produce json
// @Security ApiKeyAuth
// @Param card_type query string false "yellow or red; both when omitted"
// @Param season query int false "Season year"
// @Param team_id query int false "Booked team"
// @Param player_id query int false "Booked player"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} ListCardsResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /events/cards [get]
func (c *EventController) ListCards(ctx *gin.Context) {
	params, err := pagination.Parse(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	filters, err := parseFilters(ctx)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	response, err := c.eventService.ListCards(ctx.Request.Context(), filters, params)
	if err != nil {
		api_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
