package pagination

import (
	"fmt"
	"strconv"

	"github.com/tom-mcmillan/nwsl-api/internal/config"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"

	"github.com/gin-gonic/gin"
)

type Params struct {
	Page     int
	PageSize int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Meta is the pagination envelope every list endpoint returns.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func NewMeta(total int64, params Params) Meta {
	totalPages := int((total + int64(params.PageSize) - 1) / int64(params.PageSize))

	return Meta{
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}
}

// Parse reads page/page_size with the configured defaults.
// Out-of-range and non-numeric values are rejected, not clamped.
func Parse(ctx *gin.Context) (Params, error) {
	cfg := config.GetEnv()
	return ParseWithLimits(ctx, cfg.DefaultPageSize, cfg.MaxPageSize)
}

func ParseWithLimits(ctx *gin.Context, defaultSize, maxSize int) (Params, error) {
	page, err := intQueryParam(ctx, "page", 1, 1, 0)
	if err != nil {
		return Params{}, err
	}

	pageSize, err := intQueryParam(ctx, "page_size", defaultSize, 1, maxSize)
	if err != nil {
		return Params{}, err
	}

	return Params{Page: page, PageSize: pageSize}, nil
}

// ParseLimit reads a bare limit parameter (leaderboard endpoints).
func ParseLimit(ctx *gin.Context, defaultLimit, maxLimit int) (int, error) {
	return intQueryParam(ctx, "limit", defaultLimit, 1, maxLimit)
}

// QueryInt reads an optional positive integer filter such as season or
// team_id. Zero means the parameter was absent.
func QueryInt(ctx *gin.Context, name string) (int, error) {
	return intQueryParam(ctx, name, 0, 1, 0)
}

// QueryInt64 is QueryInt for identifier-sized filters.
func QueryInt64(ctx *gin.Context, name string) (int64, error) {
	value, err := intQueryParam(ctx, name, 0, 1, 0)
	return int64(value), err
}

// intQueryParam validates a numeric query parameter against
// [minValue, maxValue]; maxValue 0 means unbounded above.
func intQueryParam(ctx *gin.Context, name string, defaultValue, minValue, maxValue int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, api_errors.InvalidParameter(fmt.Sprintf("%s must be an integer", name))
	}

	if value < minValue {
		return 0, api_errors.InvalidParameter(fmt.Sprintf("%s must be at least %d", name, minValue))
	}

	if maxValue > 0 && value > maxValue {
		return 0, api_errors.InvalidParameter(fmt.Sprintf("%s cannot exceed %d", name, maxValue))
	}

	return value, nil
}
