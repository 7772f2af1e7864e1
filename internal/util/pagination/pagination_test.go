package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func makeTestContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/teams"+query, nil)

	return ctx
}

func Test_Parse_WhenNoParams_ReturnsDefaults(t *testing.T) {
	params, err := Parse(makeTestContext(""))

	assert.NoError(t, err)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.PageSize)
}

func Test_Parse_WhenValidParams_ReturnsValues(t *testing.T) {
	params, err := Parse(makeTestContext("?page=3&page_size=25"))

	assert.NoError(t, err)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.PageSize)
	assert.Equal(t, 50, params.Offset())
}

func Test_Parse_WhenPageNotNumeric_ReturnsInvalidParameter(t *testing.T) {
	_, err := Parse(makeTestContext("?page=abc"))

	assert.Error(t, err)

	apiErr, ok := err.(*api_errors.ApiError)
	assert.True(t, ok)
	assert.Equal(t, api_errors.ErrorInvalidParameter, apiErr.Code)
}

func Test_Parse_WhenPageZero_ReturnsInvalidParameter(t *testing.T) {
	_, err := Parse(makeTestContext("?page=0"))

	assert.Error(t, err)
}

func Test_Parse_WhenPageSizeExceedsCeiling_ReturnsInvalidParameter(t *testing.T) {
	_, err := Parse(makeTestContext("?page_size=1001"))

	assert.Error(t, err)

	apiErr, ok := err.(*api_errors.ApiError)
	assert.True(t, ok)
	assert.Equal(t, api_errors.ErrorInvalidParameter, apiErr.Code)
}

func Test_ParseWithLimits_WhenCustomCeiling_Enforced(t *testing.T) {
	params, err := ParseWithLimits(makeTestContext(""), 50, 200)
	assert.NoError(t, err)
	assert.Equal(t, 50, params.PageSize)

	_, err = ParseWithLimits(makeTestContext("?page_size=201"), 50, 200)
	assert.Error(t, err)
}

func Test_ParseLimit_WhenAbsent_ReturnsDefault(t *testing.T) {
	limit, err := ParseLimit(makeTestContext(""), 10, 100)

	assert.NoError(t, err)
	assert.Equal(t, 10, limit)
}

func Test_ParseLimit_WhenOverMax_ReturnsInvalidParameter(t *testing.T) {
	_, err := ParseLimit(makeTestContext("?limit=101"), 10, 100)

	assert.Error(t, err)
}

func Test_QueryInt_WhenAbsent_ReturnsZero(t *testing.T) {
	value, err := QueryInt(makeTestContext(""), "season")

	assert.NoError(t, err)
	assert.Equal(t, 0, value)
}

func Test_QueryInt_WhenNegative_ReturnsInvalidParameter(t *testing.T) {
	_, err := QueryInt(makeTestContext("?season=-1"), "season")

	assert.Error(t, err)
}

func Test_NewMeta_WhenTotalNotDivisible_RoundsPagesUp(t *testing.T) {
	meta := NewMeta(101, Params{Page: 1, PageSize: 100})

	assert.Equal(t, int64(101), meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func Test_NewMeta_WhenNoRows_ZeroPages(t *testing.T) {
	meta := NewMeta(0, Params{Page: 1, PageSize: 100})

	assert.Equal(t, 0, meta.TotalPages)
}
