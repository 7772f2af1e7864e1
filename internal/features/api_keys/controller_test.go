package api_keys

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/tom-mcmillan/nwsl-api/internal/models"
	"github.com/tom-mcmillan/nwsl-api/internal/storage"
	api_errors "github.com/tom-mcmillan/nwsl-api/internal/util/api_errors"
	testing_utils "github.com/tom-mcmillan/nwsl-api/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// pingController is a minimal key-gated surface for middleware tests.
type pingController struct{}

func (c *pingController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ping", func(ctx *gin.Context) {
		authorizedKey, ok := GetApiKeyFromContext(ctx)
		if !ok {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "missing key context"})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"email": authorizedKey.Email})
	})
}

func createPublicRouter() *gin.Engine {
	GetApiKeyController().SetRegisterLimiter(rate.NewLimiter(rate.Limit(100), 100))
	return testing_utils.CreateTestRouter(GetApiKeyController())
}

func decodeErrorBody(t *testing.T, body []byte) map[string]string {
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded
}

func Test_RegisterEndpoint_WhenValidRequest_ReturnsKey(t *testing.T) {
	router := createPublicRouter()

	w := testing_utils.MakeAPIRequest(router, "POST", "/register", "", RegisterKeyRequestDTO{
		Name:  "Integration",
		Email: uniqueEmail(),
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response RegisterKeyResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.ApiKey, TokenPrefix)
	assert.NotEmpty(t, response.Message)
}

func Test_RegisterEndpoint_WhenEmailInvalid_Returns422(t *testing.T) {
	router := createPublicRouter()

	w := testing_utils.MakeAPIRequest(router, "POST", "/register", "", RegisterKeyRequestDTO{
		Name:  "Broken",
		Email: "not-an-email",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, api_errors.ErrorInvalidParameter, decodeErrorBody(t, w.Body.Bytes())["code"])
}

func Test_RegisterEndpoint_WhenDuplicate_Returns400(t *testing.T) {
	router := createPublicRouter()
	email := uniqueEmail()

	request := RegisterKeyRequestDTO{Name: "Twice", Email: email}

	w := testing_utils.MakeAPIRequest(router, "POST", "/register", "", request)
	require.Equal(t, http.StatusOK, w.Code)

	w = testing_utils.MakeAPIRequest(router, "POST", "/register", "", request)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, api_errors.ErrorDuplicateKey, decodeErrorBody(t, w.Body.Bytes())["code"])
}

func Test_RegisterEndpoint_WhenLimiterExhausted_Returns429(t *testing.T) {
	router := testing_utils.CreateTestRouter(GetApiKeyController())

	GetApiKeyController().SetRegisterLimiter(rate.NewLimiter(0, 0))
	defer GetApiKeyController().SetRegisterLimiter(rate.NewLimiter(rate.Limit(100), 100))

	w := testing_utils.MakeAPIRequest(router, "POST", "/register", "", RegisterKeyRequestDTO{
		Name:  "Farmed",
		Email: uniqueEmail(),
	})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func Test_GetKeysEndpoint_WhenKeysExist_ReturnsPrefixFormOnly(t *testing.T) {
	router := createPublicRouter()
	email := uniqueEmail()

	firstToken := CreateTestApiKeyForEmail("First", email)
	CreateTestApiKeyForEmail("Second", email)

	w := testing_utils.MakeAPIRequest(router, "GET", "/keys/"+email, "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response GetKeysResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Total)
	assert.NotContains(t, w.Body.String(), firstToken)

	for _, key := range response.Keys {
		assert.Contains(t, key.TokenPrefix, "...")
	}
}

func Test_RevokeEndpoint_WhenValidPair_KeyStopsAuthorizing(t *testing.T) {
	router := createPublicRouter()
	email := uniqueEmail()

	token := CreateTestApiKeyForEmail("Disposable", email)
	row := fetchKeyRow(t, token)

	w := testing_utils.MakeAPIRequest(
		router,
		"DELETE",
		fmt.Sprintf("/keys/%s?email=%s", row.ID, email),
		"",
		nil,
	)

	require.Equal(t, http.StatusOK, w.Code)

	protected := CreateProtectedTestRouter(&pingController{})
	w = testing_utils.MakeAPIRequest(protected, "GET", "/api/v1/ping", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_RevokeEndpoint_WhenWrongEmail_Returns404(t *testing.T) {
	router := createPublicRouter()

	token := CreateTestApiKey("Protected")
	row := fetchKeyRow(t, token)

	w := testing_utils.MakeAPIRequest(
		router,
		"DELETE",
		fmt.Sprintf("/keys/%s?email=%s", row.ID, uniqueEmail()),
		"",
		nil,
	)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, api_errors.ErrorNotFound, decodeErrorBody(t, w.Body.Bytes())["code"])
}

func Test_RevokeEndpoint_WhenMalformedID_Returns422(t *testing.T) {
	router := createPublicRouter()

	w := testing_utils.MakeAPIRequest(router, "DELETE", "/keys/not-a-uuid?email=a@b.com", "", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func Test_Middleware_WhenNoHeader_Returns401Required(t *testing.T) {
	router := CreateProtectedTestRouter(&pingController{})

	w := testing_utils.MakeAPIRequest(router, "GET", "/api/v1/ping", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, api_errors.ErrorApiKeyRequired, decodeErrorBody(t, w.Body.Bytes())["code"])
}

func Test_Middleware_WhenUnknownKey_Returns401Invalid(t *testing.T) {
	router := CreateProtectedTestRouter(&pingController{})

	w := testing_utils.MakeAPIRequest(router, "GET", "/api/v1/ping", "nwsl_live_bogus", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, api_errors.ErrorApiKeyInvalid, decodeErrorBody(t, w.Body.Bytes())["code"])
}

func Test_Middleware_WhenValidKey_SetsRateLimitHeaders(t *testing.T) {
	router := CreateProtectedTestRouter(&pingController{})
	token := CreateTestApiKey("Headers")

	w := testing_utils.MakeAPIRequest(router, "GET", "/api/v1/ping", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
}

func Test_Middleware_WhenKeyAtLimit_Returns429WithRetryAfter(t *testing.T) {
	router := CreateProtectedTestRouter(&pingController{})
	token := CreateTestApiKey("Throttled")
	row := fetchKeyRow(t, token)

	err := storage.GetDb().
		Model(&models.ApiKey{}).
		Where("id = ?", row.ID).
		Update("rate_limit", 1).Error
	require.NoError(t, err)

	w := testing_utils.MakeAPIRequest(router, "GET", "/api/v1/ping", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = testing_utils.MakeAPIRequest(router, "GET", "/api/v1/ping", token, nil)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, api_errors.ErrorRateLimitExceeded, decodeErrorBody(t, w.Body.Bytes())["code"])
}
