package api_keys

import (
	"context"
	"fmt"

	testing_utils "github.com/tom-mcmillan/nwsl-api/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateProtectedTestRouter mounts controllers under /api/v1 behind
// the key middleware, mirroring the production layout.
func CreateProtectedTestRouter(controllers ...testing_utils.ControllerInterface) *gin.Engine {
	return testing_utils.CreateTestRouterWithMiddleware(
		RequireApiKey(GetApiKeyService()),
		controllers...,
	)
}

func CreateTestApiKey(name string) string {
	return CreateTestApiKeyForEmail(name, fmt.Sprintf("%s@test.nwsldata.com", uuid.New().String()[:8]))
}

func CreateTestApiKeyForEmail(name, email string) string {
	response, err := GetApiKeyService().RegisterKey(context.Background(), &RegisterKeyRequestDTO{
		Name:  name,
		Email: email,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create test API key: %v", err))
	}

	return response.ApiKey
}
