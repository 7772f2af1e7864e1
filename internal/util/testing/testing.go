package testing_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

type ControllerInterface interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// CreateTestRouter mounts controllers on the root group without any
// key middleware, matching the public surfaces (registration, health).
func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	root := router.Group("")
	for _, controller := range controllers {
		controller.RegisterRoutes(root)
	}

	return router
}

// CreateTestRouterWithMiddleware mounts controllers under /api/v1
// behind the given middleware, matching the production route layout.
func CreateTestRouterWithMiddleware(
	middleware gin.HandlerFunc,
	controllers ...ControllerInterface,
) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	v1.Use(middleware)

	for _, controller := range controllers {
		controller.RegisterRoutes(v1)
	}

	return router
}

func MakeAPIRequest(router *gin.Engine, method, url, apiKey string, body any) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
