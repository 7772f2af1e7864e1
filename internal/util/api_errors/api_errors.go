package api_errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApiError is the machine-readable error every endpoint speaks.
// Code is stable; Message is for humans.
type ApiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// Seconds until a rate-limited key regains capacity.
	RetryAfterSec int `json:"-"`
}

func (e *ApiError) Error() string {
	return e.Message
}

const (
	ErrorApiKeyRequired    = "API_KEY_REQUIRED"
	ErrorApiKeyInvalid     = "API_KEY_INVALID"
	ErrorRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorNotFound          = "NOT_FOUND"
	ErrorInvalidParameter  = "INVALID_PARAMETER"
	ErrorDuplicateKey      = "DUPLICATE_KEY"
	ErrorStoreUnavailable  = "STORE_UNAVAILABLE"
	ErrorInternal          = "INTERNAL_ERROR"
)

func NotFound(resource string) *ApiError {
	return &ApiError{
		Code:    ErrorNotFound,
		Message: resource + " not found",
	}
}

func InvalidParameter(message string) *ApiError {
	return &ApiError{
		Code:    ErrorInvalidParameter,
		Message: message,
	}
}

func Unavailable() *ApiError {
	return &ApiError{
		Code:    ErrorStoreUnavailable,
		Message: "storage is temporarily unavailable",
	}
}

// FromStore maps a storage error onto the API taxonomy. resource names
// the entity of a single-row lookup; pass "" for list and aggregate
// queries where gorm.ErrRecordNotFound cannot occur.
func FromStore(err error, resource string) *ApiError {
	if apiErr, ok := err.(*ApiError); ok {
		return apiErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if resource == "" {
			resource = "Resource"
		}
		return NotFound(resource)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Unavailable()
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Unavailable()
	}

	return &ApiError{
		Code:    ErrorInternal,
		Message: "internal server error",
	}
}

func StatusCode(errorCode string) int {
	switch errorCode {
	case ErrorApiKeyRequired, ErrorApiKeyInvalid:
		return http.StatusUnauthorized
	case ErrorRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrorNotFound:
		return http.StatusNotFound
	case ErrorInvalidParameter:
		return http.StatusUnprocessableEntity
	case ErrorDuplicateKey:
		return http.StatusBadRequest
	case ErrorStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error body. Raw internal errors are
// never leaked; anything outside the taxonomy becomes a generic 500.
func Respond(ctx *gin.Context, err error) {
	apiErr, ok := err.(*ApiError)
	if !ok {
		apiErr = FromStore(err, "")
	}

	if apiErr.RetryAfterSec > 0 {
		ctx.Header("Retry-After", fmt.Sprintf("%d", apiErr.RetryAfterSec))
	}

	ctx.JSON(StatusCode(apiErr.Code), gin.H{
		"error": apiErr.Message,
		"code":  apiErr.Code,
	})
}
