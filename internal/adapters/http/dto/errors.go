// Package dto holds the JSON request and response shapes of the HTTP API and
// the helpers that bind, validate and render them.
package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/platform/logging"
	"github.com/hearsayhub/hearsay-hub/internal/platform/telemetry"
)

// ErrorResponse is the envelope of every error response.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail carries a machine-readable code and, for validation failures,
// per-field messages.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Error codes.
const (
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeConflict     = "CONFLICT"
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeForbidden    = "FORBIDDEN"
	ErrorCodeUnauthorized = "UNAUTHORIZED"
	ErrorCodeUnavailable  = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal     = "INTERNAL_ERROR"
	ErrorCodeTimeout      = "TIMEOUT"
	ErrorCodeBadRequest   = "BAD_REQUEST"
)

const internalMessage = "an internal error occurred"

// NewErrorResponse creates an error envelope.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// WithTraceID sets the trace id and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeUnavailable, ErrorCodeTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FromError maps err onto an error code and envelope. Errors outside the
// domain taxonomy get a generic message so internals do not leak.
func FromError(err error) *ErrorResponse {
	var (
		validationErr *domain.ValidationError
		fieldErrs     validator.ValidationErrors
	)

	switch {
	case errors.As(err, &fieldErrs):
		resp := NewErrorResponse(ErrorCodeValidation, "request validation failed")
		resp.Error.Details = ValidationErrors(fieldErrs)

		return resp
	case errors.Is(err, ErrBinding):
		return NewErrorResponse(ErrorCodeBadRequest, err.Error())
	case errors.As(err, &validationErr):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())
		if validationErr.Field != "" {
			resp.Error.Details = map[string]string{validationErr.Field: validationErr.Message}
		}

		return resp
	}

	code, ok := kindCodes[domain.KindOf(err)]
	if !ok {
		return NewErrorResponse(ErrorCodeInternal, internalMessage)
	}

	return NewErrorResponse(code, err.Error())
}

var kindCodes = map[error]string{
	domain.ErrNotFound:    ErrorCodeNotFound,
	domain.ErrConflict:    ErrorCodeConflict,
	domain.ErrValidation:  ErrorCodeValidation,
	domain.ErrForbidden:   ErrorCodeForbidden,
	domain.ErrUnavailable: ErrorCodeUnavailable,
}

// GetTraceID returns the trace id of the request span, or "".
func GetTraceID(c *gin.Context) string {
	return telemetry.TraceID(c.Request.Context())
}

// HandleError renders err and aborts the chain. Internal errors are logged
// with their full text.
func HandleError(c *gin.Context, err error) {
	resp := FromError(err).WithTraceID(GetTraceID(c))

	status := HTTPStatusFromCode(resp.Error.Code)
	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			"error", err.Error(),
			"path", c.FullPath(),
		)
	}

	c.AbortWithStatusJSON(status, resp)
}

// Abort renders an adapter-level error that has no domain counterpart.
func Abort(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}
