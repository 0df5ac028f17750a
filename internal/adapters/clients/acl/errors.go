package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/clients"
	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// ErrorResponse is the JSON error body Discord returns, e.g.
// {"code": 10007, "message": "Unknown Member"}.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Discord JSON error codes the adapters act on.
const (
	CodeUnknownGuild  = 10004
	CodeUnknownMember = 10007
	CodeUnknownUser   = 10013
	CodeMissingAccess = 50001
)

// ParseErrorResponse decodes an error body. It returns nil when the body is
// empty or not a Discord error.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.Code == 0 && errResp.Message == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError maps a failed call to a domain error. resp is nil when the
// client itself failed; clientErr is nil when a response arrived.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

// mapStatusCode treats every non-success answer as the downstream being
// unusable. Callers that give a 404 a meaning of their own check for it
// before calling MapHTTPError.
func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil && errResp.Message != "" {
		message = fmt.Sprintf("%s (code %d)", errResp.Message, errResp.Code)
	}

	return domain.NewUnavailableError(serviceName, message)
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusForbidden:
		return "access denied"
	case http.StatusUnauthorized:
		return "bot token rejected"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}
