// Package clients provides the resilient HTTP client used for outbound
// calls, currently the Discord membership lookup in clients/acl.
package clients

import "errors"

// Transport-level failures. Callers in acl translate them into domain
// errors; handlers never see these directly.
var (
	// ErrCircuitOpen is returned without a network call while the breaker
	// is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure once every attempt is
	// spent.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")

	// ErrDownstream marks a 5xx or 429 answer.
	ErrDownstream = errors.New("downstream error")
)
