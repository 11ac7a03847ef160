package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind partitions every failure the client can observe.
type Kind int

const (
	// KindNetwork: the transport itself did not complete (DNS failure,
	// connection refused, aborted request). Status is always 0.
	KindNetwork Kind = iota

	// KindServerUnavailable: the response completed with status >= 500.
	// The body is not inspected; it may be a proxy's HTML error page.
	KindServerUnavailable

	// KindApplication: the envelope reported success=false, whatever the
	// numeric HTTP status was.
	KindApplication

	// KindUnknown: the response body could not be parsed as an envelope.
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServerUnavailable:
		return "server unavailable"
	case KindApplication:
		return "application"
	case KindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Error is the only error type consumers of this package observe.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status; 0 when the transport never completed
	Message string // human-readable, safe to show the user
	Code    string // optional machine error code from the envelope
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
}

// IsUnauthorized reports whether err is a classified error carrying HTTP 401
// from the application (or an unparseable 401 response). Only the session
// manager interprets this condition.
func IsUnauthorized(err error) bool {
	var ae *Error
	if !errors.As(err, &ae) {
		return false
	}
	if ae.Kind != KindApplication && ae.Kind != KindUnknown {
		return false
	}
	return ae.Status == http.StatusUnauthorized
}
