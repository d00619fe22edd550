package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a gateway failure so calling screens can react without
// string-matching: auth failures redirect to login, validation failures
// surface the server's message, everything else becomes a generic banner.
type Kind int

const (
	// KindTransport means no response was received at all.
	KindTransport Kind = iota + 1
	// KindAuth is a 401/403 from the backend (expired or invalid token).
	KindAuth
	// KindValidation is any other 4xx carrying a server-supplied message,
	// e.g. a duplicate booking conflict.
	KindValidation
	// KindServer is a 5xx.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// Error is a failed gateway call. The server's message is carried unchanged.
type Error struct {
	Kind     Kind
	Status   int
	Resource string
	Op       string
	Message  string
	cause    error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("gateway: %s %s: %s (status %d): %s", e.Resource, e.Op, e.Kind, e.Status, e.Message)
	}
	if e.cause != nil {
		return fmt.Sprintf("gateway: %s %s: %s: %v", e.Resource, e.Op, e.Kind, e.cause)
	}
	return fmt.Sprintf("gateway: %s %s: %s: %s", e.Resource, e.Op, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf returns the failure kind, or 0 when err is not a gateway error.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return 0
}

// IsAuth reports whether the backend rejected the caller's token.
func IsAuth(err error) bool { return KindOf(err) == KindAuth }

// IsValidation reports whether the backend rejected the request payload.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
