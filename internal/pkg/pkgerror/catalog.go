package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// ErrUnknownKind is the panic value (wrapped) raised when a kind has no entry.
var ErrUnknownKind = errors.New("kind not registered in error catalogue")

// Entry is the catalogue record of a Kind.
type Entry struct {
	Status   int
	Template string
}

// UnauthorizedUser and UnprocessableEntity are intentionally absent: the
// former is reserved, the latter only travels through NewBusinessError.
//
//nolint:gochecknoglobals // built once, read-only afterwards
var catalog = sync.OnceValue(func() map[Kind]Entry {
	return map[Kind]Entry{
		RequiredParameter:       {Status: http.StatusBadRequest, Template: "Parameter {0} required"},
		InvalidParameter:        {Status: http.StatusBadRequest, Template: "Parameter {0} invalid"},
		InternalWebError:        {Status: http.StatusInternalServerError, Template: "Internal error. Ref={0}"},
		InternalEngineError:     {Status: http.StatusInternalServerError, Template: "Internal error. Ref={0}"},
		InvalidCredentials:      {Status: http.StatusUnauthorized, Template: "Invalid credentials"},
		UnauthorizedEnvironment: {Status: http.StatusForbidden, Template: "Environment not authorized"},
		UnauthorizedProtocol:    {Status: http.StatusForbidden, Template: "Protocol {0} not authorized"},
		UnauthorizedEndpoint:    {Status: http.StatusForbidden, Template: "Access {0} not authorized"},
		ServiceDisabled:         {Status: http.StatusForbidden, Template: "Service {0} not authorized"},
		UnauthorizedIP:          {Status: http.StatusForbidden, Template: "Origin not authorized"},
		RateLimitExceeded:       {Status: http.StatusTooManyRequests, Template: "Concurrency limit exceeded"},
	}
})

// Lookup returns the catalogue entry of kind.
//
// It panics when kind is not registered: call sites and the catalogue are out
// of sync and that must not be papered over at runtime.
func Lookup(kind Kind) Entry {
	entry, ok := catalog()[kind]
	if !ok {
		panic(fmt.Errorf("%w: %s (E%02d)", ErrUnknownKind, kind, kind.Code()))
	}
	return entry
}

// Registered reports whether kind has a catalogue entry.
func Registered(kind Kind) bool {
	_, ok := catalog()[kind]
	return ok
}

// FormatMessage renders the template of kind with args and prefixes the code,
// e.g. FormatMessage(RequiredParameter, "id") = "(E01) Parameter id required".
//
// The number of args must match the template slots exactly. Lookup rules
// apply, so an unregistered kind panics.
func FormatMessage(kind Kind, args ...any) (string, error) {
	entry := Lookup(kind)

	text, err := substitute(entry.Template, args)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", kind, err)
	}

	return prefix(kind.Code()) + text, nil
}
