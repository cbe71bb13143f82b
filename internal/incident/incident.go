// Package incident carries internal error reports out of the request path.
//
// The HTTP layer only shows callers an opaque reference. Each report published
// here holds that reference next to the real cause, so operators can search
// logs by the value a caller quotes to support.
package incident

import (
	"context"
	"time"

	"github.com/shandysiswandi/wsgate/internal/pkg/pkgerror"
)

// Incident is one internal error returned to a caller.
type Incident struct {
	Reference     string
	Code          int
	Status        int
	Route         string
	CorrelationID string
	Cause         string
	OccurredAt    time.Time
}

// Handler processes incidents taken from the bus.
type Handler interface {
	Handle(ctx context.Context, in Incident) error
}

// FromError builds an Incident from a service error.
func FromError(err *pkgerror.Error, route, correlationID string, at time.Time) Incident {
	cause := ""
	if inner := err.Unwrap(); inner != nil {
		cause = inner.Error()
	}

	return Incident{
		Reference:     err.Reference(),
		Code:          err.Code(),
		Status:        err.StatusCode(),
		Route:         route,
		CorrelationID: correlationID,
		Cause:         cause,
		OccurredAt:    at,
	}
}
