package incident

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/wsgate/internal/pkg/pkgerror"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkglog"
)

// DropObserver counts reports that could not be queued.
type DropObserver interface {
	ObserveDroppedIncident()
}

// Reporter publishes service errors to a Bus. It satisfies pkgrouter.Reporter.
type Reporter struct {
	bus      *Bus
	observer DropObserver
	now      func() time.Time
}

func NewReporter(bus *Bus, observer DropObserver) *Reporter {
	return &Reporter{bus: bus, observer: observer, now: time.Now}
}

func (r *Reporter) Report(ctx context.Context, err *pkgerror.Error, route string) {
	cid, _ := pkglog.CorrelationID(ctx)
	in := FromError(err, route, cid, r.now())

	if pubErr := r.bus.Publish(in); pubErr != nil {
		if r.observer != nil {
			r.observer.ObserveDroppedIncident()
		}
		level := slog.LevelWarn
		if errors.Is(pubErr, ErrBusClosed) {
			level = slog.LevelInfo
		}
		slog.Log(ctx, level, "incident dropped", "reference", in.Reference, "because", pubErr)
	}
}
