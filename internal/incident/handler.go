package incident

import (
	"context"
	"errors"
	"log/slog"
)

// LogHandler writes each incident as an ERROR record on logger.
type LogHandler struct {
	logger *slog.Logger
}

// NewLogHandler returns a LogHandler; a nil logger means slog.Default().
func NewLogHandler(logger *slog.Logger) *LogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogHandler{logger: logger}
}

func (h *LogHandler) Handle(ctx context.Context, in Incident) error {
	if in.Reference == "" {
		return errors.New("incident without reference")
	}

	h.logger.ErrorContext(ctx, "incident",
		"reference", in.Reference,
		"code", in.Code,
		"status", in.Status,
		"route", in.Route,
		"cid", in.CorrelationID,
		"cause", in.Cause,
		"occurred_at", in.OccurredAt,
	)
	return nil
}
