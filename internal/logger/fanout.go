package logger

import (
	"context"
	"errors"
	"log/slog"
)

// fanoutHandler duplicates every record to each target handler. Records are
// cloned per target so a handler cannot mutate what another one sees.
type fanoutHandler struct {
	targets []slog.Handler
}

func newFanoutHandler(targets ...slog.Handler) *fanoutHandler {
	kept := make([]slog.Handler, 0, len(targets))
	for _, t := range targets {
		if t != nil {
			kept = append(kept, t)
		}
	}
	return &fanoutHandler{targets: kept}
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, t := range h.targets {
		if t.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, t := range h.targets {
		if !t.Enabled(ctx, r.Level) {
			continue
		}
		if err := t.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, 0, len(h.targets))
	for _, t := range h.targets {
		next = append(next, t.WithAttrs(attrs))
	}
	return &fanoutHandler{targets: next}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, 0, len(h.targets))
	for _, t := range h.targets {
		next = append(next, t.WithGroup(name))
	}
	return &fanoutHandler{targets: next}
}
