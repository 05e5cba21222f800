package logging

import (
	"context"
	"errors"
	"log/slog"
)

// sink is one destination of a Tee with its own minimum level.
type sink struct {
	handler slog.Handler
	level   slog.Leveler
}

// Tee fans each record out to several handlers, so the terminal and the
// rolling file can log side by side. A sink added with AddSink only sees
// records at or above its own level, on top of its handler's filtering.
type Tee struct {
	sinks []sink
}

// NewTee creates a Tee over handlers, each filtering by its own options.
func NewTee(handlers ...slog.Handler) *Tee {
	t := &Tee{}
	for _, h := range handlers {
		t.sinks = append(t.sinks, sink{handler: h})
	}

	return t
}

// AddSink appends h, dropping records below level before they reach it.
func (t *Tee) AddSink(h slog.Handler, level slog.Leveler) *Tee {
	t.sinks = append(t.sinks, sink{handler: h, level: level})
	return t
}

func (s sink) enabled(ctx context.Context, level slog.Level) bool {
	if s.level != nil && level < s.level.Level() {
		return false
	}

	return s.handler.Enabled(ctx, level)
}

// Enabled reports whether any sink wants records at level.
func (t *Tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range t.sinks {
		if s.enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle writes r to every interested sink and joins their errors.
func (t *Tee) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	var errs []error

	for _, s := range t.sinks {
		if !s.enabled(ctx, r.Level) {
			continue
		}

		if err := s.handler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// WithAttrs implements slog.Handler.
func (t *Tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.derive(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

// WithGroup implements slog.Handler.
func (t *Tee) WithGroup(name string) slog.Handler {
	return t.derive(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t *Tee) derive(fn func(slog.Handler) slog.Handler) *Tee {
	next := &Tee{sinks: make([]sink, len(t.sinks))}
	for i, s := range t.sinks {
		next.sinks[i] = sink{handler: fn(s.handler), level: s.level}
	}

	return next
}
