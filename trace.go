package mast

import (
	"context"
	"log/slog"

	"github.com/KimNorgaard/go-mast/internal/builder"
)

// Step describes one successful decode step: the header check, or one node
// appended to a table.
type Step = builder.Step

// Tracer receives decode steps when the diagnostic trace is on.
type Tracer interface {
	Step(Step)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(Step)

// Step calls f(s).
func (f TracerFunc) Step(s Step) { f(s) }

// LogTracer returns a Tracer that writes one debug record per step to
// logger.
func LogTracer(logger *slog.Logger) Tracer {
	return &logTracer{logger: logger, level: slog.LevelDebug}
}

func defaultTracer() Tracer {
	return &logTracer{logger: slog.Default(), level: slog.LevelInfo}
}

type logTracer struct {
	logger *slog.Logger
	level  slog.Level
}

func (lt *logTracer) Step(s Step) {
	ctx := context.Background()
	if s.Header {
		lt.logger.LogAttrs(ctx, lt.level, "mast header",
			slog.Int64("offset", s.Offset),
			slog.Int64("consumed", s.Consumed),
		)
		return
	}
	attrs := []slog.Attr{
		slog.Int64("offset", s.Offset),
		slog.Int64("consumed", s.Consumed),
		slog.String("tag", s.Tag.String()),
	}
	if s.HasSubtag {
		attrs = append(attrs, slog.String("subtag", s.Subtag.String()))
	}
	attrs = append(attrs,
		slog.String("table", s.Table.String()),
		slog.Int("index", int(s.Index)),
		slog.String("stamp", s.Stamp),
	)
	lt.logger.LogAttrs(ctx, lt.level, "mast node", attrs...)
}
