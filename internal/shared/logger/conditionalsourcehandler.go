package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	handler          slog.Handler
	showSourceLevels map[slog.Level]bool
}

// NewConditionalSourceHandler wraps a handler to show source location only
// for the given levels. Warn/error records carry the call site; routine info
// output stays compact.
func NewConditionalSourceHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	showSourceLevels := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		showSourceLevels[level] = true
	}
	return &conditionalSourceHandler{
		handler:          handler,
		showSourceLevels: showSourceLevels,
	}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.showSourceLevels[record.Level] && record.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{record.PC})
		frame, _ := fs.Next()
		if frame.File != "" {
			record.AddAttrs(slog.Attr{
				Key: slog.SourceKey,
				Value: slog.AnyValue(&slog.Source{
					Function: frame.Function,
					File:     frame.File,
					Line:     frame.Line,
				}),
			})
		}
	}
	return h.handler.Handle(ctx, record)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{
		handler:          h.handler.WithAttrs(attrs),
		showSourceLevels: h.showSourceLevels,
	}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{
		handler:          h.handler.WithGroup(name),
		showSourceLevels: h.showSourceLevels,
	}
}
