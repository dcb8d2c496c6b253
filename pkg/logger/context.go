package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type templateKeyCtx struct{}

// WithTemplateKey stores a template key in the context for log enrichment.
func WithTemplateKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, templateKeyCtx{}, key)
}

// TemplateKeyExtractor emits the template key stored via WithTemplateKey.
func TemplateKeyExtractor(ctx context.Context) (slog.Attr, bool) {
	key, ok := ctx.Value(templateKeyCtx{}).(string)
	if !ok || key == "" {
		return slog.Attr{}, false
	}
	return slog.String("template_key", key), true
}

// extractorHandler wraps a slog.Handler and injects context-extracted
// attributes during logging. Extraction runs per log call so fresh
// request-scoped values are captured.
type extractorHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// newExtractorHandler filters nil extractors so misconfigured options
// cannot panic at log time.
func newExtractorHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &extractorHandler{next: next, extractors: clean}
}

func (h *extractorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *extractorHandler) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.extractors) == 0 {
		return h.next.Handle(ctx, rec)
	}
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *extractorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &extractorHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *extractorHandler) WithGroup(name string) slog.Handler {
	return &extractorHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
