package maildraft

import (
	"log/slog"

	"github.com/dmitrymomot/maildraft/pkg/render"
	"github.com/dmitrymomot/maildraft/pkg/sender"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRenderConfig customizes the layout shell header and footer.
func WithRenderConfig(cfg render.Config) Option {
	return func(e *Engine) {
		e.renderer = render.New(cfg)
	}
}

// WithSender sets the delivery provider used by SendTest.
func WithSender(s sender.Sender) Option {
	return func(e *Engine) {
		e.sender = s
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}
