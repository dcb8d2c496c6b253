package preview

import (
	"log/slog"
	"time"
)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithDebounce sets the quiet period after the last edit before a render
// starts. Default: 500ms.
func WithDebounce(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithLogger sets the logger for render failures. Default: slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Scheduler) {
		if log != nil {
			s.log = log
		}
	}
}

// WithPlaceholder sets the HTML published when a render fails.
// Default: empty string.
func WithPlaceholder(html string) Option {
	return func(s *Scheduler) {
		s.placeholder = html
	}
}
