package preview

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RenderFunc produces preview HTML for a draft source. The context is
// canceled when the scheduler closes.
type RenderFunc func(ctx context.Context, src string) (string, error)

// PublishFunc receives the HTML for the most recent completed render. It is
// called from the scheduler's timer goroutine, serialized with edits; keep
// it fast and never call back into the scheduler from it.
type PublishFunc func(html string)

// Scheduler debounces edit events and guarantees only the most recent
// render is ever published. Renders superseded by a newer edit are
// discarded silently.
type Scheduler struct {
	render      RenderFunc
	publish     PublishFunc
	log         *slog.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	timer       *time.Timer
	placeholder string
	debounce    time.Duration
	seq         uint64
	src         string
	wg          sync.WaitGroup
	mu          sync.Mutex
	closed      bool
}

// New creates a scheduler. render runs the Tokenizer→Renderer→Substitution
// pipeline (or delegates to a Remote); publish displays the result.
func New(render RenderFunc, publish PublishFunc, opts ...Option) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		render:   render,
		publish:  publish,
		log:      slog.Default(),
		ctx:      ctx,
		cancel:   cancel,
		debounce: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Edit records a new draft and restarts the debounce timer. Any pending
// timer is canceled: rapid successive edits collapse into one render.
func (s *Scheduler) Edit(src string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.seq++
	s.src = src

	// Stop returning true means the pending callback was canceled before it
	// ran; release its WaitGroup slot here.
	if s.timer != nil && s.timer.Stop() {
		s.wg.Done()
	}

	seq := s.seq
	s.wg.Add(1)
	s.timer = time.AfterFunc(s.debounce, func() {
		defer s.wg.Done()
		s.fire(seq)
	})
}

// Flush runs any pending render immediately instead of waiting out the
// debounce window.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	if s.closed || s.timer == nil {
		s.mu.Unlock()
		return
	}
	fired := s.timer.Stop()
	seq := s.seq
	s.mu.Unlock()

	// If Stop returned false the timer callback already started and will
	// render on its own; firing here too would double-count the WaitGroup.
	if fired {
		defer s.wg.Done()
		s.fire(seq)
	}
}

// Close cancels any pending timer and in-flight render and waits for the
// timer goroutine to finish. No publish happens after Close returns.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.timer != nil && s.timer.Stop() {
		s.wg.Done()
	}
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
}

// fire renders the draft at seq and publishes the result unless a newer
// edit arrived in the meantime.
func (s *Scheduler) fire(seq uint64) {
	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		return
	}
	src := s.src
	s.mu.Unlock()

	html, err := s.render(s.ctx, src)
	if err != nil {
		// Preview is advisory: log and fall back to the placeholder, never
		// surface the failure to the editing surface.
		s.log.ErrorContext(s.ctx, "preview render failed", slog.String("error", err.Error()))
		html = s.placeholder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The render may have been superseded while it was running; a stale
	// result must never be shown after a newer edit.
	if s.closed || seq != s.seq {
		return
	}
	s.publish(html)
}
