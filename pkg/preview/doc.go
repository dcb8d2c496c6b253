// Package preview schedules live-preview renders while the author types.
//
// The scheduler debounces edit events: each edit restarts a quiet-period
// timer, and only when the author pauses does the render pipeline run. Every
// edit advances a sequence number, and a render result is published only if
// no newer edit arrived after that render started; a superseded render is
// discarded silently, so a stale preview is never shown.
//
//	s := preview.New(renderFn, publishFn,
//	    preview.WithDebounce(500*time.Millisecond),
//	)
//	defer s.Close()
//
//	s.Edit(draft1) // restarts the timer
//	s.Edit(draft2) // draft1 render is never published
//
// Render errors never reach the editing surface: they are logged and a
// placeholder is published instead, since the preview is advisory.
//
// Remote delegates rendering to a backend preview endpoint with the same
// staleness discipline, deduplicating concurrent identical drafts.
package preview
