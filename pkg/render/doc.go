// Package render converts template markup to email-safe HTML and fills in
// variable values.
//
// Markdown conversion is done with goldmark extended by a call-to-action
// button parser: a full line of the form
//
//	[Label](https://example.com){.button}
//
// renders as a styled anchor element. The button parser runs ahead of
// goldmark's generic link parser, so the same syntax is never double-matched
// as a plain link.
//
// The converted body is wrapped in a fixed email-safe layout shell with a
// header, content, and footer region. The shell's CSS is a static constant;
// per-instance behavior is controlled only through the Config object passed
// to New; there is no package-level renderer state.
//
// Substitute performs the final variable pass over rendered HTML. It is a
// flat string replacement: tokens with no supplied value are left intact so
// the author can see which variables remain unfilled.
package render
