// Package document defines the canonical template document model and the
// builder that derives it from a token stream.
//
// A template has two representations: the raw markdown source the author
// edits, and a structured document (salutation, body paragraphs, an optional
// highlight block, closing paragraphs, call-to-action, sender metadata)
// derived from it. The markdown source is the sole editable source of truth;
// the structured form is a projection that is always reconstructible from it.
//
// # Building
//
// Build runs a three-state machine (body, highlight, closing) over the token
// stream produced by pkg/tokenizer:
//
//	doc := document.Build(tokenizer.Tokenize(src))
//
// Building is best-effort grouping, not validation: it never fails, and
// malformed input yields an empty or partially-filled document. Save-time
// validation is a separate step (Validate).
//
// # Round trips
//
// Reconstruct renders a document back to canonical markdown. Parsing that
// reconstruction produces the same document again, so stored templates can be
// reopened for editing without drifting. Byte-identical round trips of the
// original source are not a goal; semantic equivalence is.
//
// # Frontmatter
//
// A markdown source may open with a YAML frontmatter block carrying subject
// and sender metadata. ParseSource splits it off so the tokenizer only ever
// sees the body below it. Frontmatter parsing is as forgiving as the rest of
// the package: anything that is not a well-formed frontmatter block is body.
package document
