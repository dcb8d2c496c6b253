package document

import (
	"fmt"
	"strings"
)

// Reconstruct renders a structured document back to canonical markdown for
// editing. The output is semantically equivalent to the source the document
// was built from, not byte-identical: paragraphs are separated by single
// blank lines, highlight content collapses to one line, and the
// call-to-action is emitted as a button directive.
//
// Building the reconstruction again yields the same document, so repeated
// open/save cycles do not drift.
func Reconstruct(doc Document) string {
	var blocks []string

	if doc.Salutation != "" {
		blocks = append(blocks, doc.Salutation)
	}
	blocks = append(blocks, doc.Paragraphs...)

	if doc.Highlight != nil {
		blocks = append(blocks, reconstructHighlight(doc.Highlight))
	}

	blocks = append(blocks, doc.ClosingParagraphs...)

	if doc.CTA != nil {
		blocks = append(blocks, fmt.Sprintf("[%s](%s){.button}", doc.CTA.Text, doc.CTA.URL))
	}

	return strings.Join(blocks, "\n\n")
}

func reconstructHighlight(h *Highlight) string {
	var lines []string
	lines = append(lines, "---")
	if h.Title != "" {
		lines = append(lines, "**"+h.Title+"**")
	}
	if h.Content != "" {
		lines = append(lines, h.Content)
	}
	for _, bp := range h.BulletPoints {
		lines = append(lines, "- "+bp)
	}
	lines = append(lines, "---")
	return strings.Join(lines, "\n")
}
