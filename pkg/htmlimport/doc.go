// Package htmlimport converts legacy stored HTML email bodies back to
// editable markdown.
//
// Older template variants persisted rendered HTML instead of markdown
// source. The importer is an explicit reverse tokenizer: it sanitizes the
// input with bluemonday, walks the surviving element subset, and emits the
// same token vocabulary the forward tokenizer produces: headings, bold
// lines, bullet items, delimiters, the button directive, and plain text.
// Re-tokenizing the importer's markdown output therefore classifies every
// line identically, which keeps the conversion composable and testable
// against the forward path instead of relying on chained substring
// replacements.
//
// The conversion is lossy by design: layout shells, styling, and unknown
// markup are dropped, and only the semantic document structure survives.
package htmlimport
