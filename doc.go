// Package maildraft is an email template engine: a bidirectional bridge
// between an editable markdown dialect and a structured document model,
// with variable substitution and debounced live preview.
//
// # The markdown dialect
//
// Templates are written in plain markdown extended with two constructs: a
// highlight block fenced by `---` delimiters, and a button directive
// `[Label](https://example.com){.button}` that renders as a styled link.
// An optional YAML frontmatter carries the subject and signature fields.
//
// # Pipeline
//
// Engine ties the stages together: tokenize the source, build the
// structured document, extract variables, render HTML inside the email
// layout shell, and substitute variable values:
//
//	engine := maildraft.New()
//	draft := engine.ParseDraft(src)
//	html, err := engine.RenderPreview(src, map[string]string{"user_name": "Jane"})
//
// The subpackages are usable on their own: pkg/tokenizer and pkg/document
// for the model, pkg/render for HTML output, pkg/preview for the debounced
// editor loop, pkg/store for persistence, and pkg/sender for test
// deliveries.
package maildraft
