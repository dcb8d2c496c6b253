package render

import (
	"bytes"
	"errors"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/dmitrymomot/maildraft/pkg/document"
	"github.com/dmitrymomot/maildraft/pkg/tokenizer"
)

// Renderer converts template markup to HTML wrapped in the email shell.
// Construct it with New; all behavior comes from the explicit Config, never
// from package-level state.
type Renderer struct {
	md  goldmark.Markdown
	cfg Config
}

// New creates a renderer with the given shell configuration.
func New(cfg Config) *Renderer {
	return &Renderer{
		cfg: cfg,
		md: goldmark.New(
			goldmark.WithExtensions(NewButtonExtension()),
		),
	}
}

// RenderSource converts raw markdown source to shell-wrapped HTML. The
// button directive is consumed by the button extension before generic link
// rules run, so it renders as a styled anchor, never as a plain link.
func (r *Renderer) RenderSource(src string) (string, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(src), &body); err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}
	return r.wrap(body.String())
}

// RenderDocument converts a stored structured document to shell-wrapped
// HTML. The document is first rendered to its canonical markdown so both
// paths share one conversion pipeline and cannot drift apart.
func (r *Renderer) RenderDocument(doc document.Document) (string, error) {
	return r.RenderSource(document.Reconstruct(doc))
}

// RenderTokens converts an already-tokenized edit buffer. The preview path
// tokenizes once for the variable scan and reuses the same tokens here.
func (r *Renderer) RenderTokens(tokens []tokenizer.Token) (string, error) {
	lines := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		lines = append(lines, tok.Line())
	}
	return r.RenderSource(strings.Join(lines, "\n"))
}

// wrap executes the fixed layout shell around converted body HTML.
func (r *Renderer) wrap(body string) (string, error) {
	var out bytes.Buffer
	err := layoutTmpl.Execute(&out, map[string]any{
		"CSS":         template.CSS(layoutCSS),
		"Content":     template.HTML(body),
		"HeaderTitle": r.cfg.HeaderTitle,
		"FooterText":  r.cfg.FooterText,
	})
	if err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}
	return out.String(), nil
}

