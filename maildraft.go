package maildraft

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/maildraft/pkg/document"
	"github.com/dmitrymomot/maildraft/pkg/logger"
	"github.com/dmitrymomot/maildraft/pkg/render"
	"github.com/dmitrymomot/maildraft/pkg/sender"
	"github.com/dmitrymomot/maildraft/pkg/store"
	"github.com/dmitrymomot/maildraft/pkg/tokenizer"
	"github.com/dmitrymomot/maildraft/pkg/variables"
)

// ErrNoSender indicates a test delivery was requested without a configured
// delivery provider.
var ErrNoSender = errors.New("no sender configured")

// Engine combines the tokenizer, document builder, variable extractor, and
// renderer behind the operations an editor needs.
type Engine struct {
	renderer *render.Renderer
	sender   sender.Sender
	log      *slog.Logger
}

// New creates an Engine with the default layout shell.
func New(opts ...Option) *Engine {
	e := &Engine{
		renderer: render.New(render.Config{}),
		log:      logger.NewNope(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Draft is the parse result for a markdown source: the frontmatter
// metadata, the structured document built from the body, and the variables
// the source references.
type Draft struct {
	Meta      document.Meta
	Document  document.Document
	Body      string
	Variables []string
	Syntax    variables.Syntax
}

// ParseDraft parses a markdown source into a Draft. Parsing never fails:
// malformed frontmatter is treated as body text and an empty source yields
// an empty draft.
func (e *Engine) ParseDraft(src string) Draft {
	meta, body := document.ParseSource(src)

	doc := document.Build(tokenizer.Tokenize(body))
	doc.SenderName = meta.SenderName
	doc.Signature = meta.Signature

	return Draft{
		Meta:      meta,
		Document:  doc,
		Body:      body,
		Variables: variables.Extract(body, meta.Subject),
		Syntax:    variables.Detect(body, meta.Subject),
	}
}

// RenderPreview renders a markdown source to layout-wrapped HTML with the
// given variable values substituted. Unknown tokens stay visible in the
// output, which is what an author editing a half-finished draft wants.
func (e *Engine) RenderPreview(src string, values map[string]string) (string, error) {
	meta, body := document.ParseSource(src)

	html, err := e.renderer.RenderSource(body)
	if err != nil {
		return "", err
	}
	return render.Substitute(html, variables.Detect(body, meta.Subject), values), nil
}

// BuildTemplate runs the full pipeline for saving: parse the source, build
// the structured document, extract variables, and validate the result. The
// template key is derived from the display name.
func (e *Engine) BuildTemplate(name, src string) (*document.Template, error) {
	draft := e.ParseDraft(src)

	tmpl := &document.Template{
		Key:            store.NewKey(name),
		Name:           name,
		Subject:        draft.Meta.Subject,
		MarkdownSource: draft.Body,
		Structured:     draft.Document,
		Variables:      draft.Variables,
	}
	if err := document.Validate(tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// SendTest renders a stored template with the given values and delivers it
// to a single recipient. Requires a sender configured via WithSender.
func (e *Engine) SendTest(ctx context.Context, tmpl *document.Template, values map[string]string, to string) error {
	if e.sender == nil {
		return ErrNoSender
	}

	html, err := e.renderer.RenderDocument(tmpl.Structured)
	if err != nil {
		return err
	}

	syntax := variables.Detect(tmpl.MarkdownSource, tmpl.Subject)
	email := &sender.Email{
		To:      []string{to},
		Subject: render.Substitute(tmpl.Subject, syntax, values),
		HTML:    render.Substitute(html, syntax, values),
		Tags:    map[string]string{"template_key": tmpl.Key},
	}

	ctx = logger.WithTemplateKey(ctx, tmpl.Key)
	if err := e.sender.Send(ctx, email); err != nil {
		e.log.ErrorContext(ctx, "test delivery failed", slog.String("error", err.Error()))
		return err
	}
	e.log.InfoContext(ctx, "test delivery sent", slog.String("to", to))
	return nil
}
