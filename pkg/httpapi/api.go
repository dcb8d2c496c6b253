package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/maildraft"
	"github.com/dmitrymomot/maildraft/pkg/health"
	"github.com/dmitrymomot/maildraft/pkg/htmlimport"
	"github.com/dmitrymomot/maildraft/pkg/logger"
	"github.com/dmitrymomot/maildraft/pkg/store"
)

// Handler serves the template editor API.
type Handler struct {
	engine    *maildraft.Engine
	templates store.Store
	importer  *htmlimport.Importer
	checks    health.Checks
	log       *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithHealthChecks adds dependency checks served at /healthz.
func WithHealthChecks(checks health.Checks) Option {
	return func(h *Handler) {
		h.checks = checks
	}
}

// New creates a Handler backed by the given engine and store.
func New(engine *maildraft.Engine, templates store.Store, opts ...Option) *Handler {
	h := &Handler{
		engine:    engine,
		templates: templates,
		importer:  htmlimport.New(),
		log:       logger.NewNope(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router builds the chi router with all routes mounted.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/templates", func(r chi.Router) {
		r.Post("/", h.createTemplate)
		r.Get("/", h.listTemplates)
		r.Post("/import", h.importTemplate)
		r.Route("/{key}", func(r chi.Router) {
			r.Get("/", h.getTemplate)
			r.Put("/", h.updateTemplate)
			r.Delete("/", h.deleteTemplate)
			r.Post("/send-test", h.sendTest)
		})
	})
	r.Post("/preview", h.renderPreview)
	r.Post("/import/html", h.importHTML)
	r.Get("/healthz", health.Handler(h.checks))

	return r
}
