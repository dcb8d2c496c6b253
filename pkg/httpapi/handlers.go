package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/maildraft"
	"github.com/dmitrymomot/maildraft/pkg/document"
	"github.com/dmitrymomot/maildraft/pkg/logger"
	"github.com/dmitrymomot/maildraft/pkg/store"
)

type templateRequest struct {
	Name           string `json:"name"`
	MarkdownSource string `json:"markdown_source"`
}

type previewRequest struct {
	MarkdownSource string            `json:"markdown_source"`
	VariableValues map[string]string `json:"variable_values"`
}

type previewResponse struct {
	HTML string `json:"html"`
}

type sendTestRequest struct {
	To             string            `json:"to"`
	VariableValues map[string]string `json:"variable_values"`
}

type importHTMLRequest struct {
	HTML string `json:"html"`
}

type importHTMLResponse struct {
	MarkdownSource string `json:"markdown_source"`
}

func (h *Handler) createTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, err)
		return
	}

	tmpl, err := h.engine.BuildTemplate(req.Name, req.MarkdownSource)
	if err != nil {
		h.respondError(w, r, http.StatusUnprocessableEntity, err)
		return
	}

	ctx := logger.WithTemplateKey(r.Context(), tmpl.Key)
	if err := h.templates.Create(ctx, tmpl); err != nil {
		h.respondStoreError(w, r.WithContext(ctx), err)
		return
	}

	h.log.InfoContext(ctx, "template created")
	h.respondJSON(w, http.StatusCreated, tmpl)
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	all, err := h.templates.List(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	if all == nil {
		all = []*document.Template{}
	}
	h.respondJSON(w, http.StatusOK, all)
}

func (h *Handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.templates.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, tmpl)
}

func (h *Handler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, err)
		return
	}

	// The key survives edits; only the content is rebuilt.
	draft := h.engine.ParseDraft(req.MarkdownSource)
	tmpl := &document.Template{
		Key:            key,
		Name:           req.Name,
		Subject:        draft.Meta.Subject,
		MarkdownSource: draft.Body,
		Structured:     draft.Document,
		Variables:      draft.Variables,
	}
	if err := document.Validate(tmpl); err != nil {
		h.respondError(w, r, http.StatusUnprocessableEntity, err)
		return
	}

	ctx := logger.WithTemplateKey(r.Context(), key)
	if err := h.templates.Update(ctx, key, tmpl); err != nil {
		h.respondStoreError(w, r.WithContext(ctx), err)
		return
	}

	h.log.InfoContext(ctx, "template updated")
	h.respondJSON(w, http.StatusOK, tmpl)
}

func (h *Handler) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	ctx := logger.WithTemplateKey(r.Context(), key)

	if err := h.templates.Delete(ctx, key); err != nil {
		h.respondStoreError(w, r.WithContext(ctx), err)
		return
	}

	h.log.InfoContext(ctx, "template deleted")
	w.WriteHeader(http.StatusNoContent)
}

// importTemplate accepts a raw legacy payload and maps it onto the
// canonical shape before storing.
func (h *Handler) importTemplate(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.respondError(w, r, http.StatusBadRequest, err)
		return
	}

	tmpl, err := store.Normalize(raw)
	if err != nil {
		h.respondError(w, r, http.StatusUnprocessableEntity, err)
		return
	}

	ctx := logger.WithTemplateKey(r.Context(), tmpl.Key)
	if err := h.templates.Create(ctx, tmpl); err != nil {
		h.respondStoreError(w, r.WithContext(ctx), err)
		return
	}

	h.log.InfoContext(ctx, "legacy template imported")
	h.respondJSON(w, http.StatusCreated, tmpl)
}

func (h *Handler) sendTest(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req sendTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, err)
		return
	}

	ctx := logger.WithTemplateKey(r.Context(), key)
	tmpl, err := h.templates.Get(ctx, key)
	if err != nil {
		h.respondStoreError(w, r.WithContext(ctx), err)
		return
	}

	if err := h.engine.SendTest(ctx, tmpl, req.VariableValues, req.To); err != nil {
		code := http.StatusBadGateway
		if errors.Is(err, maildraft.ErrNoSender) {
			code = http.StatusNotImplemented
		}
		h.respondError(w, r.WithContext(ctx), code, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) renderPreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, err)
		return
	}

	html, err := h.engine.RenderPreview(req.MarkdownSource, req.VariableValues)
	if err != nil {
		h.respondError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	h.respondJSON(w, http.StatusOK, previewResponse{HTML: html})
}

func (h *Handler) importHTML(w http.ResponseWriter, r *http.Request) {
	var req importHTMLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, err)
		return
	}
	h.respondJSON(w, http.StatusOK, importHTMLResponse{
		MarkdownSource: h.importer.Markdown(req.HTML),
	})
}
