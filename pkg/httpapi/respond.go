package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/maildraft/pkg/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, code int, err error) {
	if code >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	}
	h.respondJSON(w, code, errorResponse{Error: err.Error()})
}

func (h *Handler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.respondError(w, r, http.StatusNotFound, err)
	case errors.Is(err, store.ErrDuplicateKey):
		h.respondError(w, r, http.StatusConflict, err)
	case errors.Is(err, store.ErrKeyMismatch), errors.Is(err, store.ErrInvalidShape):
		h.respondError(w, r, http.StatusUnprocessableEntity, err)
	default:
		h.respondError(w, r, http.StatusInternalServerError, err)
	}
}
