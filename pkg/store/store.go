package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/maildraft/pkg/document"
	"github.com/dmitrymomot/maildraft/pkg/slug"
)

// Store persists canonical templates. Save operations are single atomic
// requests; there is no partial persistence and no automatic retry, a
// failure propagates to the caller, who decides whether to prompt the user.
type Store interface {
	// Create stores a new template. Returns ErrDuplicateKey if the key is
	// already taken.
	Create(ctx context.Context, tmpl *document.Template) error

	// Update replaces the template stored under key. The template key is
	// immutable: tmpl.Key must equal key. Returns ErrNotFound for unknown
	// keys.
	Update(ctx context.Context, key string, tmpl *document.Template) error

	// Get returns the template stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (*document.Template, error)

	// Delete removes the template stored under key, or ErrNotFound.
	Delete(ctx context.Context, key string) error

	// List returns all templates ordered by key.
	List(ctx context.Context) ([]*document.Template, error)
}

// NewKey derives a template key from a display name: a readable slug plus a
// short random fragment so renamed copies never collide.
func NewKey(name string) string {
	s := slug.Make(name, slug.MaxLength(48))
	frag := uuid.NewString()[:8]
	if s == "" {
		return frag
	}
	return s + "-" + frag
}
