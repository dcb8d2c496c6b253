package store

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrymomot/maildraft/pkg/document"
)

// Memory is a mutex-guarded in-memory Store for tests and single-process
// editors. Templates are deep-copied on the way in and out so callers can
// never mutate stored state through shared slices.
type Memory struct {
	items map[string]*document.Template
	mu    sync.RWMutex
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]*document.Template)}
}

// Create stores a new template.
func (m *Memory) Create(_ context.Context, tmpl *document.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[tmpl.Key]; ok {
		return ErrDuplicateKey
	}
	m.items[tmpl.Key] = tmpl.Clone()
	return nil
}

// Update replaces the template stored under key.
func (m *Memory) Update(_ context.Context, key string, tmpl *document.Template) error {
	if tmpl.Key != key {
		return ErrKeyMismatch
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[key]; !ok {
		return ErrNotFound
	}
	m.items[key] = tmpl.Clone()
	return nil
}

// Get returns the template stored under key.
func (m *Memory) Get(_ context.Context, key string) (*document.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tmpl, ok := m.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	return tmpl.Clone(), nil
}

// Delete removes the template stored under key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[key]; !ok {
		return ErrNotFound
	}
	delete(m.items, key)
	return nil
}

// List returns all templates ordered by key.
func (m *Memory) List(_ context.Context) ([]*document.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*document.Template, 0, len(m.items))
	for _, tmpl := range m.items {
		out = append(out, tmpl.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
