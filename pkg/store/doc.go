// Package store persists canonical email templates.
//
// The Store interface is the engine's only persistence boundary. Three
// implementations ship with the module: an in-memory store for tests and
// single-process editors, a PostgreSQL store (pgx) for production, and a
// Redis store for ephemeral drafts.
//
// Legacy template shapes (`data` vs `template_data` payloads, `key` vs
// `template_key` identifiers) are mapped onto the canonical shape by
// Normalize, exactly once, at this boundary. Nothing past the store ever
// branches on storage shape.
package store
