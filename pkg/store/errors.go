package store

import "errors"

var (
	// ErrNotFound indicates no template is stored under the given key.
	ErrNotFound = errors.New("template not found")

	// ErrDuplicateKey indicates a create with an already-taken key.
	ErrDuplicateKey = errors.New("template key already exists")

	// ErrKeyMismatch indicates an update whose template carries a different
	// key than the one addressed; template keys are immutable.
	ErrKeyMismatch = errors.New("template key is immutable")

	// ErrInvalidShape indicates a legacy payload that cannot be mapped onto
	// the canonical template shape.
	ErrInvalidShape = errors.New("unrecognized template shape")
)
