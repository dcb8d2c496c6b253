package document

import "errors"

var (
	// ErrMissingKey indicates a template without a template key.
	ErrMissingKey = errors.New("template must have a key")

	// ErrMissingName indicates a template without a display name.
	ErrMissingName = errors.New("template must have a name")

	// ErrMissingSubject indicates a template without a subject line.
	ErrMissingSubject = errors.New("template must have a subject")

	// ErrEmptyBody indicates a template whose markdown source is empty.
	ErrEmptyBody = errors.New("template body must not be empty")
)
