package document

import (
	"errors"
	"strings"
)

// Validate checks the fields required to save a template. Parse and build
// anomalies are never errors; only missing required fields reject a save.
// All violations are reported together via errors.Join.
func Validate(t *Template) error {
	var errs []error

	if strings.TrimSpace(t.Key) == "" {
		errs = append(errs, ErrMissingKey)
	}
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, ErrMissingName)
	}
	if strings.TrimSpace(t.Subject) == "" {
		errs = append(errs, ErrMissingSubject)
	}
	if strings.TrimSpace(t.MarkdownSource) == "" {
		errs = append(errs, ErrEmptyBody)
	}

	return errors.Join(errs...)
}
