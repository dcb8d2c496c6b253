package store

import (
	"encoding/json"
	"errors"

	"github.com/dmitrymomot/maildraft/pkg/document"
	"github.com/dmitrymomot/maildraft/pkg/variables"
)

// Normalize maps a legacy template payload onto the canonical shape. Older
// variants disagreed on field names: the structured payload lived under
// "structured_data", "template_data", or "data", and the identifier under
// "template_key" or "key". This is the single place those shapes are
// reconciled; everything past the store works with document.Template only.
//
// Missing variables are re-derived from the markdown source and subject, so
// imports from variants that never tracked a registry still come out whole.
func Normalize(raw map[string]any) (*document.Template, error) {
	if raw == nil {
		return nil, ErrInvalidShape
	}

	key := firstString(raw, "template_key", "key")
	if key == "" {
		return nil, errors.Join(ErrInvalidShape, errors.New("no template key field"))
	}

	tmpl := &document.Template{
		Key:         key,
		Name:        firstString(raw, "name", "title"),
		Subject:     firstString(raw, "subject"),
		Description: firstString(raw, "description"),
	}

	data, _ := firstValue(raw, "structured_data", "template_data", "data").(map[string]any)
	if data != nil {
		if err := decodeInto(data, &tmpl.Structured); err != nil {
			return nil, errors.Join(ErrInvalidShape, err)
		}
		// Some variants nested the source inside the data payload.
		tmpl.MarkdownSource = firstString(data, "markdown_source")
	}
	if src := firstString(raw, "markdown_source"); src != "" {
		tmpl.MarkdownSource = src
	}

	if vars, ok := firstValue(raw, "variables").([]any); ok {
		for _, v := range vars {
			if s, ok := v.(string); ok {
				tmpl.Variables = append(tmpl.Variables, s)
			}
		}
	}
	if tmpl.Variables == nil {
		tmpl.Variables = variables.Extract(tmpl.MarkdownSource, tmpl.Subject)
	}

	return tmpl, nil
}

// firstString returns the first non-empty string stored under any of keys.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstValue returns the first value present under any of keys.
func firstValue(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// decodeInto maps a generic payload onto a typed struct via JSON, which
// tolerates unknown legacy fields without hand-written shape branching.
func decodeInto(src map[string]any, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
