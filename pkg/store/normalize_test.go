package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_CanonicalShape(t *testing.T) {
	t.Parallel()

	tmpl, err := Normalize(map[string]any{
		"template_key":    "welcome",
		"name":            "Welcome",
		"subject":         "Hello {user_name}",
		"markdown_source": "Hi {user_name},",
		"structured_data": map[string]any{
			"salutation": "Hi {user_name},",
			"paragraphs": []any{},
		},
		"variables": []any{"user_name"},
	})
	require.NoError(t, err)
	require.Equal(t, "welcome", tmpl.Key)
	require.Equal(t, "Hi {user_name},", tmpl.Structured.Salutation)
	require.Equal(t, []string{"user_name"}, tmpl.Variables)
}

func TestNormalize_LegacyKeyAndDataFields(t *testing.T) {
	t.Parallel()

	tmpl, err := Normalize(map[string]any{
		"key":     "old-one",
		"title":   "Old One",
		"subject": "Hey",
		"template_data": map[string]any{
			"paragraphs":      []any{"Body text."},
			"markdown_source": "Body text.",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "old-one", tmpl.Key)
	require.Equal(t, "Old One", tmpl.Name)
	require.Equal(t, []string{"Body text."}, tmpl.Structured.Paragraphs)
	require.Equal(t, "Body text.", tmpl.MarkdownSource)
}

func TestNormalize_DataFieldVariant(t *testing.T) {
	t.Parallel()

	tmpl, err := Normalize(map[string]any{
		"key": "v2",
		"data": map[string]any{
			"closing_paragraphs": []any{"Bye."},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Bye."}, tmpl.Structured.ClosingParagraphs)
}

func TestNormalize_MissingVariablesReExtracted(t *testing.T) {
	t.Parallel()

	tmpl, err := Normalize(map[string]any{
		"template_key":    "x",
		"subject":         "For {user_name}",
		"markdown_source": "Use {coupon} today, {user_name}.",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"coupon", "user_name"}, tmpl.Variables)
}

func TestNormalize_TopLevelSourceWins(t *testing.T) {
	t.Parallel()

	tmpl, err := Normalize(map[string]any{
		"template_key":    "x",
		"markdown_source": "top",
		"data": map[string]any{
			"markdown_source": "nested",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "top", tmpl.MarkdownSource)
}

func TestNormalize_RejectsUnkeyedPayload(t *testing.T) {
	t.Parallel()

	_, err := Normalize(map[string]any{"name": "No key"})
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = Normalize(nil)
	require.ErrorIs(t, err, ErrInvalidShape)
}
