package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_Complete(t *testing.T) {
	t.Parallel()

	err := Validate(&Template{
		Key:            "welcome-email",
		Name:           "Welcome",
		Subject:        "Welcome aboard",
		MarkdownSource: "Hi,\n\nWelcome.",
	})
	require.NoError(t, err)
}

func TestValidate_MissingFields(t *testing.T) {
	t.Parallel()

	err := Validate(&Template{})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMissingKey)
	require.ErrorIs(t, err, ErrMissingName)
	require.ErrorIs(t, err, ErrMissingSubject)
	require.ErrorIs(t, err, ErrEmptyBody)
}

func TestValidate_WhitespaceOnlyBody(t *testing.T) {
	t.Parallel()

	err := Validate(&Template{
		Key:            "k",
		Name:           "n",
		Subject:        "s",
		MarkdownSource: "   \n\t",
	})
	require.ErrorIs(t, err, ErrEmptyBody)
	require.NotErrorIs(t, err, ErrMissingKey)
}
