package slug_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/maildraft/pkg/slug"
)

func TestMake_Basic(t *testing.T) {
	t.Parallel()

	require.Equal(t, "welcome-email", slug.Make("Welcome Email"))
	require.Equal(t, "hello-world", slug.Make("Hello, World!"))
	require.Equal(t, "q3-launch-2026", slug.Make("Q3 Launch 2026"))
}

func TestMake_Diacritics(t *testing.T) {
	t.Parallel()

	require.Equal(t, "cafe-restaurant", slug.Make("Café & Restaurant"))
	require.Equal(t, "naive-resume", slug.Make("naïve résumé"))
}

func TestMake_Separator(t *testing.T) {
	t.Parallel()

	require.Equal(t, "welcome_email", slug.Make("Welcome Email", slug.Separator("_")))
}

func TestMake_MaxLength(t *testing.T) {
	t.Parallel()

	require.Equal(t, "very-long", slug.Make("Very Long Article Title", slug.MaxLength(12)))
	require.LessOrEqual(t, len(slug.Make("abcdefghij", slug.MaxLength(5))), 5)
}

func TestMake_WithSuffix(t *testing.T) {
	t.Parallel()

	got := slug.Make("Welcome", slug.WithSuffix(6))
	require.Regexp(t, regexp.MustCompile(`^welcome-[a-z0-9]{6}$`), got)

	// Suffixes differ across calls.
	other := slug.Make("Welcome", slug.WithSuffix(6))
	require.NotEqual(t, got, other)
}

func TestMake_EmptyAndSymbolOnly(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", slug.Make(""))
	require.Equal(t, "", slug.Make("!!!"))
	require.Regexp(t, regexp.MustCompile(`^[a-z0-9]{4}$`), slug.Make("!!!", slug.WithSuffix(4)))
}
