package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/maildraft/pkg/variables"
)

func TestSubstitute_SingleBrace(t *testing.T) {
	t.Parallel()

	html := "<p>Hi {user_name}, your course {course_title} starts.</p>"
	out := Substitute(html, variables.SyntaxSingle, map[string]string{
		"user_name":    "Sam",
		"course_title": "Go 101",
	})
	require.Equal(t, "<p>Hi Sam, your course Go 101 starts.</p>", out)
}

func TestSubstitute_DoubleBrace(t *testing.T) {
	t.Parallel()

	html := "<p>Hi {{ user_name }} and {{user_name}}.</p>"
	out := Substitute(html, variables.SyntaxDouble, map[string]string{"user_name": "Sam"})
	require.Equal(t, "<p>Hi Sam and Sam.</p>", out)
}

func TestSubstitute_WhitespaceInsideBraces(t *testing.T) {
	t.Parallel()

	out := Substitute("<p>{ user_name }</p>", variables.SyntaxSingle, map[string]string{"user_name": "Sam"})
	require.Equal(t, "<p>Sam</p>", out)
}

func TestSubstitute_UnresolvedTokensKept(t *testing.T) {
	t.Parallel()

	html := "<p>Hi {user_name}, use {coupon}.</p>"
	out := Substitute(html, variables.SyntaxSingle, map[string]string{"user_name": "Sam"})
	require.Equal(t, "<p>Hi Sam, use {coupon}.</p>", out)
}

func TestSubstitute_EmptyMapIsIdentity(t *testing.T) {
	t.Parallel()

	html := "<p>Hi {user_name}, use {coupon}.</p>"
	require.Equal(t, html, Substitute(html, variables.SyntaxSingle, nil))
	require.Equal(t, html, Substitute(html, variables.SyntaxSingle, map[string]string{}))
}

func TestSubstitute_EmptyStringIsAValue(t *testing.T) {
	t.Parallel()

	out := Substitute("<p>[{gone}]</p>", variables.SyntaxSingle, map[string]string{"gone": ""})
	require.Equal(t, "<p>[]</p>", out)
}

func TestSubstitute_SyntaxesDoNotCrossMatch(t *testing.T) {
	t.Parallel()

	// A single-brace pass must leave double-brace tokens alone and vice
	// versa; a document commits to one syntax.
	html := "<p>{{ user_name }}</p>"
	out := Substitute(html, variables.SyntaxSingle, map[string]string{"user_name": "Sam"})
	require.Equal(t, "<p>{Sam}</p>", out)
}

func TestSubstitute_ValueWithRegexMetaChars(t *testing.T) {
	t.Parallel()

	out := Substitute("<p>{amount}</p>", variables.SyntaxSingle, map[string]string{"amount": "$1.50"})
	require.Equal(t, "<p>$1.50</p>", out)
}
