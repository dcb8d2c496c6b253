package document

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/maildraft/pkg/tokenizer"
)

func build(src string) Document {
	return Build(tokenizer.Tokenize(src))
}

func TestBuild_FullDocument(t *testing.T) {
	t.Parallel()

	src := "Hi Sam,\n\nWelcome.\n\n---\n**Why it matters**\n\n- Point A\n- Point B\n---\n\nTalk soon."
	doc := build(src)

	require.Equal(t, "Hi Sam,", doc.Salutation)
	require.Equal(t, []string{"Welcome."}, doc.Paragraphs)
	require.NotNil(t, doc.Highlight)
	require.Equal(t, "Why it matters", doc.Highlight.Title)
	require.Equal(t, []string{"Point A", "Point B"}, doc.Highlight.BulletPoints)
	require.Empty(t, doc.Highlight.Content)
	require.Equal(t, []string{"Talk soon."}, doc.ClosingParagraphs)
}

func TestBuild_SalutationPromotion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		src            string
		wantSalutation string
		wantParagraphs []string
	}{
		{"hi", "Hi Sam,\n\nBody.", "Hi Sam,", []string{"Body."}},
		{"hello", "Hello team!\n\nBody.", "Hello team!", []string{"Body."}},
		{"dear", "Dear Dr. Reyes,\n\nBody.", "Dear Dr. Reyes,", []string{"Body."}},
		{"greetings", "Greetings,\n\nBody.", "Greetings,", []string{"Body."}},
		{"lowercase hey", "hey folks\n\nBody.", "hey folks", []string{"Body."}},
		{"no greeting", "Quick update.\n\nBody.", "", []string{"Quick update.", "Body."}},
		{"greeting word prefix only", "Historic results are in.", "", []string{"Historic results are in."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := build(tt.src)
			require.Equal(t, tt.wantSalutation, doc.Salutation)
			require.Equal(t, tt.wantParagraphs, doc.Paragraphs)
		})
	}
}

func TestBuild_ParagraphGrouping(t *testing.T) {
	t.Parallel()

	// Adjacent text lines join with a single space; blank lines split.
	doc := build("First line\nsecond line.\n\nNext paragraph.")
	require.Equal(t, []string{"First line second line.", "Next paragraph."}, doc.Paragraphs)
}

func TestBuild_HighlightContentJoins(t *testing.T) {
	t.Parallel()

	doc := build("---\n**Title**\nFree text one\nand two.\n- bullet\n---")
	require.NotNil(t, doc.Highlight)
	require.Equal(t, "Title", doc.Highlight.Title)
	require.Equal(t, "Free text one and two.", doc.Highlight.Content)
	require.Equal(t, []string{"bullet"}, doc.Highlight.BulletPoints)
}

func TestBuild_SecondDelimiterPairIsInert(t *testing.T) {
	t.Parallel()

	src := "Intro.\n\n---\n- a\n---\n\nAfter first.\n\n---\n- b\n---\n\nAfter second."
	doc := build(src)

	require.NotNil(t, doc.Highlight)
	require.Equal(t, []string{"a"}, doc.Highlight.BulletPoints)
	// Everything after the first pair accumulates as closing paragraphs,
	// including the would-be contents of the second pair.
	require.Equal(t, []string{"After first.", "b", "After second."}, doc.ClosingParagraphs)
}

func TestBuild_UnclosedHighlight(t *testing.T) {
	t.Parallel()

	doc := build("Body.\n\n---\n**Pending**\n- only bullet")
	// The block never closed, so it is never committed.
	require.Nil(t, doc.Highlight)
	require.Equal(t, []string{"Body."}, doc.Paragraphs)
	require.Empty(t, doc.ClosingParagraphs)
}

func TestBuild_ButtonTokenIsSkipped(t *testing.T) {
	t.Parallel()

	doc := build("Hello,\n\nCheck this out.\n\n[Go now](https://x.test){.button}")
	require.Nil(t, doc.CTA)
	require.Equal(t, []string{"Check this out."}, doc.Paragraphs)
}

func TestBuild_HeadingIsStandaloneParagraph(t *testing.T) {
	t.Parallel()

	doc := build("# Big news\nDetails follow.")
	require.Equal(t, []string{"Big news", "Details follow."}, doc.Paragraphs)
}

func TestBuild_EmptyAndMalformedInput(t *testing.T) {
	t.Parallel()

	require.Equal(t, Document{}, build(""))
	require.Equal(t, Document{}, build("\n\n\n"))

	// A lone delimiter opens a highlight that never closes.
	require.Equal(t, Document{}, build("---"))
}

func TestBuild_TrailingParagraphFlushedAtEOF(t *testing.T) {
	t.Parallel()

	doc := build("No trailing newline")
	require.Equal(t, []string{"No trailing newline"}, doc.Paragraphs)

	doc = build("---\n- x\n---\nlast words")
	require.Equal(t, []string{"last words"}, doc.ClosingParagraphs)
}
