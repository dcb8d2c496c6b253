package document

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/maildraft/pkg/tokenizer"
)

func TestReconstruct_FullDocument(t *testing.T) {
	t.Parallel()

	doc := Document{
		Salutation: "Hi Sam,",
		Paragraphs: []string{"Welcome."},
		Highlight: &Highlight{
			Title:        "Why it matters",
			BulletPoints: []string{"Point A", "Point B"},
		},
		ClosingParagraphs: []string{"Talk soon."},
		CTA:               &CTA{Text: "Go now", URL: "https://x.test"},
	}

	want := "Hi Sam,\n\nWelcome.\n\n---\n**Why it matters**\n- Point A\n- Point B\n---\n\nTalk soon.\n\n[Go now](https://x.test){.button}"
	require.Equal(t, want, Reconstruct(doc))
}

func TestReconstruct_RoundTripIsStable(t *testing.T) {
	t.Parallel()

	sources := []string{
		"Hi Sam,\n\nWelcome.\n\n---\n**Why it matters**\n\n- Point A\n- Point B\n---\n\nTalk soon.",
		"No greeting here.\n\nJust two paragraphs.",
		"Hello,\n\n---\nSome free text\nacross lines.\n---\n\nBye.",
		"",
	}

	for _, src := range sources {
		first := Build(tokenizer.Tokenize(src))
		second := Build(tokenizer.Tokenize(Reconstruct(first)))
		// A second parse of the canonical reconstruction must not change
		// paragraph grouping or any other section.
		require.Equal(t, first, second, "source: %q", src)
	}
}

func TestReconstruct_EmptyDocument(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", Reconstruct(Document{}))
}
