package document

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/maildraft/pkg/tokenizer"
)

// greetingRe matches the fixed set of greeting openers that promote the
// first body paragraph to the salutation slot.
var greetingRe = regexp.MustCompile(`(?i)^(hi|hello|dear|hey|greetings)\b`)

// section is the builder's current accumulation target.
type section int

const (
	sectionBody section = iota
	sectionHighlight
	sectionClosing
)

// builder accumulates document parts while walking the token stream.
type builder struct {
	doc       Document
	highlight Highlight
	paragraph []string
	state     section
}

// Build derives a structured document from a token stream. It never fails:
// the worst case for malformed input is an empty or partially-filled
// document. Button tokens are skipped here; the call-to-action is supplied
// separately and is not derived from body text.
func Build(tokens []tokenizer.Token) Document {
	b := &builder{state: sectionBody}

	for _, tok := range tokens {
		switch b.state {
		case sectionBody, sectionClosing:
			b.consumeParagraphToken(tok)
		case sectionHighlight:
			b.consumeHighlightToken(tok)
		}
	}
	b.flushParagraph()

	b.promoteSalutation()
	return b.doc
}

// consumeParagraphToken handles tokens while accumulating body or closing
// paragraphs.
func (b *builder) consumeParagraphToken(tok tokenizer.Token) {
	switch tok.Kind {
	case tokenizer.KindBlank:
		b.flushParagraph()
	case tokenizer.KindDelimiter:
		b.flushParagraph()
		if b.state == sectionBody {
			b.highlight = Highlight{}
			b.state = sectionHighlight
		}
		// A delimiter after the highlight already closed only breaks the
		// current paragraph: closing accumulation resumes and no second
		// highlight block is ever opened.
	case tokenizer.KindButton:
		// The CTA is carried by form fields, not by the body.
	case tokenizer.KindHeading:
		// Headings stand alone: flush the running paragraph and commit the
		// heading text as its own paragraph.
		b.flushParagraph()
		b.paragraph = append(b.paragraph, tok.Text)
		b.flushParagraph()
	default:
		b.appendLine(tok.Text)
	}
}

// consumeHighlightToken handles tokens while inside an open highlight block.
func (b *builder) consumeHighlightToken(tok tokenizer.Token) {
	switch tok.Kind {
	case tokenizer.KindDelimiter:
		h := b.highlight
		b.doc.Highlight = &h
		b.state = sectionClosing
	case tokenizer.KindBoldLine, tokenizer.KindHeading:
		b.highlight.Title = tok.Text
	case tokenizer.KindBulletItem:
		b.highlight.BulletPoints = append(b.highlight.BulletPoints, tok.Text)
	case tokenizer.KindBlank, tokenizer.KindButton:
		// Blanks inside a highlight separate nothing; buttons are skipped
		// the same as in body text.
	default:
		if b.highlight.Content != "" {
			b.highlight.Content += " " + tok.Text
		} else {
			b.highlight.Content = tok.Text
		}
	}
}

// appendLine adds a text line to the in-progress paragraph.
func (b *builder) appendLine(text string) {
	if text == "" {
		return
	}
	b.paragraph = append(b.paragraph, text)
}

// flushParagraph commits the in-progress paragraph to the section the
// builder is currently in. Lines are joined with a single space.
func (b *builder) flushParagraph() {
	if len(b.paragraph) == 0 {
		return
	}
	p := strings.Join(b.paragraph, " ")
	b.paragraph = nil

	if b.state == sectionClosing {
		b.doc.ClosingParagraphs = append(b.doc.ClosingParagraphs, p)
		return
	}
	b.doc.Paragraphs = append(b.doc.Paragraphs, p)
}

// promoteSalutation moves the first body paragraph into the salutation slot
// when it opens with a greeting word.
func (b *builder) promoteSalutation() {
	if len(b.doc.Paragraphs) == 0 {
		return
	}
	if !greetingRe.MatchString(b.doc.Paragraphs[0]) {
		return
	}
	b.doc.Salutation = b.doc.Paragraphs[0]
	b.doc.Paragraphs = b.doc.Paragraphs[1:]
	if len(b.doc.Paragraphs) == 0 {
		b.doc.Paragraphs = nil
	}
}
