package htmlimport

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/dmitrymomot/maildraft/pkg/tokenizer"
)

// Importer converts sanitized legacy HTML to markdown lines.
type Importer struct {
	policy *bluemonday.Policy
}

// New creates an importer with the default sanitization policy: structural
// elements only, href on anchors, class kept on anchors so legacy
// call-to-action buttons remain recognizable.
func New() *Importer {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br", "div",
		"strong", "b", "em", "i",
		"ul", "ol", "li",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"hr", "blockquote",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("class").OnElements("a")
	p.AllowStandardURLs()
	return &Importer{policy: p}
}

// Markdown converts legacy HTML to editable markdown source.
func (i *Importer) Markdown(legacy string) string {
	blocks := i.blocks(legacy)
	return strings.Join(blocks, "\n\n")
}

// Import converts legacy HTML and classifies the result through the forward
// tokenizer, so callers get the exact token stream the editor would produce
// for the converted source.
func (i *Importer) Import(legacy string) []tokenizer.Token {
	return tokenizer.Tokenize(i.Markdown(legacy))
}

// blocks walks the sanitized HTML and emits one markdown block per
// structural element. Consecutive bullet items form a single block so they
// tokenize as one list run.
func (i *Importer) blocks(legacy string) []string {
	clean := i.policy.Sanitize(legacy)
	tz := html.NewTokenizer(strings.NewReader(clean))

	var (
		blocks   []string
		buf      strings.Builder
		bullets  []string
		linkHref string
		linkBtn  bool
		heading  int // >0 while inside hN
		inLi     bool
	)

	flushText := func() {
		text := collapseSpace(buf.String())
		buf.Reset()
		if text == "" {
			return
		}
		switch {
		case inLi:
			bullets = append(bullets, "- "+text)
		case heading > 0:
			blocks = append(blocks, strings.Repeat("#", heading)+" "+text)
		default:
			blocks = append(blocks, text)
		}
	}
	flushBullets := func() {
		if len(bullets) > 0 {
			blocks = append(blocks, strings.Join(bullets, "\n"))
			bullets = nil
		}
	}

	for {
		tt := tz.Next()
		if tt == html.ErrorToken {
			flushText()
			flushBullets()
			return blocks
		}

		tok := tz.Token()
		switch tt {
		case html.TextToken:
			buf.WriteString(tok.Data)

		case html.StartTagToken, html.SelfClosingTagToken:
			switch tok.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				flushText()
				flushBullets()
				heading = int(tok.Data[1] - '0')
			case "p", "div", "blockquote":
				flushText()
				flushBullets()
			case "li":
				flushText()
				inLi = true
			case "hr":
				flushText()
				flushBullets()
				blocks = append(blocks, "---")
			case "br":
				buf.WriteByte(' ')
			case "strong", "b":
				buf.WriteString("**")
			case "em", "i":
				buf.WriteString("*")
			case "a":
				linkHref, linkBtn = anchorAttrs(tok)
				buf.WriteByte('[')
			}

		case html.EndTagToken:
			switch tok.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				flushText()
				heading = 0
			case "p", "div", "blockquote":
				flushText()
			case "li":
				flushText()
				inLi = false
			case "ul", "ol":
				flushBullets()
			case "strong", "b":
				buf.WriteString("**")
			case "em", "i":
				buf.WriteString("*")
			case "a":
				buf.WriteString("](" + linkHref + ")")
				if linkBtn {
					buf.WriteString("{.button}")
				}
				linkHref, linkBtn = "", false
			}
		}
	}
}

// anchorAttrs pulls the href and whether the anchor is a legacy
// call-to-action button (class contains "btn" or "button").
func anchorAttrs(tok html.Token) (href string, btn bool) {
	for _, attr := range tok.Attr {
		switch attr.Key {
		case "href":
			href = attr.Val
		case "class":
			for _, c := range strings.Fields(attr.Val) {
				if c == "btn" || c == "button" {
					btn = true
				}
			}
		}
	}
	return href, btn
}

// collapseSpace trims and collapses runs of whitespace to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
