package document

// CTA is a single prominent call-to-action rendered as a styled button.
type CTA struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Highlight is a visually distinct callout section in the email body,
// delimited in source by horizontal-rule markers. A document carries at most
// one.
type Highlight struct {
	Title        string   `json:"title,omitempty"`
	Content      string   `json:"content,omitempty"`
	BulletPoints []string `json:"bullet_points"`
}

// Document is the structured, section-labeled form of a template body.
// Paragraphs, ClosingParagraphs, and Highlight.BulletPoints preserve source
// order. CTA, SenderName, and Signature are not derived from the body text;
// they come from form fields supplied alongside it.
type Document struct {
	Salutation        string     `json:"salutation,omitempty"`
	Paragraphs        []string   `json:"paragraphs"`
	Highlight         *Highlight `json:"highlight_block,omitempty"`
	ClosingParagraphs []string   `json:"closing_paragraphs"`
	CTA               *CTA       `json:"cta,omitempty"`
	SenderName        string     `json:"sender_name,omitempty"`
	Signature         string     `json:"signature,omitempty"`
}

// Template is the canonical stored shape of an email template. Key is
// immutable after creation. Variables holds the deduplicated,
// first-occurrence-ordered variable names referenced by MarkdownSource and
// Subject.
type Template struct {
	Key            string   `json:"template_key"`
	Name           string   `json:"name"`
	Subject        string   `json:"subject"`
	Description    string   `json:"description,omitempty"`
	MarkdownSource string   `json:"markdown_source"`
	Structured     Document `json:"structured_data"`
	Variables      []string `json:"variables"`
}

// Clone returns a deep copy, so stores can hand out templates without
// sharing mutable slices with callers.
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Variables = append(t.Variables[:0:0], t.Variables...)
	cp.Structured = t.Structured.clone()
	return &cp
}

func (d Document) clone() Document {
	cp := d
	cp.Paragraphs = append(d.Paragraphs[:0:0], d.Paragraphs...)
	cp.ClosingParagraphs = append(d.ClosingParagraphs[:0:0], d.ClosingParagraphs...)
	if d.Highlight != nil {
		h := *d.Highlight
		h.BulletPoints = append(d.Highlight.BulletPoints[:0:0], d.Highlight.BulletPoints...)
		cp.Highlight = &h
	}
	if d.CTA != nil {
		c := *d.CTA
		cp.CTA = &c
	}
	return cp
}
