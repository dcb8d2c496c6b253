package tokenizer

// Kind classifies a single physical line of template markup.
type Kind int

const (
	// KindBlank is a line containing only whitespace.
	KindBlank Kind = iota
	// KindDelimiter is a line of three or more hyphens, used in pairs to
	// open and close a highlight block.
	KindDelimiter
	// KindHeading is a markdown ATX heading (# through ######).
	KindHeading
	// KindBoldLine is a line whose entire trimmed content is wrapped in **.
	KindBoldLine
	// KindBulletItem is a line starting with "- ".
	KindBulletItem
	// KindButton is a full-line call-to-action directive:
	// [label](url){.button}.
	KindButton
	// KindText is any line not matched by a preceding rule.
	KindText
)

// String returns the lowercase token kind name used in logs and tests.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindDelimiter:
		return "delimiter"
	case KindHeading:
		return "heading"
	case KindBoldLine:
		return "bold"
	case KindBulletItem:
		return "bullet"
	case KindButton:
		return "button"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Token is one classified line. Text holds the semantic payload with line
// markers already stripped: heading text without the # prefix, bold text
// without the ** wrappers, bullet text without the "- " marker, and the raw
// trimmed line for KindText. Label and URL are set only for KindButton.
type Token struct {
	Text  string
	Label string
	URL   string
	Kind  Kind
	Level int // heading level, 1-6; zero for non-headings
}

// Line renders the token back to its markdown line form. Tokenizing the
// result classifies to the same token, which is what makes reverse
// conversions (HTML import, canonical reconstruction) composable.
func (t Token) Line() string {
	switch t.Kind {
	case KindBlank:
		return ""
	case KindDelimiter:
		return "---"
	case KindHeading:
		level := min(max(t.Level, 1), 6)
		return "######"[:level] + " " + t.Text
	case KindBoldLine:
		return "**" + t.Text + "**"
	case KindBulletItem:
		return "- " + t.Text
	case KindButton:
		return "[" + t.Label + "](" + t.URL + "){.button}"
	default:
		return t.Text
	}
}
