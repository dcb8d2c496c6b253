package variables

// Syntax identifies which variable-token form a document uses. A document
// commits to exactly one; the extractor recognizes both so legacy templates
// can be imported, but new documents always use SyntaxSingle.
type Syntax int

const (
	// SyntaxSingle is the canonical single-brace form: {name}.
	SyntaxSingle Syntax = iota
	// SyntaxDouble is the legacy double-brace form: {{ name }}.
	SyntaxDouble
)

// Token renders a variable name in this syntax, as it appears in source.
func (s Syntax) Token(name string) string {
	if s == SyntaxDouble {
		return "{{ " + name + " }}"
	}
	return "{" + name + "}"
}

// String returns the syntax name used in stored templates and logs.
func (s Syntax) String() string {
	if s == SyntaxDouble {
		return "double"
	}
	return "single"
}

// Detect reports which syntax a document uses. Any double-brace token marks
// the whole document as legacy double-brace; otherwise it is canonical
// single-brace. Mixed documents are not reconciled beyond this rule.
func Detect(body, subject string) Syntax {
	if doubleRe.MatchString(body) || doubleRe.MatchString(subject) {
		return SyntaxDouble
	}
	return SyntaxSingle
}
