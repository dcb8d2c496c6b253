package render

import (
	"regexp"

	"github.com/dmitrymomot/maildraft/pkg/variables"
)

// Substitute replaces variable tokens in rendered HTML with values from the
// supplied map. Only names present in the map are touched; tokens without a
// value stay intact so the author can see which variables remain unfilled.
// The pass is a flat string replacement and never parses the HTML, matching
// the token whitespace-insensitively inside the braces.
func Substitute(html string, syntax variables.Syntax, values map[string]string) string {
	if len(values) == 0 {
		return html
	}

	for name, value := range values {
		html = tokenPattern(syntax, name).ReplaceAllLiteralString(html, value)
	}
	return html
}

// tokenPattern builds the whitespace-tolerant matcher for one variable name
// in the given syntax.
func tokenPattern(syntax variables.Syntax, name string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(name)
	if syntax == variables.SyntaxDouble {
		return regexp.MustCompile(`\{\{\s*` + quoted + `\s*\}\}`)
	}
	return regexp.MustCompile(`\{\s*` + quoted + `\s*\}`)
}
