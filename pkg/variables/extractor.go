package variables

import "regexp"

var (
	// tokenRe matches both syntaxes with the double-brace alternative first,
	// so a {{ name }} occurrence is consumed whole instead of yielding a
	// spurious single-brace match on its inner braces.
	tokenRe  = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}|\{\s*(\w+)\s*\}`)
	doubleRe = regexp.MustCompile(`\{\{\s*\w+\s*\}\}`)
)

// Extract returns the variable names referenced by body and subject,
// deduplicated and ordered by first occurrence (body first, then subject).
// A name appearing in both syntaxes counts as one logical variable.
func Extract(body, subject string) []string {
	var names []string
	seen := make(map[string]struct{})

	for _, src := range []string{body, subject} {
		for _, m := range tokenRe.FindAllStringSubmatch(src, -1) {
			name := m[1]
			if name == "" {
				name = m[2]
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names
}
