package tokenizer

import (
	"regexp"
	"strings"
)

var (
	delimiterRe = regexp.MustCompile(`^-{3,}$`)
	headingRe   = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	buttonRe    = regexp.MustCompile(`^\[([^\]]+)\]\(([^)\s]+)\)\{\.button\}$`)
)

// Tokenize splits src into one token per physical line. It never fails:
// malformed or unrecognized lines become KindText tokens.
func Tokenize(src string) []Token {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")

	tokens := make([]Token, 0, len(lines))
	for _, line := range lines {
		tokens = append(tokens, classify(line))
	}
	return tokens
}

// classify maps a single line to its token. Rules are checked in a fixed
// order and the first match wins; a bold line inside a bullet is a bullet
// because the bullet rule runs first on the untrimmed prefix.
func classify(line string) Token {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return Token{Kind: KindBlank}
	}

	if delimiterRe.MatchString(trimmed) {
		return Token{Kind: KindDelimiter}
	}

	if m := headingRe.FindStringSubmatch(trimmed); m != nil {
		return Token{
			Kind:  KindHeading,
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		}
	}

	if isBoldLine(trimmed) {
		return Token{
			Kind: KindBoldLine,
			Text: strings.TrimSpace(trimmed[2 : len(trimmed)-2]),
		}
	}

	if strings.HasPrefix(trimmed, "- ") {
		return Token{
			Kind: KindBulletItem,
			Text: strings.TrimSpace(trimmed[2:]),
		}
	}

	if m := buttonRe.FindStringSubmatch(trimmed); m != nil {
		return Token{
			Kind:  KindButton,
			Label: m[1],
			URL:   m[2],
			Text:  trimmed,
		}
	}

	return Token{Kind: KindText, Text: trimmed}
}

// isBoldLine reports whether the entire trimmed line is wrapped in ** markers
// with non-empty content between them.
func isBoldLine(trimmed string) bool {
	return len(trimmed) > 4 &&
		strings.HasPrefix(trimmed, "**") &&
		strings.HasSuffix(trimmed, "**") &&
		// Reject lines like "****" or "**" that have no payload.
		strings.TrimSpace(trimmed[2:len(trimmed)-2]) != "" &&
		// A line such as "**bold** trailing" must not match: the suffix **
		// must close the opening marker, not a second bold span.
		!strings.Contains(strings.TrimSpace(trimmed[2:len(trimmed)-2]), "**")
}
