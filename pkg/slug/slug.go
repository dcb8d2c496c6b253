package slug

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures slug generation.
type Option func(*options)

type options struct {
	separator string
	maxLength int
	suffixLen int
}

func defaultOptions() *options {
	return &options{separator: "-"}
}

// Separator sets the character placed between words. Default: "-".
func Separator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// MaxLength limits the slug length in runes, cutting at a separator
// boundary when possible.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// WithSuffix appends a random lowercase alphanumeric suffix of n runes,
// separated from the slug body, for collision resistance.
func WithSuffix(n int) Option {
	return func(o *options) {
		o.suffixLen = n
	}
}

// foldTransformer decomposes text and drops combining marks, so "é"
// becomes "e".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts s into a lowercase URL-safe slug.
func Make(s string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteString(o.separator)
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	out := b.String()

	if o.maxLength > 0 && len([]rune(out)) > o.maxLength {
		out = truncate(out, o.maxLength, o.separator)
	}

	if o.suffixLen > 0 {
		suffix := randomSuffix(o.suffixLen)
		if out == "" {
			return suffix
		}
		out += o.separator + suffix
	}

	return out
}

// truncate cuts to limit runes, preferring the last full separator boundary.
func truncate(s string, limit int, sep string) string {
	cut := string([]rune(s)[:limit])
	if idx := strings.LastIndex(cut, sep); idx > 0 {
		return cut[:idx]
	}
	return strings.TrimSuffix(cut, sep)
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(suffixAlphabet))))
		if err != nil {
			b[i] = 'x'
			continue
		}
		b[i] = suffixAlphabet[idx.Int64()]
	}
	return string(b)
}
