package document

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta is the metadata a markdown source can carry in an optional YAML
// frontmatter block.
type Meta struct {
	Subject    string `yaml:"subject"`
	SenderName string `yaml:"sender_name"`
	Signature  string `yaml:"signature"`
}

// ParseSource splits an optional YAML frontmatter block off a markdown
// source, returning the metadata and the body below it.
//
// Frontmatter shares its delimiter with highlight blocks, so recognition is
// deliberately strict: the source must open with a delimiter line, a closing
// delimiter must exist, and the bytes between must decode as a YAML mapping.
// Anything else is body. ParseSource never fails; a document that opens
// directly with a highlight block simply has no frontmatter.
func ParseSource(src string) (Meta, string) {
	var meta Meta

	normalized := strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return meta, src
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closing = i
			break
		}
	}
	if closing == -1 {
		return meta, src
	}

	block := strings.Join(lines[1:closing], "\n")
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return Meta{}, src
	}
	if meta == (Meta{}) {
		// A YAML-decodable block with none of our keys is more likely a
		// highlight block than metadata; keep it in the body.
		return meta, src
	}

	return meta, strings.Join(lines[closing+1:], "\n")
}
