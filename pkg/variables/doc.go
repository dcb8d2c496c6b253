// Package variables extracts and tracks variable tokens referenced by an
// email template.
//
// Two token syntaxes exist in the wild: single-brace {name} and double-brace
// {{ name }}. Single-brace is canonical; double-brace is recognized for
// legacy imports only, and a document commits to exactly one syntax. A name
// consists of word characters (letters, digits, underscore) and matching is
// case-sensitive.
//
// Extract returns the deduplicated, first-occurrence-ordered names across
// body then subject. Registry keeps sample or user-entered values alive
// across re-extractions while the author edits:
//
//	reg := variables.NewRegistry()
//	reg.Sync(variables.Extract(body, subject))
//	reg.Set("user_name", "Sam")
//	// later, after an edit:
//	reg.Sync(variables.Extract(newBody, subject)) // "Sam" survives if still referenced
package variables
