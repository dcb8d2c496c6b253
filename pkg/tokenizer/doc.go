// Package tokenizer splits raw email-template markup into typed line tokens.
//
// Classification is line-local: every physical line maps to exactly one token
// and no rule looks ahead to neighboring lines. Unrecognized syntax is never
// an error; it falls through to a plain text token.
//
// Recognized line forms:
//
//	(blank)                     -> KindBlank
//	---                         -> KindDelimiter (three or more hyphens)
//	# Heading                   -> KindHeading (levels 1-6)
//	**Entire line bold**        -> KindBoldLine
//	- bullet item               -> KindBulletItem
//	[Label](https://u){.button} -> KindButton
//	anything else               -> KindText
//
// The token stream feeds both the document builder (pkg/document) and the
// HTML renderer (pkg/render), so the two always agree on line semantics.
package tokenizer
