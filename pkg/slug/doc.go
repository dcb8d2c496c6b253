// Package slug generates URL-safe identifiers from template names.
//
// Text is normalized with Unicode decomposition so common diacritics fold to
// ASCII, non-alphanumeric runs collapse to a single separator, and an
// optional random suffix guards against collisions:
//
//	slug.Make("Café Welcome Séries")            // "cafe-welcome-series"
//	slug.Make("Welcome", slug.WithSuffix(6))    // "welcome-k3x9f2"
//	slug.Make("Very Long Name", slug.MaxLength(9)) // "very-long"
package slug
