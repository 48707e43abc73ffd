package storage

import "strings"

// SanitizeFilename replaces every character outside [A-Za-z0-9._-] with an
// underscore, so user-supplied filenames are safe to embed in object keys and
// remote paths. The output has the same number of runes as the input.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}
