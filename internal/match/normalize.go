package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds an entity name for fuzzy matching: letters are
// lowercased and separators are dropped, so "Generic Roof Membrane",
// "generic_roof_membrane" and "GenericRoofMembrane" compare equal.
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator reports whether r only separates words in a name.
func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', '/':
		return true
	}

	return unicode.IsSpace(r)
}
