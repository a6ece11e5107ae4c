package textutil

import (
	"strings"
	"unicode"
)

// Normalize lowercases s, strips diacritical marks and collapses whitespace
// so that "Luís Calçada" matches a search for "luis calcada".
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = removeAccents(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// ContainsNormalized reports whether text contains query after both are
// normalized. An empty query matches nothing.
func ContainsNormalized(text, query string) bool {
	query = Normalize(query)
	if query == "" {
		return false
	}
	return strings.Contains(Normalize(text), query)
}

// Truncate cuts s to at most cutoff runes, appending "..." only when the
// original is longer than the cutoff.
func Truncate(s string, cutoff int) string {
	runes := []rune(s)
	if len(runes) <= cutoff {
		return s
	}
	return string(runes[:cutoff]) + "..."
}

// removeAccents removes diacritical marks from a string. Maps the accented
// characters that occur in Portuguese names and transcripts to their ASCII
// equivalents.
func removeAccents(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) { // Mn: Mark, nonspacing
			continue
		}
		switch r {
		case 'á', 'à', 'â', 'ã', 'ä':
			result.WriteRune('a')
		case 'é', 'è', 'ê', 'ë':
			result.WriteRune('e')
		case 'í', 'ì', 'î', 'ï':
			result.WriteRune('i')
		case 'ó', 'ò', 'ô', 'õ', 'ö':
			result.WriteRune('o')
		case 'ú', 'ù', 'û', 'ü':
			result.WriteRune('u')
		case 'ç':
			result.WriteRune('c')
		case 'ñ':
			result.WriteRune('n')
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
