package arabic

import (
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// Distance returns the Levenshtein distance between a and b in runes.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	return matchr.Levenshtein(a, b)
}

// NormalizedDistance scales Distance by the longer length, giving a value in
// [0, 1].
func NormalizedDistance(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b), 1)
	return float64(Distance(a, b)) / float64(longest)
}
