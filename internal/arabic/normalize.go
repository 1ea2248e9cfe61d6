// Package arabic normalizes and tokenizes Arabic text for recitation
// comparison.
//
// Two normalization profiles exist. Skeleton keeps only base letters with
// their spelling variants unified and is used for matching words. Full keeps
// every pronunciation mark and is used to judge harakat and madd and to
// annotate tajweed rules. Both fold presentation forms through NFKC, which
// also puts stacked marks in canonical order.
//
// All functions are pure and safe for concurrent use.
package arabic

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Profile selects a normalization profile.
type Profile int

// Normalization profiles.
const (
	Skeleton Profile = iota
	Full
)

const tatweel = '\u0640'

// letterVariants unifies spelling variants of a base letter.
var letterVariants = map[rune]rune{
	'\u0623': '\u0627', // alef with hamza above
	'\u0625': '\u0627', // alef with hamza below
	'\u0622': '\u0627', // alef with madda
	'\u0671': '\u0627', // alef wasla
	'\u0672': '\u0627',
	'\u0673': '\u0627',
	'\u0649': '\u064A', // alef maqsura
	'\u06CC': '\u064A', // farsi yeh
	'\u0626': '\u064A',
	'\u0624': '\u0648',
	'\u0629': '\u0647', // teh marbuta
	'\u06C0': '\u0647',
	'\u06A9': '\u0643', // keheh
}

// Normalize canonicalizes text for the given profile. Characters it does not
// know about are passed through unchanged.
func Normalize(text string, profile Profile) string {
	if text == "" {
		return ""
	}
	text = norm.NFKC.String(text)
	var b strings.Builder
	b.Grow(len(text))
	switch profile {
	case Skeleton:
		for _, r := range text {
			if isPunct(r) || IsMark(r) || r == tatweel {
				continue
			}
			b.WriteRune(FoldLetter(r))
		}
	default:
		for _, r := range text {
			if isPunct(r) || r == tatweel {
				continue
			}
			b.WriteRune(r)
		}
	}
	return collapseSpace(b.String())
}

// FoldLetter maps a letter variant to its canonical base letter.
func FoldLetter(r rune) rune {
	if base, ok := letterVariants[r]; ok {
		return base
	}
	return r
}

// IsMark reports whether r is a diacritic or Quranic small mark that sits on
// a base letter.
func IsMark(r rune) bool {
	if r == smallWaw || r == smallYeh {
		return true
	}
	return unicode.Is(unicode.Mn, r)
}

func isPunct(r rune) bool {
	switch {
	case unicode.IsPunct(r):
		return true
	case r >= 0x06D6 && r <= 0x06DC: // waqf (pause) signs
		return true
	case r == 0x06DD, r == 0x06DE, r == 0x06E9: // end of ayah, rub el hizb, sajdah
		return true
	}
	return false
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
