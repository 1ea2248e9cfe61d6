package arabic

import (
	"strings"
	"unicode"
)

// Token is one word of a text in both normalization profiles.
type Token struct {
	Original string
	Skeleton string
	Full     string
	Position int
}

// Tokenize splits text on runs of whitespace, preserving order.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Tokens splits raw text into words and normalizes each one. Words without
// any letter left after normalization (verse numbers, ornaments, stray
// punctuation) are dropped; positions count only kept words.
func Tokens(text string) []Token {
	fields := Tokenize(text)
	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		skeleton := strings.ReplaceAll(Normalize(field, Skeleton), " ", "")
		if !hasLetter(skeleton) {
			continue
		}
		tokens = append(tokens, Token{
			Original: field,
			Skeleton: skeleton,
			Full:     strings.ReplaceAll(Normalize(field, Full), " ", ""),
			Position: len(tokens),
		})
	}
	return tokens
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
