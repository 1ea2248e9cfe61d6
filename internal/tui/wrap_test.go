package tui

import (
	"strings"
	"testing"
)

func plain(words ...string) []styledWord {
	out := make([]styledWord, len(words))
	for i, w := range words {
		out[i] = newStyledWord(w, func(s ...string) string { return strings.Join(s, "") })
	}
	return out
}

func TestWrapStyledWords(t *testing.T) {
	got := wrapStyledWords(plain("aa", "bb", "cc", "dd"), 5)
	if got != "aa bb\ncc dd" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestWrapStyledWordsLongWord(t *testing.T) {
	got := wrapStyledWords(plain("a", "abcdefgh", "b"), 4)
	if got != "a\nabcdefgh\nb" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestWrapStyledWordsCountsCellsNotRunes(t *testing.T) {
	// Each diacritized word occupies three cells.
	got := wrapStyledWords(plain("بِسْمِ", "بِسْمِ"), 7)
	if strings.Contains(got, "\n") {
		t.Fatalf("expected both words on one line, got %q", got)
	}
}

func TestWrapStyledWordsNoWidth(t *testing.T) {
	if got := wrapStyledWords(plain("a", "b"), 0); got != "a b" {
		t.Fatalf("unexpected wrap %q", got)
	}
}
