package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// styledWord is a rendered word with its width in terminal cells.
type styledWord struct {
	s     string
	width int
}

func newStyledWord(word string, render func(...string) string) styledWord {
	return styledWord{s: render(word), width: runewidth.StringWidth(word)}
}

func renderStyledWords(words []styledWord) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.s
	}
	return strings.Join(parts, " ")
}

// wrapStyledWords breaks words into lines no wider than width. A word wider
// than width gets a line of its own.
func wrapStyledWords(words []styledWord, width int) string {
	if width <= 0 {
		return renderStyledWords(words)
	}
	var out strings.Builder
	line := make([]styledWord, 0, len(words))
	lineWidth := 0
	for _, w := range words {
		extra := w.width
		if len(line) > 0 {
			extra++
		}
		if lineWidth+extra > width && len(line) > 0 {
			out.WriteString(renderStyledWords(line))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			extra = w.width
		}
		line = append(line, w)
		lineWidth += extra
	}
	out.WriteString(renderStyledWords(line))
	return out.String()
}
