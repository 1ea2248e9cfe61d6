package stats

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const (
	firstStrongIsolate    = "\u2068"
	popDirectionalIsolate = "\u2069"
)

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return b.String()
}

// padCell pads value to width cells. Right-to-left text is right-aligned and
// wrapped in a bidi isolate so the terminal does not reorder it with the
// neighbouring columns.
func padCell(value string, width int, rightAlign bool) string {
	padding := max(width-displayWidth(value), 0)
	if isRTL(value) {
		value = firstStrongIsolate + value + popDirectionalIsolate
		rightAlign = true
	}
	if padding == 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

// displayWidth counts terminal cells, so combining marks take no room.
func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}

// isRTL reports whether the first letter of value is Arabic or Hebrew.
func isRTL(value string) bool {
	for _, r := range value {
		switch {
		case unicode.In(r, unicode.Arabic, unicode.Hebrew):
			return true
		case unicode.IsLetter(r):
			return false
		}
	}
	return false
}
