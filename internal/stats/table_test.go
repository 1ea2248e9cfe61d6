package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Type", "Count", "Share"}
	rows := [][]string{
		{"haraka-error", "12", "80.0%"},
		{"madd-error", "3", "20.0%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Type         Count Share" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "haraka-error    12 80.0%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "madd-error       3 20.0%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestDisplayWidthIgnoresMarks(t *testing.T) {
	if got := displayWidth("بِسْمِ"); got != 3 {
		t.Fatalf("expected 3 cells for a diacritized word, got %d", got)
	}
}

func TestFormatTableIsolatesRightToLeftCells(t *testing.T) {
	headers := []string{"Verse", "Grade"}
	rows := [][]string{
		{"1:1", "ممتاز"},
		{"1:2", "جيد"},
	}

	lines := formatTable(headers, rows, nil)
	if lines[0] != "Verse Grade" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "1:1   \u2068ممتاز\u2069" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "1:2     \u2068جيد\u2069" {
		t.Fatalf("expected right-aligned isolated cell, got %q", lines[2])
	}
}

func TestIsRTL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "ممتاز", want: true},
		{in: "112:1", want: false},
		{in: "haraka", want: false},
		{in: "(بسم)", want: true},
		{in: "a بسم", want: false},
		{in: "", want: false},
	}
	for _, tt := range tests {
		if got := isRTL(tt.in); got != tt.want {
			t.Fatalf("isRTL(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
