package stats

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	terminalWidthBackup = 80
	colorReset          = "\x1b[0m"
)

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// ShouldUseColor reports whether w is a terminal and NO_COLOR is unset.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
