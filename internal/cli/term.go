package cli

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth is the render width used when the terminal size cannot be
// determined.
const DefaultWidth = 80

// TermWidth returns the display width help and tables should render to: the
// COLUMNS environment variable when set, otherwise the width of the attached
// terminal, otherwise DefaultWidth.
func TermWidth() int {
	if env := os.Getenv("COLUMNS"); env != "" {
		if w, err := strconv.Atoi(env); err == nil && w > 0 {
			return w
		}
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}
