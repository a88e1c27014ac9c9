package textwidth

import (
	"regexp"
	"unicode/utf8"
)

// sgrPattern matches ANSI SGR escape sequences (e.g. \x1b[32m, \x1b[1;31m).
var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Strip returns s with all ANSI SGR escape sequences removed.
func Strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// Width returns the display width of s in terminal columns. Escape sequences
// are skipped entirely and every remaining code point occupies one column,
// regardless of its UTF-8 byte length.
func Width(s string) int {
	return utf8.RuneCountInString(Strip(s))
}
