// Package textwidth measures the visual width of strings destined for a
// terminal. ANSI SGR escape sequences contribute zero columns and every
// remaining Unicode code point counts as exactly one column. It is the single
// width authority for the table package; padding and wrapping decisions must
// never measure strings any other way.
package textwidth
