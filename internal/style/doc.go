// Package style maps color names to ANSI SGR escape sequences for table and
// help output. Escapes are built directly from gookit/color codes so the
// output is deterministic and independent of any terminal detection; callers
// decide whether color is enabled at all.
package style
