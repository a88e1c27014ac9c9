package style

import (
	"fmt"

	"github.com/gookit/color"
)

// reset closes all SGR properties.
const reset = "\x1b[0m"

// names maps the color names accepted in help/table definitions to their
// SGR codes.
var names = map[string]color.Color{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"gray":    color.FgDarkGray,
	"bold":    color.Bold,
}

// Styler paints text with named colors. The zero value paints nothing.
type Styler struct {
	// Enabled controls whether Paint emits escape sequences at all. Leave it
	// false for NO_COLOR environments or non-terminal output.
	Enabled bool
}

// New returns a Styler.
func New(enabled bool) *Styler {
	return &Styler{Enabled: enabled}
}

// Sequence returns the SGR escape sequence for a color name, or the empty
// string if the name is unknown.
func Sequence(name string) string {
	c, ok := names[name]
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[%sm", c.Code())
}

// Paint wraps text in the named escape sequence plus a reset. Unknown names
// and disabled stylers return the text unchanged.
func (s *Styler) Paint(name, text string) string {
	if s == nil || !s.Enabled || text == "" {
		return text
	}
	seq := Sequence(name)
	if seq == "" {
		return text
	}
	return seq + text + reset
}
