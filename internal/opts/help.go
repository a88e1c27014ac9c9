package opts

import (
	"strings"

	"github.com/vk/argrid/internal/style"
	"github.com/vk/argrid/internal/table"
	"github.com/vk/argrid/internal/textwidth"
)

// HelpRenderer assembles help screens from a Registry by composing table
// renders. Output is deterministic: the same registry state always yields
// byte-identical text.
type HelpRenderer struct {
	reg    *Registry
	width  int
	styler *style.Styler
}

// NewHelpRenderer returns a HelpRenderer targeting the given display width.
// A nil styler produces uncolored help.
func NewHelpRenderer(reg *Registry, width int, styler *style.Styler) *HelpRenderer {
	return &HelpRenderer{reg: reg, width: width, styler: styler}
}

// Render builds the help screen for a command (Root for the program-level
// screen, which also lists the sub-commands). Unknown commands render
// nothing.
func (h *HelpRenderer) Render(command string) string {
	cmd := h.reg.Command(command)
	if cmd == nil {
		return ""
	}

	var b strings.Builder

	if cmd.Help != "" {
		b.WriteString(table.Wrap(cmd.Help, h.width, "\n", false))
		b.WriteString("\n")
	}

	if options := cmd.Options(); len(options) > 0 {
		rows := make([][2]string, 0, len(options))
		for _, o := range options {
			rows = append(rows, [2]string{invocation(o), o.Help})
		}
		h.section(&b, "Options:", rows)
	}

	if args := cmd.Arguments(); len(args) > 0 {
		rows := make([][2]string, 0, len(args))
		for _, a := range args {
			rows = append(rows, [2]string{argLabel(a), a.Help})
		}
		h.section(&b, "Arguments:", rows)
	}

	if command == Root {
		if commands := h.reg.Commands(); len(commands) > 0 {
			rows := make([][2]string, 0, len(commands))
			for _, c := range commands {
				rows = append(rows, [2]string{c.Name, c.Help})
			}
			h.section(&b, "Commands:", rows)
		}
	}

	return b.String()
}

// section lays out name/description pairs under a title. The name column is
// sized to its widest entry so descriptions line up; descriptions wrap in a
// wildcard column.
func (h *HelpRenderer) section(b *strings.Builder, title string, rows [][2]string) {
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")

	nameWidth := 0
	for _, row := range rows {
		if w := textwidth.Width(row[0]); w > nameWidth {
			nameWidth = w
		}
	}

	cols := []table.ColumnSpec{table.Fixed(2), table.Fixed(nameWidth), table.Wildcard()}
	colors := []string{"", "yellow", ""}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{"", row[0], row[1]}
	}

	rend := table.NewRenderer(h.width, "  ", h.styler)
	b.WriteString(rend.Format(cols, cells, colors))
}

// invocation renders an option's invocation forms, e.g. "-x, --exclude <PAT>".
func invocation(o *OptionSpec) string {
	s := "--" + o.Long
	if o.Short != "" {
		s = "-" + o.Short + ", " + s
	}
	if o.TakesArg() {
		s += " <" + o.ArgLabel + ">"
	}
	return s
}

// argLabel renders a positional argument as <name> when required, [name]
// otherwise.
func argLabel(a ArgSpec) string {
	if a.Required {
		return "<" + a.Name + ">"
	}
	return "[" + a.Name + "]"
}
