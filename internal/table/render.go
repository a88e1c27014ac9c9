package table

import (
	"strings"

	"github.com/vk/argrid/internal/style"
	"github.com/vk/argrid/internal/textwidth"
)

// Renderer lays out rows of cells into a padded grid. The zero value is not
// usable; construct with NewRenderer.
type Renderer struct {
	width  int
	border string
	styler *style.Styler
}

// NewRenderer returns a Renderer that lays rows out to the given total width,
// separating adjacent columns with border. A nil styler disables color.
func NewRenderer(width int, border string, styler *style.Styler) *Renderer {
	return &Renderer{width: width, border: border, styler: styler}
}

// Format renders rows of cell content into an aligned grid. Every row must
// have one cell per column. colors optionally names a color per column (empty
// entries stay plain); the escapes wrap the text only, so padding and
// alignment are unaffected. Each rendered line is terminated by a line break.
func (r *Renderer) Format(cols []ColumnSpec, rows [][]string, colors []string) string {
	widths := Allocate(cols, r.width, r.border)

	var b strings.Builder
	for _, row := range rows {
		r.formatRow(&b, widths, row, colors)
	}
	return b.String()
}

// FormatRow renders a single row.
func (r *Renderer) FormatRow(cols []ColumnSpec, cells []string, colors []string) string {
	return r.Format(cols, [][]string{cells}, colors)
}

func (r *Renderer) formatRow(b *strings.Builder, widths []int, cells, colors []string) {
	// Wrap each cell to its column width; track the tallest cell.
	wrapped := make([][]string, len(widths))
	height := 1
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		lines := WrapLines(cell, widths[i], true)
		if i < len(colors) && colors[i] != "" {
			for n, line := range lines {
				lines[n] = r.styler.Paint(colors[i], line)
			}
		}
		wrapped[i] = lines
		if len(lines) > height {
			height = len(lines)
		}
	}

	for ln := 0; ln < height; ln++ {
		for i, lines := range wrapped {
			if i > 0 {
				b.WriteString(r.border)
			}
			line := ""
			if ln < len(lines) {
				line = lines[ln]
			}
			b.WriteString(line)
			if pad := widths[i] - textwidth.Width(line); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteString("\n")
	}
}
