package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vk/argrid/internal/opts"
	"github.com/vk/argrid/internal/table"
)

// summaryCols lays the outcome table out as name / kind / value.
var (
	summaryCols   = []table.ColumnSpec{table.Percent(30), table.Fixed(6), table.Wildcard()}
	summaryColors = []string{"cyan", "gray", ""}
)

// printSummary renders the parse outcome as a table: the selected command,
// every resolved option (manifest defaults included), and the leftover
// positional arguments.
func (a *App) printSummary(res *opts.Result) error {
	command := res.Command()
	if command == opts.Root {
		command = "(root)"
	}
	if _, err := fmt.Fprintf(a.outW, "Command: %s\n", command); err != nil {
		return err
	}

	var rows [][]string
	for _, spec := range a.manifest.Registry.Command(res.Command()).Options() {
		if v, ok := a.Opt(res, spec.Long); ok {
			rows = append(rows, summaryRow("--"+spec.Long, v))
		}
	}
	// Root options resolve even when a command was selected; list them too.
	if res.Command() != opts.Root {
		for _, spec := range a.manifest.Registry.Command(opts.Root).Options() {
			if v, ok := a.Opt(res, spec.Long); ok {
				rows = append(rows, summaryRow("--"+spec.Long, v))
			}
		}
	}
	for i, arg := range res.Args() {
		rows = append(rows, []string{"arg[" + strconv.Itoa(i) + "]", "pos", arg})
	}
	if len(rows) == 0 {
		return nil
	}

	rend := table.NewRenderer(a.config.Width, "  ", a.styler)
	_, err := io.WriteString(a.outW, rend.Format(summaryCols, rows, summaryColors))
	return err
}

func summaryRow(name string, v opts.Value) []string {
	if sv, ok := v.(opts.StringValue); ok {
		return []string{name, "value", sv.Val}
	}
	return []string{name, "flag", "true"}
}
