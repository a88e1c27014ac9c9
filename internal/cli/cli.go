package cli

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/vk/argrid/internal/app"
	"github.com/vk/argrid/internal/opts"
)

// driverHelp is the root help text for the argrid binary itself.
const driverHelp = `argrid - declarative argv parsing and table-formatted help.

Usage:
  argrid [options] [--] <argv ...>

Loads a command manifest, parses the remaining tokens against it, and prints
the outcome. Driver options:`

// driverRegistry declares the driver's own option surface, parsed with the
// same machinery it demonstrates.
func driverRegistry() *opts.Registry {
	r := opts.NewRegistry()
	// Registration of literals cannot fail; a mistake here is a programmer
	// error worth crashing on.
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(r.RegisterOption(opts.Root, opts.OptionSpec{Long: "manifest", Short: "m", Help: "path to the command manifest", ArgLabel: "PATH"}))
	must(r.RegisterOption(opts.Root, opts.OptionSpec{Long: "width", Short: "w", Help: "render width in columns (default: terminal width)", ArgLabel: "COLS"}))
	must(r.RegisterOption(opts.Root, opts.OptionSpec{Long: "log-level", Help: "logging level: debug, info, warn, error", ArgLabel: "LEVEL"}))
	must(r.RegisterOption(opts.Root, opts.OptionSpec{Long: "log-format", Help: "log output format: text or json", ArgLabel: "FORMAT"}))
	must(r.RegisterOption(opts.Root, opts.OptionSpec{Long: "no-color", Help: "disable colored output"}))
	must(r.RegisterOption(opts.Root, opts.OptionSpec{Long: "help", Short: "h", Help: "print this help and exit"}))
	return r
}

// Parse processes the driver's command-line arguments. It returns a
// populated app config, a boolean indicating the program should exit
// cleanly, or an ExitError carrying the matching exit code.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	reg := driverRegistry()

	res, err := opts.Parse(reg, args)
	if err != nil {
		return nil, false, &ExitError{Code: ExitCode(err), Message: err.Error()}
	}
	slog.Debug("Driver arguments parsed successfully.")

	width := TermWidth()
	if colsStr, ok := res.String("width"); ok {
		cols, err := strconv.Atoi(colsStr)
		if err != nil || cols < 1 {
			return nil, false, &ExitError{Code: ExitUnspecified, Message: "invalid width: must be a positive integer"}
		}
		width = cols
	}

	if res.Bool("help") {
		printUsage(output, reg, width)
		return nil, true, nil
	}

	manifestPath := "argrid.hcl"
	if p, ok := res.String("manifest"); ok {
		manifestPath = p
	}

	logLevel := "info"
	if lvl, ok := res.String("log-level"); ok {
		logLevel = lvl
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUnspecified, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	logFormat := "text"
	if f, ok := res.String("log-format"); ok {
		logFormat = f
	}
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUnspecified, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	slog.Debug("Driver parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ManifestPath: manifestPath,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		NoColor:      res.Bool("no-color") || os.Getenv("NO_COLOR") != "",
		Width:        width,
		Argv:         res.Args(),
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUnspecified, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "manifest", config.ManifestPath, "width", config.Width)
	return config, false, nil
}

// printUsage renders the driver's own help screen.
func printUsage(output io.Writer, reg *opts.Registry, width int) {
	io.WriteString(output, driverHelp)
	io.WriteString(output, "\n")
	io.WriteString(output, opts.NewHelpRenderer(reg, width, nil).Render(opts.Root))
}
