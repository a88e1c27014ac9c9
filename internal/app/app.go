package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/argrid/internal/ctxlog"
	"github.com/vk/argrid/internal/manifest"
	"github.com/vk/argrid/internal/opts"
	"github.com/vk/argrid/internal/style"
)

// Handler runs a dispatched command with its parse result.
type Handler func(ctx context.Context, res *opts.Result) error

// App encapsulates the application's dependencies, configuration, and
// lifecycle: manifest, registry, logger, and command handlers.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	manifest *manifest.Manifest
	styler   *style.Styler
	handlers map[string]Handler
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a registry
// populated from the manifest. A manifest that cannot be loaded is a fatal
// startup error and panics; the entrypoint recovers it into a clean exit.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	man, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load manifest: %w", err))
	}
	logger.Debug("Manifest loaded.", "path", cfg.ManifestPath, "commands", len(man.Registry.Commands()))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		manifest: man,
		styler:   style.New(!cfg.NoColor),
		handlers: map[string]Handler{},
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *opts.Registry {
	return a.manifest.Registry
}

// Handle registers a handler for a command name (opts.Root for the default
// command). Without a handler a parsed command falls through to the summary
// printer.
func (a *App) Handle(command string, h Handler) {
	a.handlers[command] = h
}

// Opt returns the resolved value for an option, falling back to the
// manifest-declared default when the command line left it unset.
func (a *App) Opt(res *opts.Result, name string) (opts.Value, bool) {
	if v, ok := res.Opt(name); ok {
		return v, true
	}
	v, ok := a.manifest.Defaults[name]
	return v, ok
}

// Run parses the configured argument vector against the manifest and
// dispatches the outcome. Parse failures print the relevant help screen and
// propagate, so the entrypoint can map them to exit codes.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Parsing argument vector.", "argv", a.config.Argv)

	res, err := opts.Parse(a.manifest.Registry, a.config.Argv)
	if err != nil {
		a.printHelp(opts.Root)
		return err
	}
	if err := res.CheckArguments(); err != nil {
		a.printHelp(res.Command())
		return err
	}
	a.logger.Debug("Parse complete.", "command", res.Command(), "options", len(res.Opts()), "args", len(res.Args()))

	if handler, ok := a.handlers[res.Command()]; ok {
		return handler(ctx, res)
	}
	return a.printSummary(res)
}

// printHelp writes the help screen for a command scope.
func (a *App) printHelp(command string) {
	help := opts.NewHelpRenderer(a.manifest.Registry, a.config.Width, a.styler)
	io.WriteString(a.outW, help.Render(command))
}
