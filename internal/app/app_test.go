package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/argrid/internal/opts"
)

const testManifest = `
help = "test tool"

option "exclude" {
  short = "x"
  help  = "exclude pattern"
  arg   = "PATTERN"
}

option "plugins" {
  short   = "p"
  help    = "enable plugins"
}

option "format" {
  help    = "output format"
  arg     = "FMT"
  default = "table"
}

command "status" {
  help = "show status"

  option "long" {
    short = "l"
    help  = "long listing"
  }

  argument "target" {
    help = "what to inspect"
  }
}
`

func newTestApp(t *testing.T, argv []string) (*App, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "argrid.hcl")
	require.NoError(t, os.WriteFile(path, []byte(testManifest), 0600))

	out := &bytes.Buffer{}
	cfg, err := NewConfig(Config{
		ManifestPath: path,
		LogLevel:     "error",
		LogFormat:    "text",
		NoColor:      true,
		Width:        60,
		Argv:         argv,
	})
	require.NoError(t, err)
	return NewApp(out, cfg), out
}

func TestNewConfig(t *testing.T) {
	t.Run("manifest path is required", func(t *testing.T) {
		_, err := NewConfig(Config{Width: 80})
		require.Error(t, err)
	})

	t.Run("width must be positive", func(t *testing.T) {
		_, err := NewConfig(Config{ManifestPath: "x.hcl"})
		require.Error(t, err)
	})
}

func TestNewAppPanicsOnBadManifest(t *testing.T) {
	cfg, err := NewConfig(Config{ManifestPath: "does-not-exist.hcl", Width: 80})
	require.NoError(t, err)
	assert.Panics(t, func() { NewApp(&bytes.Buffer{}, cfg) })
}

func TestRunDispatchesHandler(t *testing.T) {
	a, _ := newTestApp(t, []string{"-p", "status", "--long", "work"})

	var got *opts.Result
	a.Handle("status", func(ctx context.Context, res *opts.Result) error {
		got = res
		return nil
	})

	require.NoError(t, a.Run(context.Background()))
	require.NotNil(t, got)
	assert.Equal(t, "status", got.Command())
	assert.True(t, got.Bool("plugins"))
	assert.True(t, got.Bool("long"))
	assert.Equal(t, []string{"work"}, got.Args())
}

func TestRunPrintsSummaryWithoutHandler(t *testing.T) {
	a, out := newTestApp(t, []string{"-x", "vendor", "status", "--long", "work"})

	require.NoError(t, a.Run(context.Background()))
	got := out.String()
	assert.Contains(t, got, "Command: status")
	assert.Contains(t, got, "--long")
	assert.Contains(t, got, "--exclude")
	assert.Contains(t, got, "vendor")
	assert.Contains(t, got, "--format", "manifest default should resolve")
	assert.Contains(t, got, "work")
}

func TestRunParseFailurePrintsHelp(t *testing.T) {
	a, out := newTestApp(t, []string{"--bogus"})

	err := a.Run(context.Background())
	var unknown *opts.UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, out.String(), "Options:", "help screen should be printed on parse failure")
}

func TestRunArgumentCountFailure(t *testing.T) {
	// status requires a target argument.
	a, out := newTestApp(t, []string{"status"})

	err := a.Run(context.Background())
	var count *opts.ArgCountError
	require.ErrorAs(t, err, &count)
	assert.Contains(t, out.String(), "<target>", "command help should be printed")
}

func TestOptFallsBackToManifestDefault(t *testing.T) {
	a, _ := newTestApp(t, []string{})

	res, err := opts.Parse(a.Registry(), []string{})
	require.NoError(t, err)

	v, ok := a.Opt(res, "format")
	require.True(t, ok)
	assert.Equal(t, opts.StringValue{Val: "table"}, v)

	res, err = opts.Parse(a.Registry(), []string{"--format", "json"})
	require.NoError(t, err)
	v, ok = a.Opt(res, "format")
	require.True(t, ok)
	assert.Equal(t, opts.StringValue{Val: "json"}, v)
}

func TestRunSummaryIdempotent(t *testing.T) {
	a1, out1 := newTestApp(t, []string{"-p", "extra"})
	a2, out2 := newTestApp(t, []string{"-p", "extra"})

	require.NoError(t, a1.Run(context.Background()))
	require.NoError(t, a2.Run(context.Background()))
	assert.Equal(t, out1.String(), out2.String())
}
