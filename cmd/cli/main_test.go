package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testManifest = `
help = "test tool"

option "plugins" {
  short = "p"
  help  = "enable plugins"
}

command "status" {
  help = "show status"

  option "long" {
    short = "l"
    help  = "long listing"
  }
}
`

// writeManifest drops a manifest into a temp dir and returns its path.
func writeManifest(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "argrid.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// A manifest with a syntax error panics inside app.NewApp; run must
	// recover it into a clean error.
	path := writeManifest(t, `option "x" {`)
	out := &bytes.Buffer{}

	runErr := run(out, []string{"-m", path})

	require.Error(t, runErr)
	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "the error message should indicate a recovered panic, got %q", errStr)
	require.True(t, strings.Contains(errStr, "manifest"), "the error message should carry the underlying reason, got %q", errStr)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" flag makes cli.Parse report shouldExit=true.
	out := &bytes.Buffer{}

	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "expected help text on the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// An unknown driver flag fails cli.Parse before the app ever starts.
	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown option "--this-is-not-a-valid-flag"`)
}

func TestRun_ParsesTargetArgv(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, testManifest)
	out := &bytes.Buffer{}

	err := run(out, []string{"-m", path, "-w", "60", "--", "-p", "status", "--long", "foo"})

	require.NoError(t, err)
	got := out.String()
	require.Contains(t, got, "Command: status")
	require.Contains(t, got, "--plugins")
	require.Contains(t, got, "--long")
	require.Contains(t, got, "foo")
}
