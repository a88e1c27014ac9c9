package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/argrid/internal/opts"
)

const sampleManifest = `
help = "example tool"

option "exclude" {
  short = "x"
  help  = "exclude entries matching a pattern"
  arg   = "PATTERN"
}

option "plugins" {
  short   = "p"
  help    = "enable plugins"
  default = true
}

option "format" {
  help    = "output format"
  arg     = "FMT"
  default = "table"
}

command "status" {
  help = "show working tree status"

  option "long" {
    short = "l"
    help  = "long listing"
  }

  argument "path" {
    help     = "path to inspect"
    required = false
  }
}
`

func TestParseManifest(t *testing.T) {
	m, err := Parse([]byte(sampleManifest), "sample.hcl")
	require.NoError(t, err)

	assert.Equal(t, "example tool", m.Help)
	assert.Equal(t, "example tool", m.Registry.Command(opts.Root).Help)

	t.Run("root options", func(t *testing.T) {
		exclude := m.Registry.Command(opts.Root).Option("exclude")
		require.NotNil(t, exclude)
		assert.Equal(t, "x", exclude.Short)
		assert.True(t, exclude.TakesArg())
		assert.Equal(t, "PATTERN", exclude.ArgLabel)
	})

	t.Run("command scope", func(t *testing.T) {
		status := m.Registry.Command("status")
		require.NotNil(t, status)
		assert.Equal(t, "show working tree status", status.Help)
		assert.NotNil(t, status.Option("long"))
		assert.Nil(t, status.Option("plugins"), "root options do not leak into commands")

		args := status.Arguments()
		require.Len(t, args, 1)
		assert.Equal(t, "path", args[0].Name)
		assert.False(t, args[0].Required)
	})

	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, opts.Flag{}, m.Defaults["plugins"])
		assert.Equal(t, opts.StringValue{Val: "table"}, m.Defaults["format"])
		_, ok := m.Defaults["exclude"]
		assert.False(t, ok)
	})
}

func TestParseManifestFeedsParser(t *testing.T) {
	m, err := Parse([]byte(sampleManifest), "sample.hcl")
	require.NoError(t, err)

	res, err := opts.Parse(m.Registry, []string{"-p", "status", "--long", "foo"})
	require.NoError(t, err)
	assert.Equal(t, "status", res.Command())
	assert.True(t, res.Bool("plugins"))
	assert.True(t, res.Bool("long"))
	assert.Equal(t, []string{"foo"}, res.Args())
}

func TestParseManifestErrors(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		_, err := Parse([]byte(`option "x" {`), "broken.hcl")
		require.Error(t, err)
	})

	t.Run("duplicate command", func(t *testing.T) {
		src := `
command "status" {}
command "status" {}
`
		_, err := Parse([]byte(src), "dup.hcl")
		var cfgErr *opts.ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("bad short declaration", func(t *testing.T) {
		src := `
option "verbose" {
  short = "vv"
}
`
		_, err := Parse([]byte(src), "short.hcl")
		var shortErr *opts.ShortDeclError
		require.ErrorAs(t, err, &shortErr)
	})

	t.Run("numeric default converts to string", func(t *testing.T) {
		src := `
option "level" {
  arg     = "N"
  default = 3
}
`
		m, err := Parse([]byte(src), "num.hcl")
		require.NoError(t, err)
		assert.Equal(t, opts.StringValue{Val: "3"}, m.Defaults["level"])
	})

	t.Run("false default means no default", func(t *testing.T) {
		src := `
option "quiet" {
  default = false
}
`
		m, err := Parse([]byte(src), "false.hcl")
		require.NoError(t, err)
		_, ok := m.Defaults["quiet"]
		assert.False(t, ok)
	})
}

func TestLoadManifestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "argrid.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, m.Registry.Command("status"))

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.hcl"))
		require.Error(t, err)
	})
}
