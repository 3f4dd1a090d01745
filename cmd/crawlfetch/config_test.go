package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "app.toml", configPath([]string{"--config", "app.toml", "https://example.com"}))
	assert.Equal(t, "app.toml", configPath([]string{"--config=app.toml", "https://example.com"}))
	assert.Equal(t, "", configPath([]string{"https://example.com"}))
	assert.Equal(t, "", configPath([]string{"--config"}))
}

func TestTomlResolver(t *testing.T) {
	t.Parallel()

	newParser := func(t *testing.T, cli *CLI, resolver kong.Resolver) *kong.Kong {
		t.Helper()
		parser, err := kong.New(cli, kong.Resolvers(resolver), kong.Exit(func(int) {}))
		require.NoError(t, err)
		return parser
	}

	t.Run("supplies flag defaults from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "app.toml")
		require.NoError(t, os.WriteFile(path, []byte("depth = 3\nmarkdown = true\nrps = 0.5\n"), 0o644))

		resolver, err := tomlResolver(path)
		require.NoError(t, err)

		cli := &CLI{}
		_, err = newParser(t, cli, resolver).Parse([]string{"https://example.com"})
		require.NoError(t, err)

		assert.Equal(t, 3, cli.Depth)
		assert.True(t, cli.Markdown)
		assert.Equal(t, 0.5, cli.RPS)
	})

	t.Run("command line flags override config values", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "app.toml")
		require.NoError(t, os.WriteFile(path, []byte("depth = 3\n"), 0o644))

		resolver, err := tomlResolver(path)
		require.NoError(t, err)

		cli := &CLI{}
		_, err = newParser(t, cli, resolver).Parse([]string{"--depth", "7", "https://example.com"})
		require.NoError(t, err)

		assert.Equal(t, 7, cli.Depth)
	})

	t.Run("rejects malformed TOML", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("depth = = 3"), 0o644))

		_, err := tomlResolver(path)
		assert.Error(t, err)
	})

	t.Run("rejects missing file", func(t *testing.T) {
		t.Parallel()

		_, err := tomlResolver("/does/not/exist.toml")
		assert.Error(t, err)
	})
}
