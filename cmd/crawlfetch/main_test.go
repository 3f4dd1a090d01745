package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/crawlkit/cmd/crawlfetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "crawlfetch")
	assert.Contains(t, stdout.String(), "url")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--nope", "https://example.com"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_MissingConfigFile(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--config", "/does/not/exist.toml", "https://example.com"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")
}
