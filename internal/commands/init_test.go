package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	err := runInit(&out, dir, "Riverbend Gallery")
	require.NoError(t, err)

	for _, d := range []string{"import", "exports"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}

	_, err = os.Stat(filepath.Join(dir, "import", ".gitkeep"))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Riverbend Gallery")
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	err := runInit(&out, dir, "My Gallery")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "consign.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: My Gallery")
	assert.Contains(t, contents, "default_rate_percent: 30")
	assert.Contains(t, contents, "format: square")
}

func TestRootCommand(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "process")
}
