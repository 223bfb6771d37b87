package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDemo_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadDemo(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultDemo(), cfg)
}

func TestLoadDemo_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	data := []byte(`capacity: 8
seeds:
  - identifier: 1
    quantity: 3
    slot: 0
  - identifier: 2
    quantity: 1
    slot: -1
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadDemo(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Capacity)
	require.Len(t, cfg.Seeds, 2)
	assert.Equal(t, Seed{Identifier: 1, Quantity: 3, Slot: 0}, cfg.Seeds[0])
	assert.Equal(t, Seed{Identifier: 2, Quantity: 1, Slot: -1}, cfg.Seeds[1])
}

func TestLoadDemo_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("capacity: [not an int"), 0o644))

	_, err := LoadDemo(path)
	assert.Error(t, err)
}
