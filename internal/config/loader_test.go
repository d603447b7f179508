package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/protograph/pkg/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "protograph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ReadsYAMLAndAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
log:
  level: debug
graph:
  cutoff: 6.0
batch:
  workers: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 6.0, cfg.Graph.Cutoff)
	assert.Equal(t, 3, cfg.Batch.Workers)
	// Unset fields receive defaults.
	assert.Equal(t, DefaultOutputSuffix, cfg.Graph.OutputSuffix)
	assert.Equal(t, DefaultFileTimeout, cfg.Batch.FileTimeout)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeSerialization))
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	path := writeConfigFile(t, "graph: [not: a: mapping\n")

	_, err := Load(path)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSerialization))
}

func TestLoad_InvalidCutoffFailsValidation(t *testing.T) {
	path := writeConfigFile(t, `
graph:
  cutoff: -2.5
`)

	_, err := Load(path)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCutoffInvalid))
	assert.Contains(t, err.Error(), "cutoff")
}

func TestLoadFromEnv_UsesEnvironmentOverrides(t *testing.T) {
	t.Setenv("PROTOGRAPH_GRAPH_CUTOFF", "4.25")
	t.Setenv("PROTOGRAPH_BATCH_WORKERS", "2")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 4.25, cfg.Graph.Cutoff)
	assert.Equal(t, 2, cfg.Batch.Workers)
}

func TestLoadFromEnv_DefaultsWithNoEnv(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultCutoff, cfg.Graph.Cutoff)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yaml"))
	})
}
