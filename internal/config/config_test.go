package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
	assert.False(t, cfg.Timestamps())
	assert.True(t, cfg.Color())
	assert.True(t, cfg.Symbols())
	assert.Zero(t, cfg.Census.Workers)
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
log {
  level      = "debug"
  timestamps = true
}

output {
  color   = false
  symbols = false
}

census {
  workers = 3
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
	assert.True(t, cfg.Timestamps())
	assert.False(t, cfg.Color())
	assert.False(t, cfg.Symbols())
	assert.Equal(t, 3, cfg.Census.Workers)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
output {
  color = false
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Color())
	assert.True(t, cfg.Symbols())
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load(writeConfig(t, `log {`))
	require.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Load(writeConfig(t, `unknown = 1`))
	require.ErrorContains(t, err, "failed to decode HCL")

	_, err = Load(writeConfig(t, `census { workers = "many" }`))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	require.ErrorContains(t, cfg.Validate(), "invalid log level")

	cfg = Default()
	cfg.Census.Workers = -1
	require.ErrorContains(t, cfg.Validate(), "cannot be negative")
}
