package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "time", cfg.Transaction.IDStrategy)
	assert.Empty(t, cfg.File)
}

func TestLoad_FromSearchDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "logger:\n  level: debug\ntransaction:\n  idStrategy: uuid\n")

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "uuid", cfg.Transaction.IDStrategy)
	assert.Equal(t, "config.yaml", filepath.Base(cfg.File))
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bankops.yml", "logger:\n  level: error\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logger.Level)
	assert.Equal(t, "time", cfg.Transaction.IDStrategy)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "logger:\n  level: debug\n")
	t.Setenv("BANKOPS_LOGGER_LEVEL", "warn")
	t.Setenv("BANKOPS_TRANSACTION_IDSTRATEGY", "uuid")

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "uuid", cfg.Transaction.IDStrategy)
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "log level", content: "logger:\n  level: verbose\n"},
		{name: "id strategy", content: "transaction:\n  idStrategy: sequence\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "config.yaml", tt.content)

			cfg, err := Load(dir)

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "logger: [unterminated\n")

	_, err := Load(dir)

	assert.Error(t, err)
}
