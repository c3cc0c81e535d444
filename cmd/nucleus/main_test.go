package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nucleus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))
	return path
}

func TestLoadConfig_FlagSpellings(t *testing.T) {
	path := writeConfigFile(t)

	tests := []struct {
		name string
		args []string
	}{
		{"long separate", []string{"--config", path}},
		{"long equals", []string{"--config=" + path}},
		{"short separate", []string{"-c", path}},
		{"short equals", []string{"-c=" + path}},
		{"after subcommand", []string{"task", "list", "--config", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(tt.args)
			require.NoError(t, err)
			assert.Equal(t, "debug", cfg.LogLevel)
		})
	}
}

func TestLoadConfig_NoFlag(t *testing.T) {
	t.Setenv("NUCLEUS_LOG_LEVEL", "warn")

	cfg, err := loadConfig([]string{"task", "list"})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}
