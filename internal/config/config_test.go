package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, 0, cfg.SearchLimit)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	assert.Equal(t, ConfigFileName, filepath.Base(path))
	assert.Equal(t, ConfigDirName, filepath.Base(filepath.Dir(path)))
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
format: json
log_level: debug
log_json: true
search_limit: 5
exact_search: true
name_only: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Format:      FormatJSON,
		LogLevel:    "debug",
		LogJSON:     true,
		SearchLimit: 5,
		ExactSearch: true,
		NameOnly:    true,
	}, cfg)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "format: yaml\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "format: [json"},
		{"unknown format", "format: xml"},
		{"bad log level", "log_level: loud"},
		{"negative limit", "search_limit: -1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLevelFallback(t *testing.T) {
	cfg := &Config{LogLevel: "nonsense"}
	assert.Equal(t, logrus.WarnLevel, cfg.Level())
}
