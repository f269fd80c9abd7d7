package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDataDir, EnvStore, EnvCatalog, EnvPort, EnvHost, EnvResultsLimit, EnvLogLevel, EnvLogFormat} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"data_dir": "/var/lib/planner",
		"store": "sqlite",
		"port": 9000,
		"results_limit": 3,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/var/lib/planner", cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 3, cfg.ResultsLimit)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	catalogFile := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(catalogFile, []byte(`{}`), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "empty", cfg: Config{}},
		{name: "existing catalog", cfg: Config{CatalogPath: catalogFile}},
		{name: "hostname", cfg: Config{Host: "localhost"}},
		{name: "unknown store", cfg: Config{Store: "postgres"}, wantErr: "invalid store"},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: "invalid port"},
		{name: "negative limit", cfg: Config{ResultsLimit: -1}, wantErr: "invalid results_limit"},
		{name: "log format", cfg: Config{LogFormat: "xml"}, wantErr: "invalid log_format"},
		{name: "missing catalog", cfg: Config{CatalogPath: "/nonexistent/catalog.json"}, wantErr: "catalog file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Store: "sqlite", Port: 9000}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "sqlite", merged.Store)
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "./data", merged.DataDir)
	assert.Equal(t, "127.0.0.1", merged.Host)
	assert.Equal(t, 8, merged.ResultsLimit)
	assert.Equal(t, "pretty", merged.LogFormat)
	assert.Empty(t, cfg.DataDir, "receiver must not change")
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStore, "sqlite")
	t.Setenv(EnvPort, "9100")
	t.Setenv(EnvResultsLimit, "not-a-number")
	t.Setenv(EnvLogFormat, "json")

	cfg := FromEnv()

	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, 9100, cfg.Port)
	assert.Zero(t, cfg.ResultsLimit)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.DataDir)
}

func TestResolve_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"store": "sqlite", "port": 9000, "data_dir": "/tmp/from-file", "verbose": true}`)
	t.Setenv(EnvPort, "9200")

	cfg, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Port, "env wins over file")
	assert.Equal(t, "sqlite", cfg.Store, "file wins over defaults")
	assert.Equal(t, "/tmp/from-file", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "127.0.0.1:9200", cfg.Addr())
}

func TestResolve_NoFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
}

func TestResolve_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStore, "redis")

	_, err := Resolve("")
	assert.Error(t, err)
}
