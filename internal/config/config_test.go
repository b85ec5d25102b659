package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs so host
// config files cannot leak into the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.True(t, cfg.CSV.IncludeHeaders)
	assert.Empty(t, cfg.Classifier.KeywordsFile)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	content := "log:\n  level: debug\ncsv:\n  delimiter: \";\"\n"
	require.NoError(t, os.WriteFile("config.yaml", []byte(content), 0o600))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
	// Untouched keys keep their defaults.
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("BANKPARSE_LOG_LEVEL", "warn")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("BANKPARSE_LOG_LEVEL", "verbose")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.CSV.Delimiter = ","
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "logfmt" },
			wantErr: "unknown log format",
		},
		{
			name:    "empty delimiter",
			mutate:  func(c *Config) { c.CSV.Delimiter = "" },
			wantErr: "delimiter must be a single character",
		},
		{
			name:    "multi-character delimiter",
			mutate:  func(c *Config) { c.CSV.Delimiter = ",," },
			wantErr: "delimiter must be a single character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDelimiterRune(t *testing.T) {
	cfg := &Config{}
	cfg.CSV.Delimiter = ";"
	assert.Equal(t, ';', cfg.Delimiter())
}
