package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name           string
		env            map[string]string
		expectedConfig *Config
		expectErr      bool
	}{
		{
			name: "Defaults",
			expectedConfig: &Config{
				CSVFile:  "data.csv",
				JSONFile: "data.json",
				LogLevel: "info",
			},
		},
		{
			name: "Overrides",
			env: map[string]string{
				"DATA_DIR":       "/srv/data",
				"DATA_CSV_FILE":  "rows.csv",
				"DATA_JSON_FILE": "doc.json",
				"LOG_LEVEL":      "debug",
			},
			expectedConfig: &Config{
				DataDir:  "/srv/data",
				CSVFile:  "rows.csv",
				JSONFile: "doc.json",
				LogLevel: "debug",
			},
		},
		{
			name:      "Invalid log level",
			env:       map[string]string{"LOG_LEVEL": "loud"},
			expectErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{"DATA_DIR", "DATA_CSV_FILE", "DATA_JSON_FILE", "LOG_LEVEL"} {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			cfg, err := LoadConfig()
			if tc.expectErr {
				require.ErrorContains(t, err, "error loading config")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedConfig, cfg)
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{DataDir: dir, CSVFile: "data.csv", JSONFile: "data.json"}

	resolved, err := cfg.ResolveDataDir()
	require.NoError(t, err)
	require.Equal(t, dir, resolved)
	require.Equal(t, filepath.Join(dir, "data.csv"), cfg.CSVPath(resolved))
	require.Equal(t, filepath.Join(dir, "data.json"), cfg.JSONPath(resolved))

	exe, err := os.Executable()
	require.NoError(t, err)

	resolved, err = (&Config{}).ResolveDataDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Dir(exe), resolved)
}

func TestLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, (&Config{LogLevel: "debug"}).Level())
	require.Equal(t, zerolog.InfoLevel, (&Config{LogLevel: "bogus"}).Level())
}
