package config

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

type Config struct {
	DataDir  string `envconfig:"DATA_DIR"`
	CSVFile  string `envconfig:"DATA_CSV_FILE" default:"data.csv"`
	JSONFile string `envconfig:"DATA_JSON_FILE" default:"data.json"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var config Config

	if err := envconfig.Process("", &config); err != nil {
		return nil, xerrors.Errorf("error loading config: %w", err)
	}

	if _, err := zerolog.ParseLevel(config.LogLevel); err != nil {
		return nil, xerrors.Errorf("error loading config: invalid LOG_LEVEL %q: %w", config.LogLevel, err)
	}

	return &config, nil
}

// ResolveDataDir returns DataDir, or the directory of the running
// executable when DataDir is unset.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return filepath.Abs(c.DataDir)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", xerrors.Errorf("failed to locate executable: %w", err)
	}

	return filepath.Dir(exe), nil
}

func (c *Config) CSVPath(dir string) string {
	return filepath.Join(dir, c.CSVFile)
}

func (c *Config) JSONPath(dir string) string {
	return filepath.Join(dir, c.JSONFile)
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
