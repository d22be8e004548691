package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the app needs at startup. Values come from
// defaults, then an optional YAML file, then environment variables, with
// each layer overriding the previous one.
type Config struct {
	Catalog  CatalogConfig `yaml:"catalog"`
	Currency string        `yaml:"currency"`
	LogFile  string        `yaml:"log_file"`
}

type CatalogConfig struct {
	Path           string `yaml:"path"`
	MigrationsPath string `yaml:"migrations_path"`
}

func defaults() Config {
	return Config{
		Catalog: CatalogConfig{
			Path:           "vosshop.db",
			MigrationsPath: "./internal/catalog/migrations",
		},
		Currency: "USD",
		LogFile:  "vosshop.log",
	}
}

// Load reads the YAML file at path when it exists, then applies
// environment overrides. A missing file is not an error; a malformed
// one is.
func Load(path string) (Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults plus environment only
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Catalog.Path = getEnv("VOSSHOP_DB_PATH", cfg.Catalog.Path)
	cfg.Catalog.MigrationsPath = getEnv("VOSSHOP_MIGRATIONS_PATH", cfg.Catalog.MigrationsPath)
	cfg.Currency = getEnv("VOSSHOP_CURRENCY", cfg.Currency)
	cfg.LogFile = getEnv("VOSSHOP_LOG_FILE", cfg.LogFile)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
