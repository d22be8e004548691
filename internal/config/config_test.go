package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mobileking0827/VossShop/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile_UsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "vosshop.db", cfg.Catalog.Path)
	assert.Equal(t, "./internal/catalog/migrations", cfg.Catalog.MigrationsPath)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "vosshop.log", cfg.LogFile)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vosshop.yaml")
	content := []byte("catalog:\n  path: /tmp/shop.db\ncurrency: EUR\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/shop.db", cfg.Catalog.Path)
	assert.Equal(t, "EUR", cfg.Currency)
	// Untouched keys keep their defaults
	assert.Equal(t, "./internal/catalog/migrations", cfg.Catalog.MigrationsPath)
	assert.Equal(t, "vosshop.log", cfg.LogFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vosshop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: EUR\n"), 0o644))

	t.Setenv("VOSSHOP_CURRENCY", "GBP")
	t.Setenv("VOSSHOP_LOG_FILE", "/tmp/shop.log")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "GBP", cfg.Currency)
	assert.Equal(t, "/tmp/shop.log", cfg.LogFile)
}

func TestLoad_MalformedFile_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vosshop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: [unclosed\n"), 0o644))

	_, err := config.Load(path)

	assert.Error(t, err)
}
