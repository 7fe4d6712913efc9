package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbilling/superfaktura-go/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "test_key")
	t.Setenv(config.EnvAPIURL, "https://api.superfaktura.test")
	t.Setenv(config.EnvEmail, "test_email")
	t.Setenv(config.EnvCompanyID, "test_company_id")
	t.Setenv("SFAKTURA_ARCHIVE_ROOT", "/tmp/archive")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "test_key", cfg.SuperFaktura.APIKey)
	assert.Equal(t, "https://api.superfaktura.test", cfg.SuperFaktura.APIURL)
	assert.Equal(t, "test_email", cfg.SuperFaktura.Email)
	assert.Equal(t, "test_company_id", cfg.SuperFaktura.CompanyID)
	assert.Equal(t, "/tmp/archive", cfg.Archive.Root)
}

func TestLoadArchiveDefaults(t *testing.T) {
	t.Setenv("SFAKTURA_ARCHIVE_ROOT", "")
	t.Setenv("SFAKTURA_ARCHIVE_DB_PATH", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "./archive", cfg.Archive.Root)
	assert.Empty(t, cfg.Archive.DBPath)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := config.Load("no-such-file.env")
	assert.Error(t, err)
}
