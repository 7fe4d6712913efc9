// Package config provides configuration management for the SuperFaktura
// tooling. It loads configuration from environment variables and .env files.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names for the SuperFaktura credentials. All four
// are mandatory for API access.
const (
	EnvAPIKey    = "SUPERFAKTURA_API_KEY"
	EnvAPIURL    = "SUPERFAKTURA_API_URL"
	EnvEmail     = "SUPERFAKTURA_API_EMAIL"
	EnvCompanyID = "SUPERFAKTURA_API_COMPANY_ID"
)

// Config represents the application configuration.
type Config struct {
	SuperFaktura SuperFakturaConfig
	Archive      ArchiveConfig
	Debug        bool
}

// SuperFakturaConfig holds the SuperFaktura API credentials.
type SuperFakturaConfig struct {
	APIKey    string
	APIURL    string
	Email     string
	CompanyID string
}

// ArchiveConfig holds the local issuance archive settings used by the CLI.
type ArchiveConfig struct {
	Root         string
	DBPath       string
	DocumentsDir string
}

// Load loads configuration from environment variables. It automatically
// loads a .env file from the current directory if available; a custom
// .env path can be supplied instead.
//
// Load does not validate the credentials: missing values surface as a
// MissingCredentialsError when the API client is constructed.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, err
		}
	} else {
		// A missing default .env is fine; plain env vars still apply.
		_ = godotenv.Load()
	}

	config := &Config{
		SuperFaktura: SuperFakturaConfig{
			APIKey:    os.Getenv(EnvAPIKey),
			APIURL:    os.Getenv(EnvAPIURL),
			Email:     os.Getenv(EnvEmail),
			CompanyID: os.Getenv(EnvCompanyID),
		},
		Archive: ArchiveConfig{
			Root:         getEnvOrDefault("SFAKTURA_ARCHIVE_ROOT", "./archive"),
			DBPath:       os.Getenv("SFAKTURA_ARCHIVE_DB_PATH"),
			DocumentsDir: os.Getenv("SFAKTURA_ARCHIVE_DOCUMENTS_DIR"),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// getEnvOrDefault returns the value of the environment variable or a
// default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
