package superfaktura

import (
	"github.com/openbilling/superfaktura-go/pkg/config"
)

// NewClientFromEnv constructs a client from the SUPERFAKTURA_* environment
// variables (and a .env file when present). It fails with a
// *MissingCredentialsError naming the absent variables.
func NewClientFromEnv(envPath ...string) (*Client, error) {
	cfg, err := config.Load(envPath...)
	if err != nil {
		return nil, err
	}
	return NewClientFromConfig(cfg.SuperFaktura)
}

// NewClientFromConfig constructs a client from resolved credentials. The
// reported missing-credential names are the environment variable names.
func NewClientFromConfig(creds config.SuperFakturaConfig) (*Client, error) {
	var missing []string
	if creds.APIKey == "" {
		missing = append(missing, config.EnvAPIKey)
	}
	if creds.APIURL == "" {
		missing = append(missing, config.EnvAPIURL)
	}
	if creds.Email == "" {
		missing = append(missing, config.EnvEmail)
	}
	if creds.CompanyID == "" {
		missing = append(missing, config.EnvCompanyID)
	}
	if len(missing) > 0 {
		return nil, &MissingCredentialsError{Missing: missing}
	}
	return NewClient(ClientConfig{
		APIKey:    creds.APIKey,
		APIURL:    creds.APIURL,
		Email:     creds.Email,
		CompanyID: creds.CompanyID,
	})
}
