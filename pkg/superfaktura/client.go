// Package superfaktura provides a client for the SuperFaktura invoicing API.
//
// The client issues authenticated HTTP requests against the configured API
// base URL and maps the loosely-typed JSON payloads the service exchanges
// onto typed records. Credentials are usually sourced from the environment
// via NewClientFromEnv; see pkg/config for the variable names.
package superfaktura

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single API round trip unless overridden in
// ClientConfig.
const DefaultTimeout = 5 * time.Second

// ClientConfig represents the configuration for the SuperFaktura API client.
type ClientConfig struct {
	APIKey    string
	APIURL    string
	Email     string
	CompanyID string
	Timeout   time.Duration // Default: 5 seconds
}

// Client is a SuperFaktura API client. All requests share one composed URL
// form <base_url>/<endpoint> and the same Authorization header. The client
// performs exactly one HTTP round trip per operation: no retries, no
// caching.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authHeader string

	// Resource services.
	Invoices     *InvoiceService
	Clients      *ClientContactService
	BankAccounts *BankAccountService
	Countries    *CountryService
}

// NewClient creates a new SuperFaktura API client. It fails with a
// *MissingCredentialsError if any of the four credentials is empty; no
// network call is made during construction.
func NewClient(config ClientConfig) (*Client, error) {
	var missing []string
	if config.APIKey == "" {
		missing = append(missing, "api key")
	}
	if config.APIURL == "" {
		missing = append(missing, "api url")
	}
	if config.Email == "" {
		missing = append(missing, "email")
	}
	if config.CompanyID == "" {
		missing = append(missing, "company id")
	}
	if len(missing) > 0 {
		return nil, &MissingCredentialsError{Missing: missing}
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(config.APIURL, "/"),
		authHeader: fmt.Sprintf("SFAPI email=%s&apikey=%s&company_id=%s",
			config.Email, config.APIKey, config.CompanyID),
	}
	c.Invoices = &InvoiceService{api: c}
	c.Clients = &ClientContactService{api: c}
	c.BankAccounts = &BankAccountService{api: c}
	c.Countries = &CountryService{api: c}
	return c, nil
}

// Get retrieves data from the given API endpoint and decodes it as JSON.
// The result is the decoded JSON value (object or array). A non-200 status
// is returned as *APIError; a body that is not valid JSON as *DecodeError.
func (c *Client) Get(endpoint string) (interface{}, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, endpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	return decoded, nil
}

// GetObject is like Get but requires the decoded value to be a JSON object.
func (c *Client) GetObject(endpoint string) (map[string]interface{}, error) {
	decoded, err := c.Get(endpoint)
	if err != nil {
		return nil, err
	}
	obj, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, &DecodeError{
			Body: nil,
			Err:  fmt.Errorf("expected a JSON object, got %T", decoded),
		}
	}
	return obj, nil
}

// Post creates or updates data at the given API endpoint. The service
// expects form-encoded submission rather than a raw JSON body: the
// JSON-encoded payload is placed under a single form field named "data".
func (c *Client) Post(endpoint string, data string) (map[string]interface{}, error) {
	form := url.Values{}
	form.Set("data", data)

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("%s/%s", c.baseURL, endpoint), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	return decoded, nil
}

// Download retrieves a binary document (e.g. a rendered PDF) from the given
// endpoint and writes the raw response bytes into w. The body is buffered
// and written in a single call, so a failing sink receives no partial
// output; a write failure is reported as *APIError.
func (c *Client) Download(endpoint string, w io.Writer) error {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, endpoint), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	if _, err := w.Write(body); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("sink is not writable: %v", err),
		}
	}
	return nil
}
