package superfaktura

import (
	"errors"
	"fmt"
	"strings"
)

// ErrClientNotFound is returned when a client-contact lookup succeeds at
// the HTTP level but the response carries no Client payload.
var ErrClientNotFound = errors.New("superfaktura: client not found")

// ErrNoDefaultBankAccount is returned when the bank account list contains
// no account flagged as default.
var ErrNoDefaultBankAccount = errors.New("superfaktura: no default bank account found")

// MissingCredentialsError is returned by NewClient when one or more of the
// four required credentials is absent. It is raised before any network
// activity takes place.
type MissingCredentialsError struct {
	Missing []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("superfaktura: missing credentials: %s (see README.md)",
		strings.Join(e.Missing, ", "))
}

// APIError describes a failed call to the SuperFaktura API: any non-200
// status, or an unusable download sink. Body holds the raw response body
// for diagnostics.
type APIError struct {
	StatusCode int
	Body       []byte
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("superfaktura: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("superfaktura: unexpected status %d: %s", e.StatusCode, e.Body)
}

// DecodeError describes a 200 response whose body could not be parsed as
// JSON. Body holds the raw bytes that failed to parse.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("superfaktura: unable to decode response as JSON: %q: %v", e.Body, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
