package superfaktura

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the only calendar date format the API understands.
const dateLayout = "2006-01-02"

// Date is a calendar date in the format YYYY-MM-DD.
//
// The zero value is "unset", which is a valid state distinct from a
// construction failure: an unset Date serializes to JSON null, and record
// fields holding a nil *Date are omitted from the wire map entirely.
type Date struct {
	t   time.Time
	set bool
}

// NewDate parses a date in the format YYYY-MM-DD. Any other format is an
// error carrying the offending input.
func NewDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("superfaktura: date must be in format YYYY-MM-DD, got: %s", value)
	}
	return Date{t: t, set: true}, nil
}

// MustDate is like NewDate but panics on malformed input. Intended for
// literals in tests and examples.
func MustDate(value string) Date {
	d, err := NewDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// IsSet reports whether the date holds a value.
func (d Date) IsSet() bool {
	return d.set
}

// Time returns the underlying time.Time. The result is meaningful only
// when IsSet reports true.
func (d Date) Time() time.Time {
	return d.t
}

// String returns the date as YYYY-MM-DD, or the empty string when unset.
func (d Date) String() string {
	if !d.set {
		return ""
	}
	return d.t.Format(dateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD", or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.t.Format(dateLayout))
}

// UnmarshalJSON accepts "YYYY-MM-DD" or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
