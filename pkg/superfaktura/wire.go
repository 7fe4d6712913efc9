package superfaktura

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Pointer helpers for populating optional record fields.

// String returns a pointer to s.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Float64 returns a pointer to f.
func Float64(f float64) *float64 { return &f }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// asWireMap serializes a record into the untyped key/value structure the
// API exchanges. Fields left unset (nil pointers) are dropped by their
// omitempty tags, so they never appear on the wire.
func asWireMap(record interface{}) map[string]interface{} {
	raw, err := json.Marshal(record)
	if err != nil {
		// Records are plain data with infallible marshalers.
		panic(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		panic(err)
	}
	return m
}

// fromWireMap builds a record from an arbitrary mapping, keeping only keys
// that match a declared field and silently discarding the rest.
func fromWireMap(data map[string]interface{}, record interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, record); err != nil {
		return &DecodeError{Body: raw, Err: err}
	}
	return nil
}

// Flag is an int-valued toggle that tolerates the service's mixed flag
// encodings on decode: 1, "1" and true all yield 1. It always encodes as a
// plain number.
type Flag int

// MarshalJSON encodes the flag as a JSON number.
func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// UnmarshalJSON accepts numbers, numeric strings, booleans and null.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*f = 0
	case bool:
		*f = 0
		if t {
			*f = 1
		}
	case float64:
		*f = Flag(t)
	case string:
		if t == "" {
			*f = 0
			return nil
		}
		i, err := strconv.Atoi(t)
		if err != nil {
			return err
		}
		*f = Flag(i)
	default:
		return fmt.Errorf("cannot decode %T into a flag", v)
	}
	return nil
}

// truthy interprets a decoded JSON value the way the API uses flags:
// numbers and numeric strings are true when non-zero.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case string:
		return t != "" && t != "0"
	default:
		return false
	}
}

// asInt coerces a decoded JSON value into an int. The service is not
// consistent about numeric identifiers: "42" and 42 both occur.
func asInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// asString coerces a decoded JSON value into a string.
func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
