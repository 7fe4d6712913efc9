package superfaktura_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbilling/superfaktura-go/pkg/superfaktura"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"2025-04-01", true},
		{"2022-01-01", true},
		{"2024-02-29", true},
		{"2025-13-01", false},
		{"2025-02-30", false},
		{"01-04-2025", false},
		{"2025/04/01", false},
		{"2025-4-1", false},
		{"2025-04-01T00:00:00", false},
		{"yesterday", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := superfaktura.NewDate(tt.input)
			if !tt.valid {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.True(t, d.IsSet())
			assert.Equal(t, tt.input, d.String())
		})
	}
}

func TestDateZeroValueIsUnset(t *testing.T) {
	var d superfaktura.Date
	assert.False(t, d.IsSet())
	assert.Equal(t, "", d.String())
}

func TestDateMarshalJSON(t *testing.T) {
	set := superfaktura.MustDate("2025-04-01")
	out, err := json.Marshal(set)
	require.NoError(t, err)
	assert.Equal(t, `"2025-04-01"`, string(out))

	var unset superfaktura.Date
	out, err = json.Marshal(unset)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d superfaktura.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-04-01"`), &d))
	assert.True(t, d.IsSet())
	assert.Equal(t, "2025-04-01", d.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.False(t, d.IsSet())

	assert.Error(t, json.Unmarshal([]byte(`"April 1st"`), &d))
}

func TestDateFieldOmittedWhenNil(t *testing.T) {
	invoice := superfaktura.NewInvoiceModel()
	m := invoice.AsMap()

	_, present := m["due"]
	assert.False(t, present)

	due := superfaktura.MustDate("2025-04-01")
	invoice.Due = &due
	m = invoice.AsMap()
	assert.Equal(t, "2025-04-01", m["due"])
}
