package superfaktura_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbilling/superfaktura-go/pkg/superfaktura"
)

func TestClientContactCreate(t *testing.T) {
	tests := []struct {
		name    string
		message string
		created bool
	}{
		{"confirmation message", "Client created", true},
		{"other message", "Client already exists", false},
		{"empty message", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var envelope map[string]interface{}

			api, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/clients/create", r.URL.Path)
				require.NoError(t, r.ParseForm())
				require.NoError(t, json.Unmarshal([]byte(r.PostFormValue("data")), &envelope))

				resp, _ := json.Marshal(map[string]interface{}{
					"error":         0,
					"error_message": tt.message,
				})
				w.Write(resp)
			})

			contact := &superfaktura.ClientContactModel{
				Name:   "John Doe",
				Email:  superfaktura.String("john.doe@example.com"),
				ICO:    superfaktura.String("987654321"),
				Update: superfaktura.Bool(true),
			}

			created, err := api.Clients.Create(contact)
			require.NoError(t, err)
			assert.Equal(t, tt.created, created)

			client := envelope["Client"].(map[string]interface{})
			assert.Equal(t, "John Doe", client["name"])
			assert.Equal(t, "987654321", client["ico"])
			assert.Equal(t, true, client["update"])
			_, present := client["phone"]
			assert.False(t, present)
		})
	}
}

func TestClientContactGet(t *testing.T) {
	api, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clients/view/40019", r.URL.Path)
		w.Write([]byte(`{"Client":{
			"id":40019,
			"name":"John Doe",
			"email":"john.doe@example.com",
			"uuid":"7e68-41c6",
			"created":"2025-03-10 09:15:00",
			"modified":"2025-03-11 10:00:00"
		}}`))
	})

	contact, err := api.Clients.Get(40019)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", contact.Name)
	require.NotNil(t, contact.ID)
	assert.Equal(t, 40019, *contact.ID)
	require.NotNil(t, contact.Email)
	assert.Equal(t, "john.doe@example.com", *contact.Email)

	// Server-added keys outside the declared fields are discarded.
	m := contact.AsMap()
	_, present := m["created"]
	assert.False(t, present)
	_, present = m["modified"]
	assert.False(t, present)
}

func TestClientContactGetNotFound(t *testing.T) {
	api, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"no such client"}`))
	})

	_, err := api.Clients.Get(999)
	assert.ErrorIs(t, err, superfaktura.ErrClientNotFound)
}

func TestClientContactList(t *testing.T) {
	api, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clients/index.json", r.URL.Path)
		w.Write([]byte(`{"items":[{"Client":{"name":"John Doe"}}]}`))
	})

	resp, err := api.Clients.List()
	require.NoError(t, err)
	assert.Contains(t, resp, "items")
}

func TestClientContactFromMap(t *testing.T) {
	contact, err := superfaktura.ClientContactFromMap(map[string]interface{}{
		"name":       "John Doe",
		"iban":       "SK123",
		"country_id": 225.0,
		"server_key": "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", contact.Name)
	require.NotNil(t, contact.IBAN)
	assert.Equal(t, "SK123", *contact.IBAN)
	require.NotNil(t, contact.CountryID)
	assert.Equal(t, 225, *contact.CountryID)
}

func TestClientContactFromMapMissingName(t *testing.T) {
	_, err := superfaktura.ClientContactFromMap(map[string]interface{}{
		"email": "john.doe@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}
