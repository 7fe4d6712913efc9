package superfaktura_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbilling/superfaktura-go/pkg/superfaktura"
)

func TestNewInvoiceItemDefaults(t *testing.T) {
	item := superfaktura.NewInvoiceItem("Hosting Service (1 year)", 500)

	m := item.AsMap()
	assert.Equal(t, "Hosting Service (1 year)", m["name"])
	assert.Equal(t, 500.0, m["unit_price"])
	assert.Equal(t, 1.0, m["quantity"])
	assert.Equal(t, 0.0, m["discount"])
	assert.Equal(t, 0.0, m["load_data_from_stock"])

	// Fields never set must not appear on the wire.
	_, present := m["tax"]
	assert.False(t, present)
	_, present = m["sku"]
	assert.False(t, present)
}

func TestInvoiceModelAsMapDropsUnset(t *testing.T) {
	invoice := superfaktura.NewInvoiceModel()
	invoice.Name = superfaktura.String("My First Invoice")
	invoice.InvoiceCurrency = superfaktura.String(superfaktura.CurrencyEUR)

	m := invoice.AsMap()
	assert.Equal(t, "My First Invoice", m["name"])
	assert.Equal(t, superfaktura.CurrencyEUR, m["invoice_currency"])
	// Constructor defaults are set and therefore serialized.
	assert.Equal(t, 0.0, m["add_rounding_item"])
	assert.Equal(t, 0.0, m["discount"])

	for _, key := range []string{"comment", "due", "bank_accounts", "already_paid", "type"} {
		_, present := m[key]
		assert.Falsef(t, present, "unset field %q must not be serialized", key)
	}
}

func TestInvoiceCreateEnvelope(t *testing.T) {
	var envelope map[string]interface{}

	api, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoices/create", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.NoError(t, json.Unmarshal([]byte(r.PostFormValue("data")), &envelope))

		w.Write([]byte(`{"error":0,"error_message":"OK","data":{"Invoice":{"id":"42","token":"abc"}}}`))
	})

	due := superfaktura.MustDate("2025-04-01")
	invoice := superfaktura.NewInvoiceModel()
	invoice.Type = superfaktura.String(superfaktura.InvoiceTypeRegular)
	invoice.Name = superfaktura.String("My First Invoice")
	invoice.Due = &due
	invoice.InvoiceCurrency = superfaktura.String(superfaktura.CurrencyEUR)

	items := []superfaktura.InvoiceItem{
		superfaktura.NewInvoiceItem("Website Development", 1000),
		superfaktura.NewInvoiceItem("Hosting Service (1 year)", 500),
	}
	contact := &superfaktura.ClientContactModel{
		Name:  "John Doe",
		Email: superfaktura.String("john.doe@example.com"),
	}

	resp, err := api.Invoices.Create(invoice, items, contact, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Error)
	assert.Equal(t, "OK", resp.ErrorMessage)
	assert.Equal(t, 42, resp.InvoiceID)
	assert.Equal(t, "abc", resp.InvoiceToken)
	assert.True(t, resp.Created())

	// Envelope sections carry the service's labels.
	inv := envelope["Invoice"].(map[string]interface{})
	assert.Equal(t, "My First Invoice", inv["name"])
	assert.Equal(t, "2025-04-01", inv["due"])

	client := envelope["Client"].(map[string]interface{})
	assert.Equal(t, "John Doe", client["name"])

	// No settings supplied: the section is present but empty.
	assert.Equal(t, map[string]interface{}{}, envelope["InvoiceSetting"])

	// Line items serialize in caller-supplied order.
	wireItems := envelope["InvoiceItem"].([]interface{})
	require.Len(t, wireItems, 2)
	first := wireItems[0].(map[string]interface{})
	second := wireItems[1].(map[string]interface{})
	assert.Equal(t, "Website Development", first["name"])
	assert.Equal(t, "Hosting Service (1 year)", second["name"])
}

func TestInvoiceCreateWithSettings(t *testing.T) {
	var envelope map[string]interface{}

	api, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.NoError(t, json.Unmarshal([]byte(r.PostFormValue("data")), &envelope))
		w.Write([]byte(`{"error":0,"error_message":"OK"}`))
	})

	settings := &superfaktura.InvoiceSettings{
		Language:  superfaktura.String(superfaktura.LanguageEnglish),
		Signature: superfaktura.Bool(true),
	}

	_, err := api.Invoices.Create(superfaktura.NewInvoiceModel(),
		[]superfaktura.InvoiceItem{superfaktura.NewInvoiceItem("Consulting", 100)},
		&superfaktura.ClientContactModel{Name: "John Doe"}, settings)
	require.NoError(t, err)

	wireSettings := envelope["InvoiceSetting"].(map[string]interface{})
	assert.Equal(t, "eng", wireSettings["language"])
	assert.Equal(t, true, wireSettings["signature"])
	_, present := wireSettings["paypal"]
	assert.False(t, present)
}

func TestInvoiceCreateWithoutInvoicePayload(t *testing.T) {
	api, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":2,"error_message":"Invoice data is not valid"}`))
	})

	resp, err := api.Invoices.Create(superfaktura.NewInvoiceModel(),
		[]superfaktura.InvoiceItem{superfaktura.NewInvoiceItem("Consulting", 100)},
		&superfaktura.ClientContactModel{Name: "John Doe"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Error)
	assert.Equal(t, "Invoice data is not valid", resp.ErrorMessage)
	assert.Zero(t, resp.InvoiceID)
	assert.Empty(t, resp.InvoiceToken)
	assert.False(t, resp.Created())
}

func TestInvoiceCreateMissingErrorFields(t *testing.T) {
	api, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	})

	_, err := api.Invoices.Create(superfaktura.NewInvoiceModel(),
		[]superfaktura.InvoiceItem{superfaktura.NewInvoiceItem("Consulting", 100)},
		&superfaktura.ClientContactModel{Name: "John Doe"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error code")
}

func TestDownloadPDF(t *testing.T) {
	content := []byte("%PDF-1.4 rendered")

	api, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eng/invoices/pdf/42/token:abc", r.URL.Path)
		w.Write(content)
	})

	resp := &superfaktura.InvoiceResponse{
		Error:        0,
		ErrorMessage: "OK",
		InvoiceID:    42,
		InvoiceToken: "abc",
	}

	var sink bytes.Buffer
	require.NoError(t, api.Invoices.DownloadPDF(resp, &sink, superfaktura.LanguageEnglish))
	assert.Equal(t, content, sink.Bytes())
}

func TestDownloadPDFRequiresCapability(t *testing.T) {
	requests := 0
	api, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	var sink bytes.Buffer
	err := api.Invoices.DownloadPDF(&superfaktura.InvoiceResponse{Error: 2}, &sink, superfaktura.LanguageEnglish)
	require.Error(t, err)
	assert.Zero(t, sink.Len())
	assert.Zero(t, requests, "no request must be issued without id and token")
}
