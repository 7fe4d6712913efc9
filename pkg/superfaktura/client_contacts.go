package superfaktura

import (
	"encoding/json"
	"fmt"
)

// ClientContactModel represents a client contact. Name is mandatory;
// everything else is optional. ID is assigned by the service on creation.
// Setting Update signals upsert-by-identity semantics to the service.
type ClientContactModel struct {
	Name              string   `json:"name"`
	Address           *string  `json:"address,omitempty"`
	BankAccount       *string  `json:"bank_account,omitempty"`
	BankCode          *string  `json:"bank_code,omitempty"`
	City              *string  `json:"city,omitempty"`
	Comment           *string  `json:"comment,omitempty"`
	Country           *string  `json:"country,omitempty"`
	CountryID         *int     `json:"country_id,omitempty"`
	Currency          *string  `json:"currency,omitempty"`
	DefaultVariable   *string  `json:"default_variable,omitempty"`
	DeliveryAddress   *string  `json:"delivery_address,omitempty"`
	DeliveryCity      *string  `json:"delivery_city,omitempty"`
	DeliveryCountry   *string  `json:"delivery_country,omitempty"`
	DeliveryCountryID *int     `json:"delivery_country_id,omitempty"`
	DeliveryName      *string  `json:"delivery_name,omitempty"`
	DeliveryPhone     *string  `json:"delivery_phone,omitempty"`
	DeliveryZip       *string  `json:"delivery_zip,omitempty"`
	DIC               *string  `json:"dic,omitempty"`
	Discount          *float64 `json:"discount,omitempty"`
	DueDate           *int     `json:"due_date,omitempty"`
	Email             *string  `json:"email,omitempty"`
	Fax               *string  `json:"fax,omitempty"`
	IBAN              *string  `json:"iban,omitempty"`
	ICDPH             *string  `json:"ic_dph,omitempty"`
	ICO               *string  `json:"ico,omitempty"`
	MatchAddress      *int     `json:"match_address,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	SWIFT             *string  `json:"swift,omitempty"`
	Tags              *string  `json:"tags,omitempty"`
	UUID              *string  `json:"uuid,omitempty"`
	Zip               *string  `json:"zip,omitempty"`
	Update            *bool    `json:"update,omitempty"`
	ID                *int     `json:"id,omitempty"`
}

// AsMap returns the wire-map representation of the contact.
func (m *ClientContactModel) AsMap() map[string]interface{} {
	return asWireMap(m)
}

// ClientContactFromMap builds a contact from a wire map, keeping only keys
// that match declared fields. Server payloads typically carry more keys
// than the model declares; those are discarded. A missing name is an
// error.
func ClientContactFromMap(data map[string]interface{}) (*ClientContactModel, error) {
	var m ClientContactModel
	if err := fromWireMap(data, &m); err != nil {
		return nil, err
	}
	if m.Name == "" {
		return nil, fmt.Errorf("superfaktura: client contact is missing the mandatory name field")
	}
	return &m, nil
}

// ClientContactService interacts with client contacts.
type ClientContactService struct {
	api *Client
}

// Create adds a new client contact. It reports success by matching the
// service's confirmation message; any other message yields false without
// an error.
func (s *ClientContactService) Create(contact *ClientContactModel) (bool, error) {
	envelope := map[string]interface{}{"Client": contact.AsMap()}
	data, err := json.Marshal(envelope)
	if err != nil {
		return false, fmt.Errorf("failed to encode client contact: %w", err)
	}

	resp, err := s.api.Post("clients/create", string(data))
	if err != nil {
		return false, err
	}
	message, _ := asString(resp["error_message"])
	return message == "Client created", nil
}

// List retrieves all client contacts as the raw decoded collection.
func (s *ClientContactService) List() (map[string]interface{}, error) {
	return s.api.GetObject("clients/index.json")
}

// Get retrieves a client contact by ID. A response without the expected
// Client payload is ErrClientNotFound.
func (s *ClientContactService) Get(id int) (*ClientContactModel, error) {
	resp, err := s.api.GetObject(fmt.Sprintf("clients/view/%d", id))
	if err != nil {
		return nil, err
	}
	raw, ok := resp["Client"].(map[string]interface{})
	if !ok {
		return nil, ErrClientNotFound
	}
	return ClientContactFromMap(raw)
}
