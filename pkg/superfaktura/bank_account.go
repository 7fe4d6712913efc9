package superfaktura

// BankAccountModel represents a bank account. All fields are optional:
// accounts are populated from server responses, and only a subset of keys
// may be present in any given payload.
type BankAccountModel struct {
	Account  *string `json:"account,omitempty"`
	BankCode *string `json:"bank_code,omitempty"`
	BankName *string `json:"bank_name,omitempty"`
	Default  *Flag   `json:"default,omitempty"`
	IBAN     *string `json:"iban,omitempty"`
	Show     *Flag   `json:"show,omitempty"`
	SWIFT    *string `json:"swift,omitempty"`
	ID       *int    `json:"id,omitempty"`
}

// AsMap returns the wire-map representation of the bank account, suitable
// for embedding into InvoiceModel.BankAccounts.
func (m *BankAccountModel) AsMap() map[string]interface{} {
	return asWireMap(m)
}

// BankAccountFromMap builds a bank account from a wire map, discarding
// unknown keys.
func BankAccountFromMap(data map[string]interface{}) (*BankAccountModel, error) {
	var m BankAccountModel
	if err := fromWireMap(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// BankAccountService interacts with bank accounts.
type BankAccountService struct {
	api *Client
}

// List retrieves the bank accounts as the raw decoded collection.
func (s *BankAccountService) List() (map[string]interface{}, error) {
	return s.api.GetObject("bank_accounts/index")
}

// Default returns the first listed account whose default flag is truthy,
// in server-returned order. The server is trusted to flag at most one
// account; no uniqueness check is made. When none is flagged the result is
// ErrNoDefaultBankAccount.
func (s *BankAccountService) Default() (*BankAccountModel, error) {
	resp, err := s.List()
	if err != nil {
		return nil, err
	}
	accounts, ok := resp["BankAccounts"].([]interface{})
	if !ok {
		return nil, ErrNoDefaultBankAccount
	}
	for _, entry := range accounts {
		wrapper, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		account, ok := wrapper["BankAccount"].(map[string]interface{})
		if !ok {
			continue
		}
		if truthy(account["default"]) {
			return BankAccountFromMap(account)
		}
	}
	return nil, ErrNoDefaultBankAccount
}
