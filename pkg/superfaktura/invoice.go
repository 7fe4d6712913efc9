package superfaktura

import (
	"encoding/json"
	"fmt"
	"io"
)

// InvoiceModel represents an invoice on the wire. Every field is optional;
// fields left nil never appear in the serialized payload, because the
// service treats key presence, not null, as "set this field".
type InvoiceModel struct {
	AddRoundingItem    *int                     `json:"add_rounding_item,omitempty"`
	AlreadyPaid        *int                     `json:"already_paid,omitempty"`
	BankAccounts       []map[string]interface{} `json:"bank_accounts,omitempty"`
	Comment            *string                  `json:"comment,omitempty"`
	Constant           *string                  `json:"constant,omitempty"`
	Created            *Date                    `json:"created,omitempty"`
	Delivery           *Date                    `json:"delivery,omitempty"`
	DeliveryType       *string                  `json:"delivery_type,omitempty"`
	Deposit            *float64                 `json:"deposit,omitempty"`
	Discount           *float64                 `json:"discount,omitempty"`
	DiscountTotal      *float64                 `json:"discount_total,omitempty"`
	Due                *Date                    `json:"due,omitempty"`
	EstimateID         *int                     `json:"estimate_id,omitempty"`
	HeaderComment      *string                  `json:"header_comment,omitempty"`
	InternalComment    *string                  `json:"internal_comment,omitempty"`
	InvoiceCurrency    *string                  `json:"invoice_currency,omitempty"`
	InvoiceNoFormatted *string                  `json:"invoice_no_formatted,omitempty"`
	IssuedBy           *string                  `json:"issued_by,omitempty"`
	IssuedByEmail      *string                  `json:"issued_by_email,omitempty"`
	IssuedByPhone      *string                  `json:"issued_by_phone,omitempty"`
	IssuedByWeb        *string                  `json:"issued_by_web,omitempty"`
	LogoID             *int                     `json:"logo_id,omitempty"`
	MarkSent           *int                     `json:"mark_sent,omitempty"`
	MarkSentMessage    *string                  `json:"mark_sent_message,omitempty"`
	MarkSentSubject    *string                  `json:"mark_sent_subject,omitempty"`
	Name               *string                  `json:"name,omitempty"`
	OrderNo            *string                  `json:"order_no,omitempty"`
	ParentID           *int                     `json:"parent_id,omitempty"`
	PayDate            *Date                    `json:"paydate,omitempty"`
	PaymentType        *string                  `json:"payment_type,omitempty"`
	ProformaID         *string                  `json:"proforma_id,omitempty"`
	Rounding           *string                  `json:"rounding,omitempty"`
	SequenceID         *int                     `json:"sequence_id,omitempty"`
	Specific           *string                  `json:"specific,omitempty"`
	TaxDocument        *int                     `json:"tax_document,omitempty"`
	Type               *string                  `json:"type,omitempty"`
	Variable           *string                  `json:"variable,omitempty"`
	VATTransfer        *int                     `json:"vat_transfer,omitempty"`
}

// NewInvoiceModel returns an invoice with the documented defaults applied:
// rounding item enabled at 0 and no global discount.
func NewInvoiceModel() *InvoiceModel {
	return &InvoiceModel{
		AddRoundingItem: Int(0),
		Discount:        Float64(0),
	}
}

// AsMap returns the wire-map representation of the invoice.
func (m *InvoiceModel) AsMap() map[string]interface{} {
	return asWireMap(m)
}

// InvoiceItem represents one invoice line item. Name and UnitPrice are
// mandatory; the rest is optional.
type InvoiceItem struct {
	Name                string   `json:"name"`
	UnitPrice           float64  `json:"unit_price"`
	Description         *string  `json:"description,omitempty"`
	Discount            *float64 `json:"discount,omitempty"`
	DiscountDescription *string  `json:"discount_description,omitempty"`
	LoadDataFromStock   int      `json:"load_data_from_stock"`
	Quantity            *float64 `json:"quantity,omitempty"`
	SKU                 *string  `json:"sku,omitempty"`
	StockItemID         *int     `json:"stock_item_id,omitempty"`
	Tax                 *float64 `json:"tax,omitempty"`
	Unit                *string  `json:"unit,omitempty"`
	UseDocumentCurrency *int     `json:"use_document_currency,omitempty"`
}

// NewInvoiceItem returns a line item with the documented defaults:
// quantity 1, discount 0, document currency disabled, no stock lookup.
func NewInvoiceItem(name string, unitPrice float64) InvoiceItem {
	return InvoiceItem{
		Name:                name,
		UnitPrice:           unitPrice,
		Discount:            Float64(0),
		Quantity:            Float64(1),
		UseDocumentCurrency: Int(0),
	}
}

// AsMap returns the wire-map representation of the line item.
func (i InvoiceItem) AsMap() map[string]interface{} {
	return asWireMap(i)
}

// InvoiceSettings holds per-request rendering and behavior flags. Only
// non-nil fields are sent.
type InvoiceSettings struct {
	Language        *string `json:"language,omitempty"`
	BySquare        *bool   `json:"bysquare,omitempty"`
	CallbackPayment *string `json:"callback_payment,omitempty"`
	OnlinePayment   *bool   `json:"online_payment,omitempty"`
	PaymentInfo     *bool   `json:"payment_info,omitempty"`
	PayPal          *bool   `json:"paypal,omitempty"`
	ShowPrices      *bool   `json:"show_prices,omitempty"`
	Signature       *bool   `json:"signature,omitempty"`
	SummaryBGColor  *string `json:"summary_bg_color,omitempty"`
}

// AsMap returns the wire-map representation of the settings.
func (s *InvoiceSettings) AsMap() map[string]interface{} {
	return asWireMap(s)
}

// InvoiceResponse is the result of an invoice creation call. Error and
// ErrorMessage are always populated; InvoiceID and InvoiceToken are set
// only when the service returned the created invoice. The id+token pair is
// the capability needed to fetch the rendered PDF later.
type InvoiceResponse struct {
	Error        int
	ErrorMessage string
	InvoiceID    int
	InvoiceToken string
}

// Created reports whether the service returned an invoice id and token.
func (r *InvoiceResponse) Created() bool {
	return r.InvoiceID != 0 && r.InvoiceToken != ""
}

// InvoiceService interacts with invoices.
type InvoiceService struct {
	api *Client
}

// Create creates a new invoice from the given sections. The envelope is
// keyed by the labels the service expects; items serialize in the supplied
// order, since downstream invoice layout is order-sensitive.
//
// A logical failure embedded in a 200 response is not returned as an
// error: the caller must inspect the response's Error code.
func (s *InvoiceService) Create(invoice *InvoiceModel, items []InvoiceItem,
	contact *ClientContactModel, settings *InvoiceSettings) (*InvoiceResponse, error) {

	itemMaps := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		itemMaps = append(itemMaps, item.AsMap())
	}

	settingsMap := map[string]interface{}{}
	if settings != nil {
		settingsMap = settings.AsMap()
	}

	envelope := map[string]interface{}{
		"Invoice":        invoice.AsMap(),
		"InvoiceItem":    itemMaps,
		"Client":         contact.AsMap(),
		"InvoiceSetting": settingsMap,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode invoice: %w", err)
	}

	resp, err := s.api.Post("invoices/create", string(data))
	if err != nil {
		return nil, err
	}
	return parseInvoiceResponse(resp)
}

// parseInvoiceResponse maps the creation response onto InvoiceResponse.
// The nested data.Invoice payload may legitimately be absent; only the
// error fields are mandatory.
func parseInvoiceResponse(resp map[string]interface{}) (*InvoiceResponse, error) {
	errCode, ok := asInt(resp["error"])
	if !ok {
		return nil, fmt.Errorf("superfaktura: response is missing the error code: %v", resp)
	}
	errMessage, ok := asString(resp["error_message"])
	if !ok {
		return nil, fmt.Errorf("superfaktura: response is missing the error message: %v", resp)
	}

	out := &InvoiceResponse{
		Error:        errCode,
		ErrorMessage: errMessage,
	}

	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		return out, nil
	}
	created, ok := data["Invoice"].(map[string]interface{})
	if !ok {
		return out, nil
	}
	if id, ok := asInt(created["id"]); ok {
		out.InvoiceID = id
	}
	if token, ok := asString(created["token"]); ok {
		out.InvoiceToken = token
	}
	return out, nil
}

// DownloadPDF fetches the rendered PDF of a previously created invoice and
// writes it into w. The invoice response must carry the id and token
// returned by Create.
func (s *InvoiceService) DownloadPDF(invoice *InvoiceResponse, w io.Writer, language string) error {
	if invoice == nil || !invoice.Created() {
		return fmt.Errorf("superfaktura: invoice has no id and token; was it created?")
	}
	endpoint := fmt.Sprintf("%s/invoices/pdf/%d/token:%s",
		language, invoice.InvoiceID, invoice.InvoiceToken)
	return s.api.Download(endpoint, w)
}
