// Package draft loads invoice drafts from YAML files and maps them onto
// the typed SuperFaktura records.
//
// A draft carries the same four sections as the creation envelope:
//
//	invoice:
//	  name: My First Invoice
//	  type: regular
//	  due: "2025-04-01"
//	  currency: EUR
//	items:
//	  - name: Website Development
//	    unit_price: 1000
//	    tax: 20
//	client:
//	  name: John Doe
//	  email: john.doe@example.com
//	settings:
//	  language: eng
package draft

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openbilling/superfaktura-go/pkg/superfaktura"
)

// Draft represents an invoice draft file.
type Draft struct {
	Invoice  InvoiceSection   `yaml:"invoice"`
	Items    []ItemSection    `yaml:"items"`
	Client   ClientSection    `yaml:"client"`
	Settings *SettingsSection `yaml:"settings"`
}

// InvoiceSection describes the invoice header fields of a draft.
type InvoiceSection struct {
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type"`
	Due           string   `yaml:"due"`
	Delivery      string   `yaml:"delivery"`
	PayDate       string   `yaml:"paydate"`
	Currency      string   `yaml:"currency"`
	HeaderComment string   `yaml:"header_comment"`
	Comment       string   `yaml:"comment"`
	OrderNo       string   `yaml:"order_no"`
	Variable      string   `yaml:"variable"`
	PaymentType   string   `yaml:"payment_type"`
	Discount      *float64 `yaml:"discount"`
	AlreadyPaid   *int     `yaml:"already_paid"`
}

// ItemSection describes one draft line item.
type ItemSection struct {
	Name        string   `yaml:"name"`
	UnitPrice   *float64 `yaml:"unit_price"`
	Description string   `yaml:"description"`
	Quantity    *float64 `yaml:"quantity"`
	Unit        string   `yaml:"unit"`
	Tax         *float64 `yaml:"tax"`
	Discount    *float64 `yaml:"discount"`
	SKU         string   `yaml:"sku"`
}

// ClientSection describes the invoiced client contact.
type ClientSection struct {
	Name      string `yaml:"name"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	Address   string `yaml:"address"`
	City      string `yaml:"city"`
	Zip       string `yaml:"zip"`
	CountryID *int   `yaml:"country_id"`
	ICO       string `yaml:"ico"`
	DIC       string `yaml:"dic"`
	ICDPH     string `yaml:"ic_dph"`
	IBAN      string `yaml:"iban"`
	SWIFT     string `yaml:"swift"`
	Update    bool   `yaml:"update"`
}

// SettingsSection describes the per-request rendering flags.
type SettingsSection struct {
	Language      string `yaml:"language"`
	Signature     *bool  `yaml:"signature"`
	PaymentInfo   *bool  `yaml:"payment_info"`
	OnlinePayment *bool  `yaml:"online_payment"`
	BySquare      *bool  `yaml:"bysquare"`
}

// Load reads and validates a draft file.
func Load(path string) (*Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}

	var d Draft
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Draft) validate() error {
	if d.Client.Name == "" {
		return fmt.Errorf("draft: client.name is required")
	}
	if len(d.Items) == 0 {
		return fmt.Errorf("draft: at least one item is required")
	}
	for i, item := range d.Items {
		if item.Name == "" {
			return fmt.Errorf("draft: items[%d].name is required", i)
		}
		if item.UnitPrice == nil {
			return fmt.Errorf("draft: items[%d].unit_price is required", i)
		}
	}
	return nil
}

// Models maps the draft onto the typed records used by the invoice
// creation call. Dates are validated here, so malformed draft dates fail
// before any network activity.
func (d *Draft) Models() (*superfaktura.InvoiceModel, []superfaktura.InvoiceItem,
	*superfaktura.ClientContactModel, *superfaktura.InvoiceSettings, error) {

	invoice := superfaktura.NewInvoiceModel()
	setString(&invoice.Name, d.Invoice.Name)
	setString(&invoice.Type, d.Invoice.Type)
	setString(&invoice.InvoiceCurrency, d.Invoice.Currency)
	setString(&invoice.HeaderComment, d.Invoice.HeaderComment)
	setString(&invoice.Comment, d.Invoice.Comment)
	setString(&invoice.OrderNo, d.Invoice.OrderNo)
	setString(&invoice.Variable, d.Invoice.Variable)
	setString(&invoice.PaymentType, d.Invoice.PaymentType)
	if d.Invoice.Discount != nil {
		invoice.Discount = d.Invoice.Discount
	}
	invoice.AlreadyPaid = d.Invoice.AlreadyPaid

	if err := setDate(&invoice.Due, "invoice.due", d.Invoice.Due); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := setDate(&invoice.Delivery, "invoice.delivery", d.Invoice.Delivery); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := setDate(&invoice.PayDate, "invoice.paydate", d.Invoice.PayDate); err != nil {
		return nil, nil, nil, nil, err
	}

	items := make([]superfaktura.InvoiceItem, 0, len(d.Items))
	for _, section := range d.Items {
		item := superfaktura.NewInvoiceItem(section.Name, *section.UnitPrice)
		setString(&item.Description, section.Description)
		setString(&item.Unit, section.Unit)
		setString(&item.SKU, section.SKU)
		if section.Quantity != nil {
			item.Quantity = section.Quantity
		}
		if section.Discount != nil {
			item.Discount = section.Discount
		}
		item.Tax = section.Tax
		items = append(items, item)
	}

	contact := &superfaktura.ClientContactModel{Name: d.Client.Name}
	setString(&contact.Email, d.Client.Email)
	setString(&contact.Phone, d.Client.Phone)
	setString(&contact.Address, d.Client.Address)
	setString(&contact.City, d.Client.City)
	setString(&contact.Zip, d.Client.Zip)
	setString(&contact.ICO, d.Client.ICO)
	setString(&contact.DIC, d.Client.DIC)
	setString(&contact.ICDPH, d.Client.ICDPH)
	setString(&contact.IBAN, d.Client.IBAN)
	setString(&contact.SWIFT, d.Client.SWIFT)
	contact.CountryID = d.Client.CountryID
	if d.Client.Update {
		contact.Update = superfaktura.Bool(true)
	}

	var settings *superfaktura.InvoiceSettings
	if d.Settings != nil {
		settings = &superfaktura.InvoiceSettings{
			Signature:     d.Settings.Signature,
			PaymentInfo:   d.Settings.PaymentInfo,
			OnlinePayment: d.Settings.OnlinePayment,
			BySquare:      d.Settings.BySquare,
		}
		setString(&settings.Language, d.Settings.Language)
	}

	return invoice, items, contact, settings, nil
}

// setString assigns the value only when non-empty, keeping unset fields
// off the wire.
func setString(dst **string, value string) {
	if value != "" {
		*dst = superfaktura.String(value)
	}
}

func setDate(dst **superfaktura.Date, field, value string) error {
	if value == "" {
		return nil
	}
	d, err := superfaktura.NewDate(value)
	if err != nil {
		return fmt.Errorf("draft: %s: %w", field, err)
	}
	*dst = &d
	return nil
}
