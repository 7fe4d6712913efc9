package cmd

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/openbilling/superfaktura-go/pkg/db"
	"github.com/openbilling/superfaktura-go/pkg/draft"
	"github.com/openbilling/superfaktura-go/pkg/pathutil"
	"github.com/openbilling/superfaktura-go/pkg/superfaktura"
)

var (
	draftFile   string
	pdfPath     string
	pdfLanguage string
	attachBank  bool
	dryRun      bool
)

// invoiceCmd represents the invoice command.
var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Create an invoice from a YAML draft",
	Long: `Create an invoice from a YAML draft file.

This command:
1. Reads the draft (invoice, items, client, settings)
2. Optionally attaches the default bank account
3. Submits the invoice to SuperFaktura
4. Downloads the rendered PDF
5. Records the issuance in the local SQLite archive

Example:
  sfaktura invoice --file draft.yaml --lang eng
  sfaktura invoice --file draft.yaml --pdf out.pdf --bank-account
  sfaktura invoice --file draft.yaml --dry-run`,
	Run: runInvoice,
}

func init() {
	// Flags
	invoiceCmd.Flags().StringVarP(&draftFile, "file", "f", "", "YAML draft file (required)")
	invoiceCmd.Flags().StringVar(&pdfPath, "pdf", "", "PDF output path (default: archive documents dir)")
	invoiceCmd.Flags().StringVar(&pdfLanguage, "lang", superfaktura.LanguageSlovak, "PDF language code")
	invoiceCmd.Flags().BoolVar(&attachBank, "bank-account", false, "attach the default bank account")
	invoiceCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the envelope without submitting")

	invoiceCmd.MarkFlagRequired("file")
}

func runInvoice(cmd *cobra.Command, args []string) {
	slog.Info("Loading draft", "file", draftFile)

	d, err := draft.Load(draftFile)
	exitOnError(err, "failed to load draft")

	invoice, items, contact, settings, err := d.Models()
	exitOnError(err, "invalid draft")

	if dryRun {
		printEnvelope(invoice, items, contact, settings)
		return
	}

	api, cfg := newAPIClient()

	if attachBank {
		slog.Info("Fetching default bank account")
		account, err := api.BankAccounts.Default()
		exitOnError(err, "failed to fetch default bank account")
		invoice.BankAccounts = []map[string]interface{}{account.AsMap()}
	}

	slog.Info("Creating invoice", "name", stringOrEmpty(invoice.Name), "client", contact.Name)
	resp, err := api.Invoices.Create(invoice, items, contact, settings)
	exitOnError(err, "failed to create invoice")

	if resp.Error != 0 {
		exitOnError(fmt.Errorf("%s (code %d)", resp.ErrorMessage, resp.Error),
			"invoice was rejected")
	}
	if !resp.Created() {
		slog.Warn("Service reported success but returned no invoice id", "message", resp.ErrorMessage)
		return
	}
	slog.Info("Invoice created", "invoice_id", resp.InvoiceID)

	// Archive the issuance before attempting the PDF download.
	resolver := pathutil.New(pathutil.Config{
		ArchiveRoot:  cfg.Archive.Root,
		DatabasePath: cfg.Archive.DBPath,
		DocumentsDir: cfg.Archive.DocumentsDir,
	})
	exitOnError(resolver.EnsureDirectories(), "failed to prepare archive directories")

	conn, err := db.Open(resolver.DatabasePath())
	exitOnError(err, "failed to open archive database")
	defer conn.Close()

	history := db.NewHistory(conn)
	record := db.InvoiceRecord{
		InvoiceID: int64(resp.InvoiceID),
		Token:     resp.InvoiceToken,
		Name:      stringOrEmpty(invoice.Name),
		Client:    contact.Name,
	}
	if invoice.InvoiceCurrency != nil {
		record.Currency = sql.NullString{String: *invoice.InvoiceCurrency, Valid: true}
	}
	if invoice.Due != nil && invoice.Due.IsSet() {
		record.DueDate = sql.NullString{String: invoice.Due.String(), Valid: true}
	}
	exitOnError(history.Record(record), "failed to archive invoice")

	outPath := pdfPath
	if outPath == "" {
		outPath = resolver.PDFPath(int64(resp.InvoiceID))
	}

	slog.Info("Downloading PDF", "path", outPath, "lang", pdfLanguage)
	f, err := os.Create(outPath)
	exitOnError(err, "failed to create PDF file")
	defer f.Close()

	exitOnError(api.Invoices.DownloadPDF(resp, f, pdfLanguage), "failed to download PDF")
	exitOnError(history.SetPDFPath(int64(resp.InvoiceID), outPath), "failed to archive PDF path")

	fmt.Printf("Invoice %d created, PDF saved to %s\n", resp.InvoiceID, outPath)
}

func printEnvelope(invoice *superfaktura.InvoiceModel, items []superfaktura.InvoiceItem,
	contact *superfaktura.ClientContactModel, settings *superfaktura.InvoiceSettings) {

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
	out, err := json.MarshalIndent(envelope, "", "  ")
	exitOnError(err, "failed to render envelope")
	fmt.Println(string(out))
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
