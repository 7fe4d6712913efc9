package db

import (
	"database/sql"
	"fmt"
	"time"
)

// InvoiceRecord represents one archived invoice issuance.
type InvoiceRecord struct {
	ID        int64
	InvoiceID int64
	Token     string
	Name      string
	Client    string
	Currency  sql.NullString
	DueDate   sql.NullString
	PDFPath   sql.NullString
	IssuedAt  time.Time
}

// History manages the invoice issuance archive.
type History struct {
	conn *Connection
}

// NewHistory creates a History over an open connection.
func NewHistory(conn *Connection) *History {
	return &History{conn: conn}
}

// Record archives a created invoice. Re-recording the same invoice id
// updates the stored token and descriptive fields. The last issued
// invoice id is kept in the archive metadata.
func (h *History) Record(record InvoiceRecord) error {
	return h.conn.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO invoice_history (invoice_id, token, name, client, currency, due_date, pdf_path)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(invoice_id) DO UPDATE SET
				token = excluded.token,
				name = excluded.name,
				client = excluded.client,
				currency = excluded.currency,
				due_date = excluded.due_date
		`, record.InvoiceID, record.Token, record.Name, record.Client,
			record.Currency, record.DueDate, record.PDFPath)
		if err != nil {
			return fmt.Errorf("failed to record invoice: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO archive_metadata (key, value, updated_at)
			VALUES ('last_invoice_id', ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at
		`, fmt.Sprintf("%d", record.InvoiceID))
		if err != nil {
			return fmt.Errorf("failed to update metadata: %w", err)
		}
		return nil
	})
}

// IsRecorded checks whether an invoice id is already archived.
func (h *History) IsRecorded(invoiceID int64) (bool, error) {
	var count int
	err := h.conn.QueryRow(
		`SELECT COUNT(*) FROM invoice_history WHERE invoice_id = ?`, invoiceID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check invoice history: %w", err)
	}
	return count > 0, nil
}

// SetPDFPath stores the path of the saved PDF for an archived invoice.
func (h *History) SetPDFPath(invoiceID int64, path string) error {
	_, err := h.conn.Exec(
		`UPDATE invoice_history SET pdf_path = ? WHERE invoice_id = ?`, path, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to set pdf path: %w", err)
	}
	return nil
}

// List returns the most recent issuances, newest first.
func (h *History) List(limit int) ([]InvoiceRecord, error) {
	rows, err := h.conn.Query(`
		SELECT id, invoice_id, token, name, client, currency, due_date, pdf_path, issued_at
		FROM invoice_history
		ORDER BY issued_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice history: %w", err)
	}
	defer rows.Close()

	var records []InvoiceRecord
	for rows.Next() {
		var record InvoiceRecord
		if err := rows.Scan(
			&record.ID,
			&record.InvoiceID,
			&record.Token,
			&record.Name,
			&record.Client,
			&record.Currency,
			&record.DueDate,
			&record.PDFPath,
			&record.IssuedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Stats represents archive statistics.
type Stats struct {
	TotalInvoices int
	TotalPDFs     int
	LastIssued    sql.NullString
}

// GetStats retrieves archive statistics.
func (h *History) GetStats() (*Stats, error) {
	var stats Stats

	err := h.conn.QueryRow(`SELECT COUNT(*) FROM invoice_history`).Scan(&stats.TotalInvoices)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice count: %w", err)
	}

	err = h.conn.QueryRow(
		`SELECT COUNT(*) FROM invoice_history WHERE pdf_path IS NOT NULL`,
	).Scan(&stats.TotalPDFs)
	if err != nil {
		return nil, fmt.Errorf("failed to get pdf count: %w", err)
	}

	err = h.conn.QueryRow(`SELECT MAX(issued_at) FROM invoice_history`).Scan(&stats.LastIssued)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last issuance time: %w", err)
	}

	return &stats, nil
}

// GetMetadata retrieves a metadata value. A missing key yields "".
func (h *History) GetMetadata(key string) (string, error) {
	var value string
	err := h.conn.QueryRow(
		`SELECT value FROM archive_metadata WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}
	return value, nil
}

// SetMetadata sets a metadata value.
func (h *History) SetMetadata(key, value string) error {
	_, err := h.conn.Exec(`
		INSERT INTO archive_metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}
	return nil
}
