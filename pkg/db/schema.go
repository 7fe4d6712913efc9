// Package db provides SQLite storage for the local invoice issuance archive.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Issuance history table
-- Tracks invoices created through the CLI, keyed by the id assigned
-- by SuperFaktura.
CREATE TABLE IF NOT EXISTS invoice_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    invoice_id INTEGER NOT NULL,       -- ID assigned by SuperFaktura
    token TEXT NOT NULL,               -- PDF capability token
    name TEXT NOT NULL,                -- Invoice name
    client TEXT NOT NULL,              -- Client contact name
    currency TEXT,                     -- Invoice currency code
    due_date TEXT,                     -- YYYY-MM-DD
    pdf_path TEXT,                     -- Path of the saved PDF, if any
    issued_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(invoice_id)
);

CREATE INDEX IF NOT EXISTS idx_invoice_history_due
    ON invoice_history(due_date);

-- Archive metadata table
-- Stores key-value metadata about the archive
CREATE TABLE IF NOT EXISTS archive_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
