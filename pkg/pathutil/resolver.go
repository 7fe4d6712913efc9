// Package pathutil provides centralized path management for the local
// invoice archive: the history database and the saved PDF documents.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver manages paths under the archive root.
type PathResolver struct {
	archiveRoot  string
	databasePath string
	documentsDir string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// ArchiveRoot is the root directory of the local archive.
	ArchiveRoot string
	// DatabasePath is the path to the SQLite history database file.
	DatabasePath string
	// DocumentsDir is the directory for downloaded invoice PDFs.
	DocumentsDir string
}

// New creates a new PathResolver with the given configuration.
// If DatabasePath is empty, it defaults to {ArchiveRoot}/history.db.
// If DocumentsDir is empty, it defaults to {ArchiveRoot}/documents.
func New(config Config) *PathResolver {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(config.ArchiveRoot, "history.db")
	}

	documentsDir := config.DocumentsDir
	if documentsDir == "" {
		documentsDir = filepath.Join(config.ArchiveRoot, "documents")
	}

	return &PathResolver{
		archiveRoot:  config.ArchiveRoot,
		databasePath: dbPath,
		documentsDir: documentsDir,
	}
}

// ArchiveRoot returns the archive root directory.
func (r *PathResolver) ArchiveRoot() string {
	return r.archiveRoot
}

// DatabasePath returns the history database path.
func (r *PathResolver) DatabasePath() string {
	return r.databasePath
}

// DocumentsDir returns the documents directory.
func (r *PathResolver) DocumentsDir() string {
	return r.documentsDir
}

// PDFPath returns the canonical path for an invoice's saved PDF.
func (r *PathResolver) PDFPath(invoiceID int64) string {
	return filepath.Join(r.documentsDir, fmt.Sprintf("invoice-%d.pdf", invoiceID))
}

// EnsureDirectories creates the archive directories if they don't exist.
func (r *PathResolver) EnsureDirectories() error {
	for _, dir := range []string{r.archiveRoot, filepath.Dir(r.databasePath), r.documentsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
