package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/openbilling/superfaktura-go/pkg/config"
	"github.com/openbilling/superfaktura-go/pkg/db"
	"github.com/openbilling/superfaktura-go/pkg/pathutil"
)

var statsLimit int

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display issuance archive statistics",
	Long: `Display statistics about locally archived invoice issuances.

Shows:
- Total number of archived invoices
- Number of saved PDFs
- Last issuance timestamp
- The most recent issuances

Example:
  sfaktura stats
  sfaktura stats --limit 20`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsLimit, "limit", 10, "number of recent issuances to show")
}

func runStats(cmd *cobra.Command, args []string) {
	slog.Info("Loading configuration")

	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	resolver := pathutil.New(pathutil.Config{
		ArchiveRoot:  cfg.Archive.Root,
		DatabasePath: cfg.Archive.DBPath,
		DocumentsDir: cfg.Archive.DocumentsDir,
	})

	dbPath := resolver.DatabasePath()
	slog.Debug("Opening archive database", "path", dbPath)
	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open archive database")
	defer conn.Close()

	history := db.NewHistory(conn)

	stats, err := history.GetStats()
	exitOnError(err, "failed to get archive statistics")

	fmt.Println("Issuance Archive Statistics")
	fmt.Println("===========================")
	fmt.Printf("Archived invoices: %d\n", stats.TotalInvoices)
	fmt.Printf("Saved PDFs:        %d\n", stats.TotalPDFs)
	if stats.LastIssued.Valid {
		fmt.Printf("Last issuance:     %s\n", stats.LastIssued.String)
	} else {
		fmt.Println("Last issuance:     never")
	}

	records, err := history.List(statsLimit)
	exitOnError(err, "failed to list recent issuances")

	if len(records) > 0 {
		fmt.Println()
		fmt.Println("Recent issuances:")
		for _, record := range records {
			line := fmt.Sprintf("  #%d  %s — %s", record.InvoiceID, record.Name, record.Client)
			if record.Currency.Valid {
				line += fmt.Sprintf(" (%s)", record.Currency.String)
			}
			if record.PDFPath.Valid {
				line += fmt.Sprintf("  pdf: %s", record.PDFPath.String)
			}
			fmt.Println(line)
		}
	}
}
