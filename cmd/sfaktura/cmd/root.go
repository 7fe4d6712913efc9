// Package cmd provides CLI commands for sfaktura.
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/openbilling/superfaktura-go/pkg/config"
	"github.com/openbilling/superfaktura-go/pkg/superfaktura"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sfaktura",
	Short: "Issue and inspect SuperFaktura invoices",
	Long: `sfaktura is a CLI tool for the SuperFaktura invoicing API.

It supports:
- Creating invoices from YAML draft files and saving the rendered PDF
- Listing client contacts and bank accounts
- Keeping a local SQLite archive of issued invoices

Credentials come from SUPERFAKTURA_API_KEY, SUPERFAKTURA_API_URL,
SUPERFAKTURA_API_EMAIL and SUPERFAKTURA_API_COMPANY_ID (or a .env file).

Example:
  sfaktura invoice --file draft.yaml --lang eng
  sfaktura bank default
  sfaktura stats`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(statsCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// newAPIClient loads configuration and constructs the API client. Missing
// credentials abort the command before any network call.
func newAPIClient() (*superfaktura.Client, *config.Config) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	api, err := superfaktura.NewClientFromConfig(cfg.SuperFaktura)
	exitOnError(err, "failed to construct API client")
	return api, cfg
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}

// printJSON pretty-prints a decoded API value to stdout.
func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	exitOnError(err, "failed to render response")
	fmt.Println(string(out))
}
