package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// bankCmd represents the bank command group.
var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect bank accounts",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bank accounts",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := newAPIClient()

		slog.Info("Fetching bank accounts")
		accounts, err := api.BankAccounts.List()
		exitOnError(err, "failed to list bank accounts")
		printJSON(accounts)
	},
}

var bankDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Show the default bank account",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := newAPIClient()

		slog.Info("Fetching default bank account")
		account, err := api.BankAccounts.Default()
		exitOnError(err, "failed to fetch default bank account")
		printJSON(account.AsMap())
	},
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankDefaultCmd)
}
