package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// countriesCmd represents the countries command.
var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List the service's country table",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := newAPIClient()

		slog.Info("Fetching countries")
		countries, err := api.Countries.List()
		exitOnError(err, "failed to list countries")
		printJSON(countries)
	},
}
