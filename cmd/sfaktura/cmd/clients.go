package cmd

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
)

// clientsCmd represents the clients command group.
var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Inspect client contacts",
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all client contacts",
	Run: func(cmd *cobra.Command, args []string) {
		api, _ := newAPIClient()

		slog.Info("Fetching client contacts")
		contacts, err := api.Clients.List()
		exitOnError(err, "failed to list client contacts")
		printJSON(contacts)
	},
}

var clientsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View a client contact by ID",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		exitOnError(err, "invalid client id")

		api, _ := newAPIClient()

		slog.Info("Fetching client contact", "id", id)
		contact, err := api.Clients.Get(id)
		exitOnError(err, "failed to fetch client contact")
		printJSON(contact.AsMap())
	},
}

func init() {
	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsViewCmd)
}
