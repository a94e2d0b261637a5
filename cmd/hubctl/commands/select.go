package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/hubctl/cmd/hubctl/handlers"
)

// Select returns the command for choosing among existing IoT Hubs.
func Select() *cobra.Command {
	return &cobra.Command{
		Use:   "select",
		Short: "Select an existing IoT Hub and store its connection string",
		Long: `Select an existing IoT Hub.

Lists the IoT Hubs visible to the chosen subscription and stores the
connection string of the one you pick, replacing any previously
stored value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.SelectHub(cmd.Context())
		},
	}
}
