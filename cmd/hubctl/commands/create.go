package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/hubctl/cmd/hubctl/handlers"
)

// Create returns the command for interactively provisioning an IoT Hub.
//
// The command walks through subscription, resource group, location,
// pricing tier and name selection, creates the hub, and stores its
// connection string for later use by `hubctl sas`.
func Create() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Interactively provision a new IoT Hub",
		Long: `Interactively provision a new IoT Hub.

This command guides you through provisioning step by step:

  - Subscription selection
  - Resource group (existing or newly created)
  - Location
  - Pricing tier (F1, S1, S2 or S3)
  - A globally unique hub name

On success the hub's iothubowner connection string is stored and
becomes the default credential for token generation. Escaping any
prompt cancels the run without touching stored state.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Create(cmd.Context())
		},
	}
}
