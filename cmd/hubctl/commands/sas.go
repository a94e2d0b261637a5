package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/hubctl/cmd/hubctl/handlers"
)

// SAS returns the parent command for shared access token generation.
func SAS() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sas",
		Short: "Generate time-limited shared access tokens",
	}
	cmd.AddCommand(sasHub())
	cmd.AddCommand(sasDevice())
	return cmd
}

// sasHub generates a hub-scoped token from the stored connection
// string (or an explicit one).
//
// Flags:
//
//	--hours: token lifetime in hours, fractions allowed (default 1)
//	--connection-string: use this hub connection string instead of the stored one
func sasHub() *cobra.Command {
	var (
		hours            float64
		connectionString string
	)

	cmd := &cobra.Command{
		Use:   "hub",
		Short: "Generate a hub-scoped shared access token",
		Long: `Generate a hub-scoped shared access token.

The token is derived from the stored connection string (see
"hubctl create" and "hubctl select") and is valid for --hours
hours; fractional values are allowed. The token is printed and
copied to the clipboard.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.HubSAS(hours, connectionString)
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 1, "Token lifetime in hours (fractions allowed)")
	cmd.Flags().StringVar(&connectionString, "connection-string", "", "Hub connection string (defaults to the stored one)")

	return cmd
}

// sasDevice generates a device-scoped token from a device connection
// string.
func sasDevice() *cobra.Command {
	var (
		hours            float64
		connectionString string
	)

	cmd := &cobra.Command{
		Use:   "device",
		Short: "Generate a device-scoped shared access token",
		Long: `Generate a device-scoped shared access token.

Device tokens sign the device resource URI and carry no policy
name. The device connection string has the form
HostName=<host>;DeviceId=<id>;SharedAccessKey=<key>.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.DeviceSAS(hours, connectionString)
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 1, "Token lifetime in hours (fractions allowed)")
	cmd.Flags().StringVar(&connectionString, "connection-string", "", "Device connection string")
	_ = cmd.MarkFlagRequired("connection-string")

	return cmd
}
