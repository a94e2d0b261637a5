// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the hubctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hubctl",
		Short: "Provision Azure IoT Hubs and manage their access credentials",
	}

	// Core commands
	cmd.AddCommand(Create())
	cmd.AddCommand(Select())
	cmd.AddCommand(SAS())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
