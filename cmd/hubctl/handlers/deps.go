// Package handlers implements the CLI command logic. Collaborators are
// held in package-level vars so tests can substitute them.
package handlers

import (
	"fmt"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/imamik/hubctl/internal/azure"
	"github.com/imamik/hubctl/internal/confstore"
	"github.com/imamik/hubctl/internal/prompt"
	"github.com/imamik/hubctl/internal/provisioning"
	"github.com/imamik/hubctl/internal/telemetry"
	"github.com/imamik/hubctl/internal/ui"
)

// Factory function variables - can be replaced in tests.
var (
	buildDeps     = defaultDeps
	openStore     = func() (confstore.Store, error) { return confstore.Open() }
	interactiveOK = prompt.Interactive
)

// cliLogger adapts the provisioning engine's structured logging onto
// the standard CLI log output.
func cliLogger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			log.Printf("%s: %s", prefix, args)
		} else {
			log.Println(args)
		}
	}, funcr.Options{})
}

func defaultDeps() (provisioning.Deps, error) {
	store, err := openStore()
	if err != nil {
		return provisioning.Deps{}, fmt.Errorf("open config store: %w", err)
	}

	logger := cliLogger()
	return provisioning.Deps{
		Account: azure.NewCLIAccount(),
		NewClient: func(sub azure.Subscription) (azure.Client, error) {
			return azure.NewARMClient(sub.ID, sub.Credential)
		},
		Prompt:    prompt.NewTerminal(),
		Store:     store,
		Telemetry: telemetry.NewLogSink(logger),
		Log:       logger,
		Refresh: func() {
			fmt.Println(ui.Dim("Stored connection string updated."))
		},
	}, nil
}

func requireInteractive() error {
	if !interactiveOK() {
		return fmt.Errorf("this command needs an interactive terminal")
	}
	return nil
}

// printHubSummary prints the result of a successful create or select.
func printHubSummary(hub *azure.Hub) {
	fmt.Println()
	fmt.Println(ui.Title(fmt.Sprintf("  IoT Hub: %s", hub.Name)))
	fmt.Println()
	fmt.Printf("  Resource group: %s\n", hub.ResourceGroup)
	fmt.Printf("  Host name:      %s\n", hub.HostName)
	fmt.Println()
	fmt.Println(ui.Success("  Connection string stored. Generate access tokens with:"))
	fmt.Println(ui.Dim("    hubctl sas hub --hours 1"))
	fmt.Println()
}
