package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/hubctl/internal/provisioning"
	"github.com/imamik/hubctl/internal/ui"
)

// selectHub is replaced in tests.
var selectHub = provisioning.SelectHub

// SelectHub interactively picks one of the existing IoT Hubs and
// stores its connection string.
func SelectHub(ctx context.Context) error {
	if err := requireInteractive(); err != nil {
		return err
	}

	deps, err := buildDeps()
	if err != nil {
		return err
	}

	hub, ok, err := selectHub(ctx, deps)
	if err != nil {
		return fmt.Errorf("selecting IoT Hub failed: %w", err)
	}
	if !ok {
		fmt.Println(ui.Dim("Selection cancelled."))
		return nil
	}

	printHubSummary(hub)
	return nil
}
