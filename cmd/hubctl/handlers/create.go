package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/hubctl/internal/provisioning"
	"github.com/imamik/hubctl/internal/ui"
)

// createHub is replaced in tests.
var createHub = provisioning.CreateHub

// Create interactively provisions a new IoT Hub and stores its
// connection string. A cancelled run is not an error.
func Create(ctx context.Context) error {
	if err := requireInteractive(); err != nil {
		return err
	}

	deps, err := buildDeps()
	if err != nil {
		return err
	}

	hub, ok, err := createHub(ctx, deps)
	if err != nil {
		return fmt.Errorf("provisioning failed: %w", err)
	}
	if !ok {
		fmt.Println(ui.Dim("Provisioning cancelled."))
		return nil
	}

	printHubSummary(hub)
	return nil
}
