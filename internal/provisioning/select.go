package provisioning

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/imamik/hubctl/internal/azure"
	"github.com/imamik/hubctl/internal/prompt"
	"github.com/imamik/hubctl/internal/telemetry"
)

// SelectHub runs the simpler pipeline for choosing among existing
// hubs. It ends in the same connection-string persistence step as
// CreateHub; cancellation anywhere returns ok=false, and key-fetch
// errors propagate.
func SelectHub(ctx context.Context, d Deps) (*azure.Hub, bool, error) {
	if !ensureLogin(ctx, d) {
		return nil, false, nil
	}

	sub, ok, err := pickSubscription(ctx, d)
	if err != nil || !ok {
		return nil, false, err
	}

	client, err := d.NewClient(sub)
	if err != nil {
		return nil, false, err
	}

	hubs, err := client.ListHubs(ctx)
	if err != nil {
		return nil, false, err
	}
	sortHubs(hubs)

	options := make([]prompt.Option, len(hubs))
	for i, h := range hubs {
		options[i] = prompt.Option{Label: h.Name, Description: h.ResourceGroup}
	}

	idx, err := prompt.PickOne(ctx, d.Prompt, "Select an IoT Hub", options)
	if err != nil || idx < 0 {
		return nil, false, err
	}
	hub := hubs[idx]

	if err := attachConnectionString(ctx, d, client, &hub); err != nil {
		return nil, false, err
	}

	d.Log.Info("IoT Hub selected", "name", hub.Name, "host", hub.HostName)
	d.sink().SendEvent("select.done", map[string]string{
		"iothub.hash": telemetry.HashSecret(hub.ConnectionString),
	})
	return &hub, true, nil
}

// sortHubs orders hubs by display label, case-insensitively and
// collation-aware so the pick list is stable across runs.
func sortHubs(hubs []azure.Hub) {
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(hubs, func(i, j int) bool {
		return c.CompareString(hubs[i].Name, hubs[j].Name) < 0
	})
}
