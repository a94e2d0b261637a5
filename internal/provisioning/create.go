package provisioning

import (
	"context"
	"fmt"

	"github.com/imamik/hubctl/internal/azure"
	"github.com/imamik/hubctl/internal/confstore"
	"github.com/imamik/hubctl/internal/prompt"
	"github.com/imamik/hubctl/internal/sas"
	"github.com/imamik/hubctl/internal/telemetry"
)

// CreateHub runs the interactive provisioning pipeline: login,
// subscription, resource group, location, tier and name selection,
// then the remote creation call and connection-string persistence.
// ok=false without an error means the user cancelled somewhere before
// the creation call; once creation has been issued, the outcome is
// either the augmented descriptor or a propagated failure.
func CreateHub(ctx context.Context, d Deps) (*azure.Hub, bool, error) {
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

	group, ok, err := resolveResourceGroup(ctx, d, client)
	if err != nil || !ok {
		return nil, false, err
	}

	location, ok, err := pickLocation(ctx, d, client)
	if err != nil || !ok {
		return nil, false, err
	}

	tier, ok, err := pickTier(ctx, d)
	if err != nil || !ok {
		return nil, false, err
	}

	name, ok, err := negotiateHubName(ctx, d, client)
	if err != nil || !ok {
		return nil, false, err
	}

	d.sink().SendEvent("create.start", map[string]string{"tier": tier.Code})

	var hub azure.Hub
	err = d.Prompt.Progress(ctx, fmt.Sprintf("Creating IoT Hub %q", name), func(ctx context.Context) error {
		stop := startHeartbeat(d.Log, d.heartbeatInterval())
		defer stop()
		var cerr error
		hub, cerr = client.CreateHub(ctx, group.Name, name, location.Name, tier.Code, tier.Capacity)
		return cerr
	})
	if err != nil {
		reason := azure.ErrorMessage(err)
		d.Log.Error(err, "creating IoT Hub failed", "name", name, "reason", reason)
		d.sink().SendEvent("create.fail", map[string]string{"reason": reason})
		return nil, false, fmt.Errorf("create IoT Hub %q: %w", name, err)
	}
	if hub.ResourceGroup == "" {
		hub.ResourceGroup = group.Name
	}

	if err := attachConnectionString(ctx, d, client, &hub); err != nil {
		reason := azure.ErrorMessage(err)
		d.Log.Error(err, "storing connection string failed", "name", hub.Name, "reason", reason)
		d.sink().SendEvent("create.fail", map[string]string{"reason": reason})
		return nil, false, err
	}

	d.Log.Info("IoT Hub created", "name", hub.Name, "host", hub.HostName)
	d.sink().SendEvent("create.done", map[string]string{
		"tier":        tier.Code,
		"iothub.hash": telemetry.HashSecret(hub.ConnectionString),
	})
	return &hub, true, nil
}

func pickTier(ctx context.Context, d Deps) (Tier, bool, error) {
	options := make([]prompt.Option, len(Tiers))
	for i, t := range Tiers {
		options[i] = prompt.Option{Label: t.Label}
	}

	idx, err := prompt.PickOne(ctx, d.Prompt, "Select a pricing tier", options)
	if err != nil || idx < 0 {
		return Tier{}, false, err
	}
	return Tiers[idx], true, nil
}

// attachConnectionString is the single convergence point of both
// pipelines: it fetches the owner policy key, composes the connection
// string, persists it and attaches it to the descriptor. The stored
// value only ever changes here, after a fully successful operation.
func attachConnectionString(ctx context.Context, d Deps, client azure.Client, hub *azure.Hub) error {
	key, err := client.GetKeysForKeyName(ctx, hub.ResourceGroup, hub.Name, ownerPolicy)
	if err != nil {
		return fmt.Errorf("get %s keys for %q: %w", ownerPolicy, hub.Name, err)
	}

	cs := sas.Compose(hub.HostName, key.KeyName, key.PrimaryKey)
	if err := d.Store.Update(confstore.KeyConnectionString, cs, true); err != nil {
		return fmt.Errorf("store connection string: %w", err)
	}
	if d.Refresh != nil {
		d.Refresh()
	}

	hub.ConnectionString = cs
	return nil
}
