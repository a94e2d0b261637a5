// Package provisioning contains the interactive pipelines that create
// or select an IoT Hub and store its connection string.
//
// Every pipeline stage returns (value, ok, err): err reports a failed
// remote operation, ok=false means the user cancelled, and only a
// successful stage lets the pipeline continue. Cancellation is silent
// all the way up; failures are logged, reported and propagated.
package provisioning

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/hubctl/internal/azure"
	"github.com/imamik/hubctl/internal/confstore"
	"github.com/imamik/hubctl/internal/prompt"
	"github.com/imamik/hubctl/internal/telemetry"
)

// ownerPolicy is the shared access policy whose key backs the stored
// connection string.
const ownerPolicy = "iothubowner"

// defaultHeartbeatInterval paces the feedback ticks during the
// long-running hub creation call.
const defaultHeartbeatInterval = time.Second

// Deps carries the external collaborators of the pipelines. Everything
// is injected so tests can run against mocks and an in-memory store.
type Deps struct {
	Account   azure.Account
	NewClient func(sub azure.Subscription) (azure.Client, error)
	Prompt    prompt.Prompter
	Store     confstore.Store
	Telemetry telemetry.Sink
	Log       logr.Logger

	// Refresh, when set, is invoked after the stored connection string
	// changed so dependent views can reload.
	Refresh func()

	// HeartbeatInterval overrides the creation heartbeat pace in tests.
	HeartbeatInterval time.Duration
}

func (d Deps) heartbeatInterval() time.Duration {
	if d.HeartbeatInterval > 0 {
		return d.HeartbeatInterval
	}
	return defaultHeartbeatInterval
}

func (d Deps) sink() telemetry.Sink {
	if d.Telemetry == nil {
		return telemetry.Nop{}
	}
	return d.Telemetry
}

// ensureLogin checks for an authenticated session, triggering the
// external login flow once if there is none. A still-missing session
// afterwards is a cancellation, not an error.
func ensureLogin(ctx context.Context, d Deps) bool {
	if d.Account.SignedIn(ctx) {
		return true
	}
	if err := d.Account.RequestLogin(ctx); err != nil {
		d.Log.V(1).Info("login flow did not complete", "reason", err.Error())
		return false
	}
	return d.Account.SignedIn(ctx)
}

// pickSubscription lets the user choose among authorized subscriptions.
func pickSubscription(ctx context.Context, d Deps) (azure.Subscription, bool, error) {
	subs, err := d.Account.Subscriptions(ctx)
	if err != nil {
		return azure.Subscription{}, false, err
	}

	options := make([]prompt.Option, len(subs))
	for i, s := range subs {
		options[i] = prompt.Option{Label: s.DisplayName, Description: s.ID}
	}

	idx, err := prompt.PickOne(ctx, d.Prompt, "Select a subscription", options)
	if err != nil || idx < 0 {
		return azure.Subscription{}, false, err
	}
	return subs[idx], true, nil
}

// pickLocation lets the user choose among the subscription's regions.
func pickLocation(ctx context.Context, d Deps, client azure.Client) (azure.Location, bool, error) {
	locations, err := client.ListLocations(ctx)
	if err != nil {
		return azure.Location{}, false, err
	}

	options := make([]prompt.Option, len(locations))
	for i, l := range locations {
		options[i] = prompt.Option{Label: l.DisplayName, Description: l.Name}
	}

	idx, err := prompt.PickOne(ctx, d.Prompt, "Select a location", options)
	if err != nil || idx < 0 {
		return azure.Location{}, false, err
	}
	return locations[idx], true, nil
}
