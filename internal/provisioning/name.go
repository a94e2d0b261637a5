package provisioning

import (
	"context"
	"fmt"

	"github.com/imamik/hubctl/internal/azure"
	"github.com/imamik/hubctl/internal/validate"
)

// negotiateHubName loops prompting for a candidate hub name until one
// is syntactically valid and globally unique, or the user cancels.
// Conflicts and failed availability checks are surfaced and re-prompt;
// neither aborts the flow.
func negotiateHubName(ctx context.Context, d Deps, client azure.Client) (string, bool, error) {
	for {
		name, err := d.Prompt.Input(ctx, "IoT Hub name", "my-iot-hub", validate.HubName)
		if err != nil {
			return "", false, err
		}
		if name == "" {
			return "", false, nil
		}

		avail, err := client.CheckNameAvailability(ctx, name)
		if err != nil {
			d.Prompt.Error(azure.ErrorMessage(err))
			continue
		}
		if avail.Available {
			return name, true, nil
		}

		msg := avail.Message
		if msg == "" {
			msg = fmt.Sprintf("IoT Hub name %q is already taken", name)
		}
		d.Prompt.Error(msg)
	}
}
