package provisioning

import (
	"context"
	"fmt"

	"github.com/imamik/hubctl/internal/azure"
	"github.com/imamik/hubctl/internal/prompt"
	"github.com/imamik/hubctl/internal/validate"
)

const createGroupLabel = "+ Create a new resource group"

// resolveResourceGroup obtains an existing resource group or drives the
// creation of a new one. Cancellation at any depth returns ok=false
// without having touched the control plane.
func resolveResourceGroup(ctx context.Context, d Deps, client azure.Client) (azure.ResourceGroup, bool, error) {
	groups, err := client.ListResourceGroups(ctx)
	if err != nil {
		return azure.ResourceGroup{}, false, err
	}

	options := make([]prompt.Option, 0, len(groups)+1)
	options = append(options, prompt.Option{Label: createGroupLabel})
	for _, g := range groups {
		options = append(options, prompt.Option{Label: g.Name, Description: g.Location})
	}

	idx, err := prompt.PickOne(ctx, d.Prompt, "Select a resource group", options)
	if err != nil || idx < 0 {
		return azure.ResourceGroup{}, false, err
	}
	if idx > 0 {
		return groups[idx-1], true, nil
	}
	return createResourceGroup(ctx, d, client)
}

func createResourceGroup(ctx context.Context, d Deps, client azure.Client) (azure.ResourceGroup, bool, error) {
	name, err := d.Prompt.Input(ctx, "Resource group name", "my-resource-group", validate.ResourceGroupName)
	if err != nil {
		return azure.ResourceGroup{}, false, err
	}
	if name == "" {
		return azure.ResourceGroup{}, false, nil
	}

	location, ok, err := pickLocation(ctx, d, client)
	if err != nil || !ok {
		return azure.ResourceGroup{}, false, err
	}

	var group azure.ResourceGroup
	err = d.Prompt.Progress(ctx, fmt.Sprintf("Creating resource group %q", name), func(ctx context.Context) error {
		var cerr error
		group, cerr = client.CreateResourceGroup(ctx, name, location.Name)
		return cerr
	})
	if err != nil {
		return azure.ResourceGroup{}, false, err
	}
	return group, true, nil
}
