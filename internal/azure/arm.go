package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/iothub/armiothub"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// ARMClient implements Client using the Azure Resource Manager SDK.
type ARMClient struct {
	subscriptionID string
	hubs           *armiothub.ResourceClient
	groups         *armresources.ResourceGroupsClient
	subscriptions  *armsubscriptions.Client
}

// NewARMClient creates a Client scoped to one subscription.
func NewARMClient(subscriptionID string, cred azcore.TokenCredential) (*ARMClient, error) {
	hubs, err := armiothub.NewResourceClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create iothub client: %w", err)
	}
	groups, err := armresources.NewResourceGroupsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create resource groups client: %w", err)
	}
	subscriptions, err := armsubscriptions.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create subscriptions client: %w", err)
	}

	return &ARMClient{
		subscriptionID: subscriptionID,
		hubs:           hubs,
		groups:         groups,
		subscriptions:  subscriptions,
	}, nil
}

func (c *ARMClient) ListResourceGroups(ctx context.Context) ([]ResourceGroup, error) {
	var out []ResourceGroup
	pager := c.groups.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list resource groups: %w", err)
		}
		for _, g := range page.Value {
			out = append(out, ResourceGroup{
				Name:     deref(g.Name),
				Location: deref(g.Location),
			})
		}
	}
	return out, nil
}

func (c *ARMClient) CreateResourceGroup(ctx context.Context, name, location string) (ResourceGroup, error) {
	resp, err := c.groups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
	}, nil)
	if err != nil {
		return ResourceGroup{}, fmt.Errorf("create resource group %q: %w", name, err)
	}
	return ResourceGroup{
		Name:     deref(resp.Name),
		Location: deref(resp.Location),
	}, nil
}

func (c *ARMClient) ListLocations(ctx context.Context) ([]Location, error) {
	var out []Location
	pager := c.subscriptions.NewListLocationsPager(c.subscriptionID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list locations: %w", err)
		}
		for _, l := range page.Value {
			out = append(out, Location{
				Name:        deref(l.Name),
				DisplayName: deref(l.DisplayName),
			})
		}
	}
	return out, nil
}

func (c *ARMClient) ListHubs(ctx context.Context) ([]Hub, error) {
	var out []Hub
	pager := c.hubs.NewListBySubscriptionPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list IoT Hubs: %w", err)
		}
		for _, d := range page.Value {
			out = append(out, hubFromDescription(d))
		}
	}
	return out, nil
}

func (c *ARMClient) CreateHub(ctx context.Context, resourceGroup, name, location, skuName string, capacity int64) (Hub, error) {
	desc := armiothub.Description{
		Location: to.Ptr(location),
		SKU: &armiothub.SKUInfo{
			Name:     to.Ptr(armiothub.IotHubSKU(skuName)),
			Capacity: to.Ptr(capacity),
		},
		Properties: &armiothub.Properties{},
	}

	poller, err := c.hubs.BeginCreateOrUpdate(ctx, resourceGroup, name, desc, nil)
	if err != nil {
		return Hub{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return Hub{}, err
	}

	hub := hubFromDescription(&resp.Description)
	if hub.ResourceGroup == "" {
		hub.ResourceGroup = resourceGroup
	}
	return hub, nil
}

func (c *ARMClient) CheckNameAvailability(ctx context.Context, name string) (NameAvailability, error) {
	resp, err := c.hubs.CheckNameAvailability(ctx, armiothub.OperationInputs{
		Name: to.Ptr(name),
	}, nil)
	if err != nil {
		return NameAvailability{}, err
	}

	avail := NameAvailability{Message: deref(resp.Message)}
	if resp.NameAvailable != nil {
		avail.Available = *resp.NameAvailable
	}
	return avail, nil
}

func (c *ARMClient) GetKeysForKeyName(ctx context.Context, resourceGroup, hubName, keyName string) (AccessKey, error) {
	resp, err := c.hubs.GetKeysForKeyName(ctx, resourceGroup, hubName, keyName, nil)
	if err != nil {
		return AccessKey{}, err
	}
	return AccessKey{
		KeyName:      deref(resp.KeyName),
		PrimaryKey:   deref(resp.PrimaryKey),
		SecondaryKey: deref(resp.SecondaryKey),
	}, nil
}

func hubFromDescription(d *armiothub.Description) Hub {
	hub := Hub{Name: deref(d.Name)}
	if d.Properties != nil {
		hub.HostName = deref(d.Properties.HostName)
	}
	// The resource group is not a first-class field on the descriptor;
	// it is carried in the resource ID.
	hub.ResourceGroup = resourceGroupFromID(deref(d.ID))
	return hub
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
