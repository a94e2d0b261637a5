package azure

import "context"

// Client is the subscription-scoped control-plane surface used by the
// provisioning pipelines. It abstracts the underlying cloud provider
// API so tests can substitute a mock.
type Client interface {
	// ListResourceGroups returns all resource groups in the subscription.
	ListResourceGroups(ctx context.Context) ([]ResourceGroup, error)

	// CreateResourceGroup creates or updates a resource group.
	CreateResourceGroup(ctx context.Context, name, location string) (ResourceGroup, error)

	// ListLocations returns the regions available to the subscription.
	ListLocations(ctx context.Context) ([]Location, error)

	// ListHubs returns all IoT Hubs in the subscription.
	ListHubs(ctx context.Context) ([]Hub, error)

	// CreateHub creates an IoT Hub and blocks until the long-running
	// operation settles.
	CreateHub(ctx context.Context, resourceGroup, name, location, skuName string, capacity int64) (Hub, error)

	// CheckNameAvailability checks whether a hub name is globally unique.
	CheckNameAvailability(ctx context.Context, name string) (NameAvailability, error)

	// GetKeysForKeyName fetches the access keys of a shared access policy.
	GetKeysForKeyName(ctx context.Context, resourceGroup, hubName, keyName string) (AccessKey, error)
}

// Account is the authenticated session provider. A failed or declined
// login is not an error: the pipelines treat it as cancellation.
type Account interface {
	// SignedIn reports whether a usable session exists.
	SignedIn(ctx context.Context) bool

	// RequestLogin triggers the external login flow.
	RequestLogin(ctx context.Context) error

	// Subscriptions lists the subscriptions the session may use.
	Subscriptions(ctx context.Context) ([]Subscription, error)
}
