package azure

import "context"

// MockClient is a func-field mock of Client for tests.
type MockClient struct {
	ListResourceGroupsFunc    func(ctx context.Context) ([]ResourceGroup, error)
	CreateResourceGroupFunc   func(ctx context.Context, name, location string) (ResourceGroup, error)
	ListLocationsFunc         func(ctx context.Context) ([]Location, error)
	ListHubsFunc              func(ctx context.Context) ([]Hub, error)
	CreateHubFunc             func(ctx context.Context, resourceGroup, name, location, skuName string, capacity int64) (Hub, error)
	CheckNameAvailabilityFunc func(ctx context.Context, name string) (NameAvailability, error)
	GetKeysForKeyNameFunc     func(ctx context.Context, resourceGroup, hubName, keyName string) (AccessKey, error)
}

func (m *MockClient) ListResourceGroups(ctx context.Context) ([]ResourceGroup, error) {
	return m.ListResourceGroupsFunc(ctx)
}

func (m *MockClient) CreateResourceGroup(ctx context.Context, name, location string) (ResourceGroup, error) {
	return m.CreateResourceGroupFunc(ctx, name, location)
}

func (m *MockClient) ListLocations(ctx context.Context) ([]Location, error) {
	return m.ListLocationsFunc(ctx)
}

func (m *MockClient) ListHubs(ctx context.Context) ([]Hub, error) {
	return m.ListHubsFunc(ctx)
}

func (m *MockClient) CreateHub(ctx context.Context, resourceGroup, name, location, skuName string, capacity int64) (Hub, error) {
	return m.CreateHubFunc(ctx, resourceGroup, name, location, skuName, capacity)
}

func (m *MockClient) CheckNameAvailability(ctx context.Context, name string) (NameAvailability, error) {
	return m.CheckNameAvailabilityFunc(ctx, name)
}

func (m *MockClient) GetKeysForKeyName(ctx context.Context, resourceGroup, hubName, keyName string) (AccessKey, error) {
	return m.GetKeysForKeyNameFunc(ctx, resourceGroup, hubName, keyName)
}

// MockAccount is a func-field mock of Account for tests.
type MockAccount struct {
	SignedInFunc      func(ctx context.Context) bool
	RequestLoginFunc  func(ctx context.Context) error
	SubscriptionsFunc func(ctx context.Context) ([]Subscription, error)
}

func (m *MockAccount) SignedIn(ctx context.Context) bool {
	if m.SignedInFunc == nil {
		return true
	}
	return m.SignedInFunc(ctx)
}

func (m *MockAccount) RequestLogin(ctx context.Context) error {
	if m.RequestLoginFunc == nil {
		return nil
	}
	return m.RequestLoginFunc(ctx)
}

func (m *MockAccount) Subscriptions(ctx context.Context) ([]Subscription, error) {
	return m.SubscriptionsFunc(ctx)
}
