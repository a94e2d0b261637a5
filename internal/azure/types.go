// Package azure wraps the Azure control plane behind the narrow
// interfaces the provisioning pipelines consume.
package azure

import "github.com/Azure/azure-sdk-for-go/sdk/azcore"

// Subscription identifies an authorized subscription together with the
// credential it was discovered under.
type Subscription struct {
	ID          string
	TenantID    string
	DisplayName string
	Credential  azcore.TokenCredential
}

// ResourceGroup is a named container for related resources.
type ResourceGroup struct {
	Name     string
	Location string
}

// Location is a deployment region visible to a subscription.
type Location struct {
	Name        string
	DisplayName string
}

// Hub describes an IoT Hub as returned by the control plane. The
// connection string is not part of the control-plane response; it is
// fetched separately and attached before the descriptor is handed out.
type Hub struct {
	Name             string
	ResourceGroup    string
	HostName         string
	ConnectionString string
}

// AccessKey is a shared access policy key pair for a hub.
type AccessKey struct {
	KeyName      string
	PrimaryKey   string
	SecondaryKey string
}

// NameAvailability is the result of a hub name uniqueness check.
type NameAvailability struct {
	Available bool
	Message   string
}
