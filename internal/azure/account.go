package azure

import (
	"context"
	"fmt"
	"os/exec"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// armScope is the token scope probed to decide whether a session exists.
const armScope = "https://management.azure.com/.default"

// CLIAccount implements Account on top of the Azure CLI: the session is
// whatever `az` is logged in as, and the external login flow is
// `az login`.
type CLIAccount struct {
	mu   sync.Mutex
	cred azcore.TokenCredential

	// runLogin is replaced in tests.
	runLogin func(ctx context.Context) error
}

// NewCLIAccount returns an Account backed by the local Azure CLI.
func NewCLIAccount() *CLIAccount {
	return &CLIAccount{
		runLogin: func(ctx context.Context) error {
			return exec.CommandContext(ctx, "az", "login").Run()
		},
	}
}

func (a *CLIAccount) credential() (azcore.TokenCredential, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cred == nil {
		cred, err := azidentity.NewAzureCLICredential(nil)
		if err != nil {
			return nil, fmt.Errorf("create CLI credential: %w", err)
		}
		a.cred = cred
	}
	return a.cred, nil
}

func (a *CLIAccount) SignedIn(ctx context.Context) bool {
	cred, err := a.credential()
	if err != nil {
		return false
	}
	_, err = cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{armScope}})
	return err == nil
}

func (a *CLIAccount) RequestLogin(ctx context.Context) error {
	if err := a.runLogin(ctx); err != nil {
		return fmt.Errorf("az login: %w", err)
	}
	// Drop the cached credential so the next probe sees the new session.
	a.mu.Lock()
	a.cred = nil
	a.mu.Unlock()
	return nil
}

func (a *CLIAccount) Subscriptions(ctx context.Context) ([]Subscription, error) {
	cred, err := a.credential()
	if err != nil {
		return nil, err
	}
	client, err := armsubscriptions.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create subscriptions client: %w", err)
	}

	var out []Subscription
	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list subscriptions: %w", err)
		}
		for _, s := range page.Value {
			out = append(out, Subscription{
				ID:          deref(s.SubscriptionID),
				TenantID:    deref(s.TenantID),
				DisplayName: deref(s.DisplayName),
				Credential:  cred,
			})
		}
	}
	return out, nil
}
