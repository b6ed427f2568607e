package identityfakes

import (
	"context"

	"github.com/jrsteele09/go-customer-portal/internal/identity"
)

// FakeClient is an in-memory identity.Client for handler tests
type FakeClient struct {
	AuthURLBase string
	AuthErr     error

	Result      *identity.Result
	ExchangeErr error

	Logout string

	// Recorded calls
	States         []string
	ExchangedCodes []string
}

var _ identity.Client = (*FakeClient)(nil)

func NewFakeClient() *FakeClient {
	return &FakeClient{
		AuthURLBase: "https://login.example.com/authorize",
		Logout:      "https://login.example.com/logout?post_logout_redirect_uri=http%3A%2F%2Flocalhost%3A3000",
		Result: &identity.Result{
			HomeAccountID: "oid-1.tid-1",
			Username:      "alice@example.com",
			Name:          "Alice Example",
			TenantID:      "tid-1",
			AccessToken:   "fake-access-token",
		},
	}
}

func (f *FakeClient) AuthCodeURL(_ context.Context, state string) (string, error) {
	if f.AuthErr != nil {
		return "", f.AuthErr
	}
	f.States = append(f.States, state)
	return f.AuthURLBase + "?state=" + state, nil
}

func (f *FakeClient) Exchange(_ context.Context, code string) (*identity.Result, error) {
	f.ExchangedCodes = append(f.ExchangedCodes, code)
	if f.ExchangeErr != nil {
		return nil, f.ExchangeErr
	}
	return f.Result, nil
}

func (f *FakeClient) LogoutURL() string {
	return f.Logout
}
