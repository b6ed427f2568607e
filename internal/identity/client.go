// Package identity wraps the OAuth2 / OpenID Connect conversation with the
// identity provider. All protocol and cryptographic work (discovery, token
// exchange, ID token signature/issuer/audience validation) is delegated to
// the underlying libraries; callers only see an authorization URL, an
// exchange result, and a logout URL.
package identity

import (
	"context"
	"fmt"
)

// Result is the outcome of a successful authorization-code exchange
type Result struct {
	HomeAccountID string
	Username      string
	Name          string
	TenantID      string
	AccessToken   string
}

type Client interface {
	// AuthCodeURL builds the provider authorization URL carrying the given
	// CSRF state token
	AuthCodeURL(ctx context.Context, state string) (string, error)

	// Exchange trades an authorization code for tokens and a verified
	// identity. Any transport or validation failure comes back as a
	// *ProviderError.
	Exchange(ctx context.Context, code string) (*Result, error)

	// LogoutURL is the provider's front-channel logout endpoint, including
	// the post-logout redirect
	LogoutURL() string
}

// ProviderError wraps any failure at the identity-provider boundary
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
