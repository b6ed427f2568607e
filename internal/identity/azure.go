package identity

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-customer-portal/internal/config"
	"golang.org/x/oauth2"
)

// Scopes requested on every login attempt
var Scopes = []string{oidc.ScopeOpenID, "profile", "email", "User.Read"}

// AzureClient is a confidential OAuth2 client against an Azure AD tenant.
// Provider discovery runs lazily on first use and the result is cached, so
// construction never touches the network.
type AzureClient struct {
	cfg config.AzureConfig

	mu       sync.RWMutex
	oauthCfg *oauth2.Config
	verifier *oidc.IDTokenVerifier
}

var _ Client = (*AzureClient)(nil)

func NewAzureClient(cfg config.AzureConfig) *AzureClient {
	return &AzureClient{cfg: cfg}
}

// setup performs OIDC discovery against the tenant authority once and
// caches the resulting endpoints and verifier
func (c *AzureClient) setup(ctx context.Context) (*oauth2.Config, *oidc.IDTokenVerifier, error) {
	c.mu.RLock()
	oauthCfg, verifier := c.oauthCfg, c.verifier
	c.mu.RUnlock()
	if oauthCfg != nil {
		return oauthCfg, verifier, nil
	}

	provider, err := oidc.NewProvider(ctx, c.cfg.GetAuthority())
	if err != nil {
		return nil, nil, &ProviderError{Op: "discovery", Err: err}
	}

	oauthCfg = &oauth2.Config{
		ClientID:     c.cfg.GetClientID(),
		ClientSecret: c.cfg.GetClientSecret(),
		Endpoint:     provider.Endpoint(),
		RedirectURL:  c.cfg.GetRedirectURI(),
		Scopes:       Scopes,
	}
	verifier = provider.Verifier(&oidc.Config{ClientID: c.cfg.GetClientID()})

	c.mu.Lock()
	c.oauthCfg = oauthCfg
	c.verifier = verifier
	c.mu.Unlock()

	return oauthCfg, verifier, nil
}

func (c *AzureClient) AuthCodeURL(ctx context.Context, state string) (string, error) {
	oauthCfg, _, err := c.setup(ctx)
	if err != nil {
		return "", err
	}
	// Force the account chooser so shared browsers do not silently reuse
	// the previous Microsoft login
	return oauthCfg.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account")), nil
}

func (c *AzureClient) Exchange(ctx context.Context, code string) (*Result, error) {
	oauthCfg, verifier, err := c.setup(ctx)
	if err != nil {
		return nil, err
	}

	oauth2Token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, &ProviderError{Op: "token exchange", Err: err}
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return nil, &ProviderError{Op: "token exchange", Err: errors.New("no ID token in response")}
	}

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, &ProviderError{Op: "id token verification", Err: err}
	}

	var claims struct {
		Sub      string `json:"sub"`
		Oid      string `json:"oid"`
		Tid      string `json:"tid"`
		Username string `json:"preferred_username"`
		Email    string `json:"email"`
		Name     string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, &ProviderError{Op: "id token verification", Err: fmt.Errorf("extract claims: %w", err)}
	}

	username := claims.Username
	if username == "" {
		username = claims.Email
	}

	// MSAL-style home account ID: "{object id}.{tenant id}" when both are
	// present, else the bare subject
	homeAccountID := claims.Sub
	if claims.Oid != "" && claims.Tid != "" {
		homeAccountID = claims.Oid + "." + claims.Tid
	}

	return &Result{
		HomeAccountID: homeAccountID,
		Username:      username,
		Name:          claims.Name,
		TenantID:      claims.Tid,
		AccessToken:   oauth2Token.AccessToken,
	}, nil
}

func (c *AzureClient) LogoutURL() string {
	return c.cfg.GetLogoutEndpoint() + "?post_logout_redirect_uri=" + url.QueryEscape(c.cfg.GetPostLogoutRedirectURI())
}
