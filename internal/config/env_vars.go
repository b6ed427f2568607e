package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	// microsoftLoginBase is the Azure AD v2.0 endpoint host
	microsoftLoginBase = "https://login.microsoftonline.com"

	envProduction = "production"
)

type EnvVars struct {
	Port                  string `env:"PORT" envDefault:"3000"`
	AppName               string `env:"APP_NAME" envDefault:"Customer Portal"`
	Environment           string `env:"ENV" envDefault:"development"`
	AzureClientID         string `env:"AZURE_CLIENT_ID"`
	AzureTenantID         string `env:"AZURE_TENANT_ID"`
	AzureClientSecret     string `env:"AZURE_CLIENT_SECRET"`
	RedirectURI           string `env:"REDIRECT_URI" envDefault:"http://localhost:3000/redirect"`
	PostLogoutRedirectURI string `env:"POST_LOGOUT_REDIRECT_URI" envDefault:"http://localhost:3000"`
	SessionSecret         string `env:"SESSION_SECRET" envDefault:"your-secret-key-change-this"`
}

var _ EnvConfig = EnvVars{}
var _ AzureConfig = EnvVars{}
var _ SessionConfig = EnvVars{}

func parseEnvVars() (EnvVars, error) {
	var vars EnvVars
	if err := env.Parse(&vars); err != nil {
		return EnvVars{}, fmt.Errorf("config parse: %w", err)
	}

	var missing []string
	if vars.AzureClientID == "" {
		missing = append(missing, "AZURE_CLIENT_ID")
	}
	if vars.AzureTenantID == "" {
		missing = append(missing, "AZURE_TENANT_ID")
	}
	if vars.AzureClientSecret == "" {
		missing = append(missing, "AZURE_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return EnvVars{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return vars, nil
}

func (e EnvVars) GetPort() string {
	port := e.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	return e.Environment
}

func (e EnvVars) IsProduction() bool {
	return e.Environment == envProduction
}

func (e EnvVars) GetClientID() string {
	return e.AzureClientID
}

func (e EnvVars) GetTenantID() string {
	return e.AzureTenantID
}

func (e EnvVars) GetClientSecret() string {
	return e.AzureClientSecret
}

func (e EnvVars) GetRedirectURI() string {
	return e.RedirectURI
}

func (e EnvVars) GetPostLogoutRedirectURI() string {
	return e.PostLogoutRedirectURI
}

// GetAuthority returns the tenant's Azure AD v2.0 issuer URL, used for OIDC
// discovery (e.g. "https://login.microsoftonline.com/{tenant}/v2.0")
func (e EnvVars) GetAuthority() string {
	return fmt.Sprintf("%s/%s/v2.0", microsoftLoginBase, e.AzureTenantID)
}

// GetLogoutEndpoint returns the tenant's front-channel logout endpoint
func (e EnvVars) GetLogoutEndpoint() string {
	return fmt.Sprintf("%s/%s/oauth2/v2.0/logout", microsoftLoginBase, e.AzureTenantID)
}

func (e EnvVars) GetSessionSecret() []byte {
	return []byte(e.SessionSecret)
}
