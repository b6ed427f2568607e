package config_test

import (
	"testing"

	"github.com/jrsteele09/go-customer-portal/internal/config"
	"github.com/stretchr/testify/require"
)

func setAzureEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AZURE_CLIENT_ID", "client-123")
	t.Setenv("AZURE_TENANT_ID", "tenant-456")
	t.Setenv("AZURE_CLIENT_SECRET", "secret-789")
}

func TestLoadDefaults(t *testing.T) {
	setAzureEnv(t)

	c, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":3000", c.GetPort())
	require.Equal(t, "development", c.GetEnv())
	require.False(t, c.IsProduction())
	require.Equal(t, "http://localhost:3000/redirect", c.GetRedirectURI())
	require.Equal(t, "http://localhost:3000", c.GetPostLogoutRedirectURI())
	require.NotEmpty(t, c.GetSessionSecret())
}

func TestLoadMissingAzureCredentials(t *testing.T) {
	t.Setenv("AZURE_CLIENT_ID", "")
	t.Setenv("AZURE_TENANT_ID", "tenant-456")
	t.Setenv("AZURE_CLIENT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "AZURE_CLIENT_ID")
	require.Contains(t, err.Error(), "AZURE_CLIENT_SECRET")
}

func TestAuthorityAndLogoutEndpoints(t *testing.T) {
	setAzureEnv(t)

	c, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "https://login.microsoftonline.com/tenant-456/v2.0", c.GetAuthority())
	require.Equal(t, "https://login.microsoftonline.com/tenant-456/oauth2/v2.0/logout", c.GetLogoutEndpoint())
}

func TestPortPrefixing(t *testing.T) {
	setAzureEnv(t)
	t.Setenv("PORT", "8080")

	c, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", c.GetPort())
}

func TestProductionEnv(t *testing.T) {
	setAzureEnv(t)
	t.Setenv("ENV", "production")

	c, err := config.Load()
	require.NoError(t, err)
	require.True(t, c.IsProduction())
}
