package config

type Config interface {
	EnvConfig
	AzureConfig
	SessionConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	IsProduction() bool
}

type AzureConfig interface {
	GetClientID() string
	GetTenantID() string
	GetClientSecret() string
	GetRedirectURI() string
	GetPostLogoutRedirectURI() string
	GetAuthority() string
	GetLogoutEndpoint() string
}

type SessionConfig interface {
	GetSessionSecret() []byte
}

type mainConfig struct {
	EnvVars
}

// Load reads configuration from the environment. Missing Azure AD
// credentials are a startup-time misconfiguration and fail the load.
func Load() (Config, error) {
	vars, err := parseEnvVars()
	if err != nil {
		return nil, err
	}
	return mainConfig{EnvVars: vars}, nil
}
