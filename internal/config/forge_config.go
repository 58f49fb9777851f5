package config

import "fmt"

// ForgeConfig defines configuration for the self-hosted code forge (Gitea)
type ForgeConfig struct {
	APIToken    string `json:"api_token,omitempty" yaml:"api_token,omitempty"`
	Host        string `json:"host,omitempty" yaml:"host,omitempty" validate:"omitempty,hostname_port|ip"`
	Scheme      string `json:"scheme,omitempty" yaml:"scheme,omitempty" validate:"omitempty,oneof=http https"`
	TimeoutSecs int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultForgeConfig creates default forge configuration
func NewDefaultForgeConfig() ForgeConfig {
	return ForgeConfig{
		APIToken:    "",
		Host:        DefaultForgeHost,
		Scheme:      DefaultForgeScheme,
		TimeoutSecs: DefaultForgeTimeoutSecs,
	}
}

// BaseURL returns the web base URL of the forge instance
func (fc ForgeConfig) BaseURL() string {
	return fmt.Sprintf("%s://%s", fc.Scheme, fc.Host)
}

// APIBaseURL returns the REST API base URL of the forge instance
func (fc ForgeConfig) APIBaseURL() string {
	return fc.BaseURL() + "/api/v1"
}
