package config

// DiscordConfig defines configuration for the Discord session
type DiscordConfig struct {
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// NewDefaultDiscordConfig creates default Discord configuration.
// The token is expected from the DISCORD_TOKEN environment variable.
func NewDefaultDiscordConfig() DiscordConfig {
	return DiscordConfig{
		Token: "",
	}
}
