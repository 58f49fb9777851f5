package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aleister1102/unfurler/internal/errorwrapper"
)

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Forge Defaults
	DefaultForgeHost        = "10.77.0.20"
	DefaultForgeScheme      = "http"
	DefaultForgeTimeoutSecs = 20

	// Page Defaults
	DefaultPageUserAgent      = "6ZeH44Gu5omL44GM5p2l44Gf44KI44CcCg=="
	DefaultPageTimeoutSecs    = 20
	DefaultPageMaxContentSize = 5 * 1024 * 1024
	DefaultFaviconConverter   = "./extract-ico.sh"

	// Environment variables carrying secrets
	EnvDiscordToken = "DISCORD_TOKEN"
	EnvForgeToken   = "GITEA_TOKEN"
)

// GlobalConfig is the root configuration for the unfurler bot
type GlobalConfig struct {
	DiscordConfig DiscordConfig `json:"discord_config,omitempty" yaml:"discord_config,omitempty"`
	ForgeConfig   ForgeConfig   `json:"forge_config,omitempty" yaml:"forge_config,omitempty"`
	LogConfig     LogConfig     `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	PageConfig    PageConfig    `json:"page_config,omitempty" yaml:"page_config,omitempty"`
}

// NewDefaultGlobalConfig creates a GlobalConfig populated with defaults
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DiscordConfig: NewDefaultDiscordConfig(),
		ForgeConfig:   NewDefaultForgeConfig(),
		LogConfig:     NewDefaultLogConfig(),
		PageConfig:    NewDefaultPageConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath, supports both JSON
// and YAML formats, and applies environment overrides for secrets last.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to read config file")
		}

		if err := parseConfigContent(data, filePath, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse config content")
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

// applyEnvOverrides lets environment variables override file-provided secrets.
// Tokens are opaque credential strings supplied at process start.
func applyEnvOverrides(cfg *GlobalConfig) {
	if token := os.Getenv(EnvDiscordToken); token != "" {
		cfg.DiscordConfig.Token = token
	}
	if token := os.Getenv(EnvForgeToken); token != "" {
		cfg.ForgeConfig.APIToken = token
	}
}
