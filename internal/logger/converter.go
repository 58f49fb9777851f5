package logger

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/unfurler/internal/config"
)

// ConfigConverter converts config.LogConfig into LoggerConfig
type ConfigConverter struct{}

// NewConfigConverter creates a new config converter
func NewConfigConverter() *ConfigConverter {
	return &ConfigConverter{}
}

// ConvertConfig converts the file-level log configuration into logger settings
func (cc *ConfigConverter) ConvertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	loggerConfig := DefaultLoggerConfig()

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err == nil && cfg.LogLevel != "" {
		loggerConfig.Level = level
	}

	loggerConfig.Format = parseFormat(cfg.LogFormat)

	if cfg.LogFile != "" {
		loggerConfig.EnableFile = true
		loggerConfig.FilePath = cfg.LogFile
	}
	if cfg.MaxLogSizeMB > 0 {
		loggerConfig.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		loggerConfig.MaxBackups = cfg.MaxLogBackups
	}

	return loggerConfig, nil
}

// parseFormat maps a format name to a LogFormat, defaulting to console
func parseFormat(format string) LogFormat {
	if strings.ToLower(format) == "json" {
		return FormatJSON
	}
	return FormatConsole
}
