package logger

import "github.com/rs/zerolog"

// LoggerConfig holds the resolved logger settings. Console output is always
// on; file output with rotation is enabled only when a path is configured.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
}

// LogFormat represents available log output formats
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
)

// String returns string representation of LogFormat
func (lf LogFormat) String() string {
	if lf == FormatJSON {
		return "json"
	}
	return "console"
}

// DefaultLoggerConfig returns default logger configuration
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:         zerolog.InfoLevel,
		Format:        FormatConsole,
		EnableConsole: true,
		EnableFile:    false,
		MaxSizeMB:     100,
		MaxBackups:    3,
	}
}
