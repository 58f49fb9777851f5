package config

// PageConfig defines configuration for generic page unfurling
type PageConfig struct {
	FaviconConverter string `json:"favicon_converter,omitempty" yaml:"favicon_converter,omitempty"`
	MaxContentSize   int    `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"omitempty,min=1"`
	TimeoutSecs      int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
	UserAgent        string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// NewDefaultPageConfig creates default page configuration
func NewDefaultPageConfig() PageConfig {
	return PageConfig{
		FaviconConverter: DefaultFaviconConverter,
		MaxContentSize:   DefaultPageMaxContentSize,
		TimeoutSecs:      DefaultPageTimeoutSecs,
		UserAgent:        DefaultPageUserAgent,
	}
}
