package config

import (
	_ "embed"
)

//go:embed defaults/prompt.yaml
var defaultPromptYAML []byte

// DefaultConfig returns the hardcoded default configuration, used only
// if the embedded YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		Presentation: PresentationConfig{
			CountdownEnabled: true,
			CountdownSeconds: "5",
			ScrollingEnabled: true,
			ScrollSpeed:      1.0,
			ScrollSpacing:    "tight",
		},
		Sizing: SizingConfig{
			AutoResize:   true,
			BaseFontSize: 50,
		},
	}
}
