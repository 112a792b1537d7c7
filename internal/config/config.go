// Package config provides YAML-based settings loading for the prompter,
// with an embedded default configuration as the final fallback.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-prompter/internal/core"
)

// Config mirrors the settings file layout.
type Config struct {
	Presentation PresentationConfig `yaml:"presentation"`
	Sizing       SizingConfig       `yaml:"sizing"`
}

// PresentationConfig holds the pre-roll and scrolling settings.
type PresentationConfig struct {
	CountdownEnabled bool    `yaml:"countdown_enabled"`
	CountdownSeconds string  `yaml:"countdown_seconds"` // parsed defensively, see ParseCountdownSeconds
	ScrollingEnabled bool    `yaml:"scrolling_enabled"`
	ScrollSpeed      float64 `yaml:"scroll_speed"`
	ScrollSpacing    string  `yaml:"scroll_spacing"` // "tight" or "wide"
}

// SizingConfig holds the font sizing settings.
type SizingConfig struct {
	AutoResize   bool    `yaml:"auto_resize"`
	BaseFontSize float64 `yaml:"base_font_size"`
}

// DefaultCountdownSeconds is used when the configured value does not
// parse as a non-negative integer.
const DefaultCountdownSeconds = 5

// ParseCountdownSeconds parses a countdown value. Malformed or negative
// input falls back to the default rather than propagating an error.
func ParseCountdownSeconds(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return DefaultCountdownSeconds
	}
	return n
}

// ParseSpacing maps a spacing string to a spacing mode. Unknown values
// return an error so flag paths can reject typos; config loading falls
// back to tight instead.
func ParseSpacing(s string) (core.Spacing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tight", "":
		return core.SpacingTight, nil
	case "wide":
		return core.SpacingWide, nil
	}
	return core.SpacingTight, fmt.Errorf("config: unknown spacing %q (want tight or wide)", s)
}

// normalizeSpeed snaps the speed factor to the supported multipliers.
func normalizeSpeed(v float64) float64 {
	switch {
	case v <= 0:
		return 1.0
	case v < 0.75:
		return 0.5
	case v < 1.5:
		return 1.0
	default:
		return 2.0
	}
}

// Settings converts the file representation into runtime settings.
func (c Config) Settings() core.Settings {
	st := core.DefaultSettings()
	st.CountdownEnabled = c.Presentation.CountdownEnabled
	st.CountdownSeconds = ParseCountdownSeconds(c.Presentation.CountdownSeconds)
	st.ScrollingEnabled = c.Presentation.ScrollingEnabled
	st.ScrollSpeed = normalizeSpeed(c.Presentation.ScrollSpeed)
	// A hand-edited config must not abort a presentation: unknown
	// spacing degrades to tight, like malformed countdown seconds.
	if spacing, err := ParseSpacing(c.Presentation.ScrollSpacing); err == nil {
		st.Spacing = spacing
	}
	st.AutoResize = c.Sizing.AutoResize
	if c.Sizing.BaseFontSize > 0 {
		st.BaseFontSize = c.Sizing.BaseFontSize
	}
	return st
}
