// Package styles defines the shared color palette and theme presets for
// fieldline widgets. Widgets reference the exported color variables
// directly, so ApplyTheme can restyle the whole UI in one place.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Adaptive theme colors. Defaults follow the built-in "default" preset.
var (
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#1A1A2E", Dark: "#CDD6F4"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#7C7F93", Dark: "#6C7086"}
	PrimaryColor     = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	BorderColor      = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#45475A"}
	ErrorColor       = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"}
	FillColor        = lipgloss.AdaptiveColor{Light: "#E6E9EF", Dark: "#313244"}
	DisabledColor    = lipgloss.AdaptiveColor{Light: "#BCC0CC", Dark: "#585B70"}
)

// colorTokens maps config color tokens to the variables they override.
var colorTokens = map[string]*lipgloss.AdaptiveColor{
	"text.primary": &TextPrimaryColor,
	"text.muted":   &TextMutedColor,
	"primary":      &PrimaryColor,
	"border":       &BorderColor,
	"error":        &ErrorColor,
	"fill":         &FillColor,
	"disabled":     &DisabledColor,
}

// Preset is a named set of color overrides.
type Preset struct {
	Description string
	// Mode is "dark" or "light"; it selects which side of the adaptive
	// colors the preset writes to. Empty writes both.
	Mode   string
	Colors map[string]string
}

// Presets holds the built-in theme presets, keyed by config name.
var Presets = map[string]Preset{
	"default": {
		Description: "Catppuccin-flavored default (adaptive)",
		Colors:      map[string]string{},
	},
	"catppuccin-mocha": {
		Description: "Catppuccin Mocha (dark)",
		Mode:        "dark",
		Colors: map[string]string{
			"text.primary": "#CDD6F4",
			"text.muted":   "#6C7086",
			"primary":      "#89B4FA",
			"border":       "#45475A",
			"error":        "#F38BA8",
			"fill":         "#313244",
			"disabled":     "#585B70",
		},
	},
	"dracula": {
		Description: "Dracula (dark)",
		Mode:        "dark",
		Colors: map[string]string{
			"text.primary": "#F8F8F2",
			"text.muted":   "#6272A4",
			"primary":      "#BD93F9",
			"border":       "#44475A",
			"error":        "#FF5555",
			"fill":         "#343746",
			"disabled":     "#565761",
		},
	},
	"solarized-light": {
		Description: "Solarized (light)",
		Mode:        "light",
		Colors: map[string]string{
			"text.primary": "#073642",
			"text.muted":   "#93A1A1",
			"primary":      "#268BD2",
			"border":       "#93A1A1",
			"error":        "#DC322F",
			"fill":         "#EEE8D5",
			"disabled":     "#CCC4B0",
		},
	},
}

// ThemeConfig carries theme settings from the config file.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme applies a preset and then any per-token color overrides.
// Unknown presets and unknown color tokens are reported as errors so a
// typo in the config file surfaces instead of silently doing nothing.
func ApplyTheme(cfg ThemeConfig) error {
	if cfg.Preset != "" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset %q", cfg.Preset)
		}
		for token, hex := range preset.Colors {
			if err := setToken(token, hex, preset.Mode); err != nil {
				return err
			}
		}
	}
	for token, hex := range cfg.Colors {
		if err := setToken(token, hex, cfg.Mode); err != nil {
			return err
		}
	}
	return nil
}

func setToken(token, hex, mode string) error {
	c, ok := colorTokens[token]
	if !ok {
		return fmt.Errorf("unknown color token %q", token)
	}
	switch mode {
	case "light":
		c.Light = hex
	case "dark":
		c.Dark = hex
	default:
		c.Light = hex
		c.Dark = hex
	}
	return nil
}

// SyncBackground aligns lipgloss adaptive color resolution with the
// detected terminal background.
func SyncBackground() {
	lipgloss.DefaultRenderer().SetHasDarkBackground(termenv.HasDarkBackground())
}
