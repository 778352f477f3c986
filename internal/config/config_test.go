package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldline/fieldline/internal/ui/styles"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "outlined", cfg.Input.Variant)
	require.True(t, cfg.Input.Mouse)
}

func TestLoadThemePreset(t *testing.T) {
	path := writeConfig(t, `
theme:
  preset: catppuccin-mocha
input:
  variant: underlined
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "catppuccin-mocha", cfg.Theme.Preset)
	require.Equal(t, "underlined", cfg.Input.Variant)

	err = styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	})
	require.NoError(t, err)

	// Catppuccin Mocha uses #CDD6F4 for text.primary.
	require.Equal(t, "#CDD6F4", styles.TextPrimaryColor.Dark)
}

func TestFlattenedColors(t *testing.T) {
	cfg := ThemeConfig{
		Colors: map[string]any{
			"text": map[string]any{
				"primary": "#FF0000",
				"muted":   "#888888",
			},
			"border": "#00FF00",
		},
	}

	flat := cfg.FlattenedColors()
	require.Equal(t, "#FF0000", flat["text.primary"])
	require.Equal(t, "#888888", flat["text.muted"])
	require.Equal(t, "#00FF00", flat["border"])
}

func TestSaveCreatesNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fieldline", "config.yaml")

	err := Save(path, Config{
		Theme: ThemeConfig{Preset: "dracula"},
		Input: InputConfig{Variant: "filled", Mouse: true},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "preset: dracula")
	require.Contains(t, content, "variant: filled")
	require.Contains(t, content, "mouse: true")
}

func TestSavePreservesUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
custom_section:
  keep: me
input:
  variant: outlined
  mouse: true
`)

	err := Save(path, Config{Input: InputConfig{Variant: "plain", Mouse: false}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "keep: me")
	require.Contains(t, content, "variant: plain")
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := Config{
		Theme: ThemeConfig{
			Preset: "solarized-light",
			Colors: map[string]any{"primary": "#123456"},
		},
		Input: InputConfig{Variant: "underlined", Mouse: true},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want.Theme.Preset, got.Theme.Preset)
	require.Equal(t, want.Input.Variant, got.Input.Variant)
	require.Equal(t, "#123456", got.Theme.FlattenedColors()["primary"])
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "theme: [not: a map")
	_, err := Load(path)
	require.Error(t, err)
}
