package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyTheme_Preset(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Preset: "catppuccin-mocha"})
	require.NoError(t, err)

	// Catppuccin Mocha uses #CDD6F4 for text.primary
	require.Equal(t, "#CDD6F4", TextPrimaryColor.Dark)
	require.Equal(t, "#89B4FA", PrimaryColor.Dark)
}

func TestApplyTheme_UnknownPreset(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Preset: "not-a-preset"})
	require.Error(t, err, "expected unknown preset to be rejected")
	require.Contains(t, err.Error(), "not-a-preset")
}

func TestApplyTheme_ColorOverrides(t *testing.T) {
	err := ApplyTheme(ThemeConfig{
		Colors: map[string]string{
			"error": "#00FF00",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "#00FF00", ErrorColor.Dark)
	require.Equal(t, "#00FF00", ErrorColor.Light, "empty mode should write both sides")
}

func TestApplyTheme_UnknownToken(t *testing.T) {
	err := ApplyTheme(ThemeConfig{
		Colors: map[string]string{"text.primry": "#FF0000"},
	})
	require.Error(t, err, "expected unknown color token to be rejected")
}

func TestApplyTheme_ModeSelectsSide(t *testing.T) {
	err := ApplyTheme(ThemeConfig{
		Mode:   "light",
		Colors: map[string]string{"primary": "#123456"},
	})
	require.NoError(t, err)
	require.Equal(t, "#123456", PrimaryColor.Light)
	require.NotEqual(t, "#123456", PrimaryColor.Dark, "dark side should be untouched in light mode")
}

func TestPresets_AllTokensKnown(t *testing.T) {
	for name, preset := range Presets {
		for token := range preset.Colors {
			_, ok := colorTokens[token]
			require.True(t, ok, "preset %q references unknown token %q", name, token)
		}
	}
}
