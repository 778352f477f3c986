// Package config loads and persists fieldline's configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	localDir = ".fieldline"
	fileName = "config.yaml"
)

// ThemeConfig carries the theme section of the config file. Colors is a
// nested map mirroring the token hierarchy ("text: {primary: ...}").
type ThemeConfig struct {
	Preset string         `mapstructure:"preset" yaml:"preset,omitempty"`
	Mode   string         `mapstructure:"mode" yaml:"mode,omitempty"`
	Colors map[string]any `mapstructure:"colors" yaml:"colors,omitempty"`
}

// InputConfig carries the input section of the config file.
type InputConfig struct {
	// Variant is the default chrome treatment: outlined, underlined,
	// filled, or plain.
	Variant string `mapstructure:"variant" yaml:"variant,omitempty"`
	// Mouse enables mouse reporting.
	Mouse bool `mapstructure:"mouse" yaml:"mouse"`
}

// Config is the root of the config file.
type Config struct {
	Theme ThemeConfig `mapstructure:"theme" yaml:"theme,omitempty"`
	Input InputConfig `mapstructure:"input" yaml:"input,omitempty"`
}

// FlattenedColors converts the nested color map into the dotted token
// form the styles package consumes ("text.primary").
func (t ThemeConfig) FlattenedColors() map[string]string {
	out := make(map[string]string)
	flattenColors("", t.Colors, out)
	return out
}

func flattenColors(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		token := k
		if prefix != "" {
			token = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[token] = val
		case map[string]any:
			flattenColors(token, val, out)
		}
	}
}

// DefaultPath returns the config file location: the project-local
// .fieldline/config.yaml when present, the user config directory
// otherwise.
func DefaultPath() string {
	local := filepath.Join(localDir, fileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fieldline", fileName)
}

// Load reads the config at path, or at DefaultPath when path is empty.
// A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("input.variant", "outlined")
	v.SetDefault("input.mouse", true)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, preserving any keys in the existing
// file that this version does not know about.
func Save(path string, cfg Config) error {
	doc := make(map[string]any)
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing existing config %s: %w", path, err)
		}
	}

	theme := make(map[string]any)
	if cfg.Theme.Preset != "" {
		theme["preset"] = cfg.Theme.Preset
	}
	if cfg.Theme.Mode != "" {
		theme["mode"] = cfg.Theme.Mode
	}
	if len(cfg.Theme.Colors) > 0 {
		theme["colors"] = cfg.Theme.Colors
	}
	if len(theme) > 0 {
		doc["theme"] = theme
	}
	doc["input"] = map[string]any{
		"variant": cfg.Input.Variant,
		"mouse":   cfg.Input.Mouse,
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
