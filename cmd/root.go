// Package cmd wires the fieldline command line interface.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fieldline/fieldline/internal/config"
	"github.com/fieldline/fieldline/internal/ui/demo"
	"github.com/fieldline/fieldline/internal/ui/shared/fieldchrome"
	"github.com/fieldline/fieldline/internal/ui/styles"
)

var (
	configPath  string
	variantFlag string
)

var rootCmd = &cobra.Command{
	Use:   "fieldline",
	Short: "Interactive text field playground for the terminal",
	Long: `fieldline opens an interactive form showcasing the text field widget:
variants, counters, clearable fields, masked entry, and autofocus.`,
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default .fieldline/config.yaml, then ~/.config/fieldline/config.yaml)")
	rootCmd.Flags().StringVar(&variantFlag, "variant", "",
		"field chrome variant: outlined, underlined, filled, plain")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	styles.SyncBackground()
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	variant := cfg.Input.Variant
	if variantFlag != "" {
		variant = variantFlag
	}
	if err := validateVariant(variant); err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Input.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(demo.New(variant), opts...).Run(); err != nil {
		return fmt.Errorf("running fieldline: %w", err)
	}
	return nil
}

func validateVariant(v string) error {
	switch fieldchrome.Variant(v) {
	case fieldchrome.VariantOutlined, fieldchrome.VariantUnderlined,
		fieldchrome.VariantFilled, fieldchrome.VariantPlain:
		return nil
	}
	return fmt.Errorf("unknown variant %q (expected outlined, underlined, filled, or plain)", v)
}
