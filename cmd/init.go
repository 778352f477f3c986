package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fieldline/fieldline/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a fieldline config file in the current directory",
	Long:  `Creates a .fieldline/config.yaml file in the current directory with default settings.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := filepath.Join(".fieldline", "config.yaml")

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	cfg := config.Config{
		Theme: config.ThemeConfig{Preset: "default"},
		Input: config.InputConfig{Variant: "outlined", Mouse: true},
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
