package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saltyhana/goalie/internal/config"
	"github.com/saltyhana/goalie/internal/tui/theme"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [API]")
	fmt.Printf("    Base URL:     %s\n", cfg.API.BaseURL)
	if config.GetAccessToken(cfg) != "" {
		fmt.Println("    Access token: (configured)")
	} else {
		fmt.Println("    Access token: (file store)")
	}
	fmt.Println()

	fmt.Println("  [Form]")
	fmt.Printf("    Crop size:    %d px\n", cfg.Form.CropSize)
	fmt.Printf("    Keep drafts:  %v\n", cfg.Form.KeepDrafts)
	fmt.Printf("    Drafts db:    %s\n", config.DraftsPath())
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:        %s\n", theme.Active.Name)
	return nil
}
