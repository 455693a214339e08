// Package cmd implements the goalie CLI commands.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/saltyhana/goalie/internal/api"
	"github.com/saltyhana/goalie/internal/auth"
	"github.com/saltyhana/goalie/internal/config"
	"github.com/saltyhana/goalie/internal/log"
	"github.com/saltyhana/goalie/internal/tui/theme"
)

var (
	flagBaseURL  string
	flagQuiet    bool
	flagNoDrafts bool
)

var rootCmd = &cobra.Command{
	Use:   "goalie",
	Short: "saltyhana savings-goal client",
	Long:  "Create and edit savings goals against the saltyhana backend from your terminal.",
	RunE:  runGoalNew,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Backend API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVar(&flagNoDrafts, "no-drafts", false, "Do not save or restore form drafts")
}

// loadConfig reads the config and applies settings that act globally,
// like the active theme.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	theme.SetActive(cfg.Appearance.Theme)
	return cfg, nil
}

// newLogger builds the shared logger for all commands.
func newLogger() *log.Logger {
	level := slog.LevelInfo
	if flagQuiet {
		level = slog.LevelError
	}
	return log.New(log.Config{Level: level})
}

// buildClient assembles the API client from config, flags, and the
// stored credentials.
func buildClient(cfg config.Config) *api.Client {
	baseURL := cfg.API.BaseURL
	if flagBaseURL != "" {
		baseURL = flagBaseURL
	}

	var tokens auth.TokenSource
	if token := config.GetAccessToken(cfg); token != "" {
		tokens = auth.Static(token)
	} else {
		tokens = auth.NewFileStore(config.DataDir())
	}

	return api.NewClient(baseURL, tokens)
}
