package cmd

import (
	"github.com/sitestead/sitestead/internal/shared/config"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "steadctl",
	Short: "Sitestead CLI for managing add-on apps and entitlements",
	Long: `steadctl is a command-line tool for operators to interact with steadd.

It allows you to:
  - List and inspect registered add-on apps
  - Browse the marketplace catalog and manage workspace installs
  - View and update workspace entitlements
  - Preview the composed navigation for a workspace
  - Check marketplace item compatibility against a platform version

Configuration:
  Environment variables:
    STEADD_URL          - steadd API endpoint (required)
    STEADD_API_KEY      - steadd API authentication key (required)

  Config file (~/.sitestead/config.yaml):
    url: https://steadd.example.com
    apiKey: sk_live_abc123

  CLI flags override environment variables and config file.

Example usage:
  steadctl app list --published
  steadctl marketplace install ws_42 crm
  steadctl nav preview ws_42 --path /apps/crm/contacts`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.InitConfig()
	config.AddFlags(rootCmd)

	// Add steadctl-specific flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")
}

// GetSteaddURL returns the configured steadd URL
func GetSteaddURL() string {
	return config.GetSteaddURL()
}

// GetSteaddAPIKey returns the configured steadd API key
func GetSteaddAPIKey() string {
	return config.GetSteaddAPIKey()
}

// GetOutputFormat returns the output format
func GetOutputFormat() string {
	return outputFormat
}

// ValidateConfig validates that required configuration is present
func ValidateConfig() error {
	return config.ValidateConfig()
}
