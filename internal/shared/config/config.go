package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile      string
	steaddURL    string
	steaddAPIKey string
)

// InitConfig initializes the shared configuration system
func InitConfig() {
	cobra.OnInitialize(loadConfig)
}

// AddFlags adds common configuration flags to a cobra command
func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.sitestead/config.yaml)")
	cmd.PersistentFlags().StringVar(&steaddURL, "url", "", "steadd API endpoint")
	cmd.PersistentFlags().StringVar(&steaddAPIKey, "api-key", "", "steadd API key")

	viper.BindPFlag("url", cmd.PersistentFlags().Lookup("url"))
	viper.BindPFlag("apiKey", cmd.PersistentFlags().Lookup("api-key"))
}

// loadConfig loads configuration from file and environment
func loadConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configPath := filepath.Join(home, ".sitestead")
		viper.AddConfigPath(configPath)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("STEADD")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env still apply
	viper.ReadInConfig()
}

// GetSteaddURL returns the configured steadd URL
func GetSteaddURL() string {
	if steaddURL != "" {
		return steaddURL
	}
	return viper.GetString("url")
}

// GetSteaddAPIKey returns the configured steadd API key
func GetSteaddAPIKey() string {
	if steaddAPIKey != "" {
		return steaddAPIKey
	}
	return viper.GetString("apiKey")
}

// ValidateConfig validates that required configuration is present
func ValidateConfig() error {
	if GetSteaddURL() == "" {
		return fmt.Errorf("steadd URL is required (set STEADD_URL env var, --url flag, or url in config file)")
	}
	if GetSteaddAPIKey() == "" {
		return fmt.Errorf("steadd API key is required (set STEADD_API_KEY env var, --api-key flag, or apiKey in config file)")
	}
	return nil
}

// ConfigureRequest represents configuration input
type ConfigureRequest struct {
	URL    string
	APIKey string
}

// ConfigureInteractive runs interactive configuration
func ConfigureInteractive(currentURL, currentAPIKey string) (*ConfigureRequest, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("steadd URL")
	if currentURL != "" {
		fmt.Printf(" [%s]", currentURL)
	}
	fmt.Print(": ")

	urlInput, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	urlInput = strings.TrimSpace(urlInput)
	if urlInput == "" && currentURL != "" {
		urlInput = currentURL
	}

	fmt.Printf("steadd API Key")
	if currentAPIKey != "" {
		fmt.Printf(" [hidden]")
	}
	fmt.Print(": ")

	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return nil, fmt.Errorf("failed to read API key: %w", err)
	}
	fmt.Println()

	apiKeyInput := strings.TrimSpace(string(bytePassword))
	if apiKeyInput == "" && currentAPIKey != "" {
		apiKeyInput = currentAPIKey
	}

	if urlInput == "" {
		return nil, fmt.Errorf("URL is required")
	}
	if apiKeyInput == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &ConfigureRequest{
		URL:    urlInput,
		APIKey: apiKeyInput,
	}, nil
}

// SaveConfig saves configuration to the default config file
func SaveConfig(req ConfigureRequest) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".sitestead")
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("url", req.URL)
	viper.Set("apiKey", req.APIKey)

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration saved to %s\n", configFile)
	return nil
}
