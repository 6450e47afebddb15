package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dleutenegger/picsum-go/pkg/picsum"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

// baseURLEnvVar overrides the configured base URL when set. A .env file in
// the working directory is honored (loaded by main before Execute).
const baseURLEnvVar = "PICSUM_BASE_URL"

// Config represents the configuration for the picsum CLI.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// BaseURL overrides the default picsum.photos service URL
	BaseURL string `yaml:"base_url"`
}

var config *Config

// GetDefaultConfigPath returns the default path for the config file.
// It uses the OS-specific config directory (e.g., ~/.config/picsum on Linux)
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "picsum", DefaultConfigFile), nil
}

// LoadConfig loads the configuration from the specified file.
// If no file is specified, it uses the default config location.
func LoadConfig(file string) error {
	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	yamlStr, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var c Config
	if err = yaml.Unmarshal(yamlStr, &c); err != nil {
		return fmt.Errorf("unable to parse config file: %w", err)
	}

	config = &c
	return nil
}

// BaseURL resolves the service base URL. Precedence: environment variable,
// config file, library default.
func BaseURL() string {
	if u := os.Getenv(baseURLEnvVar); u != "" {
		return u
	}
	if config != nil && config.BaseURL != "" {
		return config.BaseURL
	}
	return picsum.DefaultBaseURL
}
