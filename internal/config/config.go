package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	AWSProfile    string `yaml:"aws_profile,omitempty"`
	AWSRegion     string `yaml:"aws_region,omitempty"`
	RestoreTier   string `yaml:"restore_tier,omitempty"`   // Bulk, Standard or Expedited
	RetentionDays int    `yaml:"retention_days,omitempty"` // days restored copies stay readable
}

// GetConfigDir returns the config directory path (~/.glacier-retrieve)
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".glacier-retrieve"
	}
	return filepath.Join(home, ".glacier-retrieve")
}

// GetConfigPath returns the config file path (~/.glacier-retrieve/config.yaml)
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// LoadConfig loads the configuration from ~/.glacier-retrieve/config.yaml
func LoadConfig() (*Config, error) {
	configPath := GetConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves the configuration to ~/.glacier-retrieve/config.yaml
func SaveConfig(cfg *Config) error {
	configDir := GetConfigDir()

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := GetConfigPath()
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetSavedProfile returns the saved AWS profile, or empty string
func GetSavedProfile() string {
	cfg, err := LoadConfig()
	if err != nil {
		return ""
	}
	return cfg.AWSProfile
}

// GetSavedRegion returns the saved AWS region, or empty string
func GetSavedRegion() string {
	cfg, err := LoadConfig()
	if err != nil {
		return ""
	}
	return cfg.AWSRegion
}
