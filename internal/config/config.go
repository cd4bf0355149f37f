// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"streamdeals/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Data contains remote data source configuration
	Data DataConfig `json:"data"`

	// Checkout contains checkout-link configuration
	Checkout CheckoutConfig `json:"checkout"`

	// CatalogOverridePath is an optional HCL file with catalog overrides
	CatalogOverridePath string `json:"catalog_override_path,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Address is the listen address
	Address string `json:"address"`

	// UIPath is the path to static UI files
	UIPath string `json:"ui_path"`
}

// DataConfig contains remote data source settings
type DataConfig struct {
	// ConfigURL is the platform availability resource
	ConfigURL string `json:"config_url"`

	// PricesURL is the prices and discounts resource
	PricesURL string `json:"prices_url"`

	// TimeoutSeconds bounds the single load attempt
	TimeoutSeconds int `json:"timeout_seconds"`

	// Offline skips the remote fetch and uses embedded fallback data
	Offline bool `json:"offline"`
}

// CheckoutConfig contains checkout deep-link settings
type CheckoutConfig struct {
	// WhatsAppNumber is the destination number for checkout messages
	WhatsAppNumber string `json:"whatsapp_number"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Address: ":8080",
			UIPath:  "./ui",
		},
		Data: DataConfig{
			ConfigURL:      "https://streamdeals.co/config.json",
			PricesURL:      "https://streamdeals.co/prices.json",
			TimeoutSeconds: 10,
		},
		Checkout: CheckoutConfig{
			WhatsAppNumber: "573005965404",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
