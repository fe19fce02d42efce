// Package config provides configuration loading and management for
// fatwatersep. It handles loading configuration from YAML files and
// provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Input parameters
	Input struct {
		// Dir is a directory of DICOM files to discover the acquisition
		// pair in; ignored when explicit files are given
		Dir string `yaml:"dir"`

		// InPhaseFile is the explicit in-phase DICOM file path
		InPhaseFile string `yaml:"inPhaseFile"`

		// OutPhaseFile is the explicit out-of-phase DICOM file path
		OutPhaseFile string `yaml:"outPhaseFile"`
	} `yaml:"input"`

	// Smoothing parameters for the pre-separation Gaussian blur
	Smoothing struct {
		// KernelSize is the Gaussian kernel size; must be a positive odd integer
		KernelSize int `yaml:"kernelSize"`

		// Sigma is the Gaussian standard deviation; 0 derives it from the kernel size
		Sigma float64 `yaml:"sigma"`
	} `yaml:"smoothing"`

	// Processing parameters
	Processing struct {
		// Parallel runs the raw and smoothed pipeline branches concurrently
		Parallel bool `yaml:"parallel"`
	} `yaml:"processing"`

	// Output parameters
	Output struct {
		// Dir is the directory the result images are written to
		Dir string `yaml:"dir"`

		// Montage also writes the combined 3x2 review sheet
		Montage bool `yaml:"montage"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default smoothing parameters (5x5 kernel, derived sigma)
	cfg.Smoothing.KernelSize = 5
	cfg.Smoothing.Sigma = 0

	// Set default processing parameters
	cfg.Processing.Parallel = true

	// Set default output parameters
	cfg.Output.Dir = "separated_images"
	cfg.Output.Montage = true
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
