// Package config provides configuration management for the rsfec CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
	Storage  StorageConfig   `json:"storage"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	Parity      int  `json:"parity"`       // Default: 8
	OutputJSON  bool `json:"output_json"`  // Default: false
	Interactive bool `json:"interactive"`  // Default: false
	CorruptMask int  `json:"corrupt_mask"` // XOR mask for the corrupt command, default 0xFF
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor  bool   `json:"use_color"` // Enable colored output
	Verbosity string `json:"verbosity"` // quiet, normal, verbose
	HexGroup  int    `json:"hex_group"` // Bytes per group in hex dumps
}

// StorageConfig contains storage-related settings
type StorageConfig struct {
	DefaultPath     string `json:"default_path"`     // Default output directory
	FilePermissions string `json:"file_permissions"` // Default file permissions
}

// DefaultConfig returns the built-in defaults: 8 parity symbols correct up
// to 4 unknown errors or 8 erasures per codeword.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Defaults: DefaultSettings{
			Parity:      8,
			CorruptMask: 0xFF,
		},
		UI: UIConfig{
			UseColor:  true,
			Verbosity: "normal",
			HexGroup:  4,
		},
		Storage: StorageConfig{
			FilePermissions: "0600",
		},
	}
}

// Manager manages configuration loading and saving
type Manager struct {
	config     *Config
	configPath string
}

// NewManager loads the config file, creating it with defaults when absent.
func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	m := &Manager{configPath: configPath}
	if err := m.Load(); err != nil {
		m.config = DefaultConfig()
		if err := m.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return m, nil
}

// Config returns the active configuration with environment overrides applied.
func (m *Manager) Config() *Config {
	cfg := m.config
	if v := os.Getenv("RSFEC_PARITY"); v != "" {
		if parity, err := strconv.Atoi(v); err == nil && parity > 0 {
			cfg.Defaults.Parity = parity
		}
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.UI.UseColor = false
	}
	return cfg
}

// Load reads the configuration from disk.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	m.config = cfg
	return nil
}

// Save writes the configuration to disk, creating the directory if needed.
func (m *Manager) Save() error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the location of the config file.
func (m *Manager) Path() string {
	return m.configPath
}

func getConfigPath() (string, error) {
	if custom := os.Getenv("RSFEC_CONFIG"); custom != "" {
		return custom, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}

	return filepath.Join(configDir, "rsfec", "config.json"), nil
}

// DefaultParity returns the configured parity count, falling back to the
// built-in default when no config can be loaded at all.
func DefaultParity() int {
	m, err := NewManager()
	if err != nil {
		return DefaultConfig().Defaults.Parity
	}
	return m.Config().Defaults.Parity
}
