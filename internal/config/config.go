package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/FluidXR/peripheral/internal/device"

	"gopkg.in/yaml.v3"
)

// PathEnv overrides the config file location.
const PathEnv = "PERIPHERAL_CONFIG"

// DeviceConfig describes one device in the fleet. Nil counters select the
// kind's defaults.
type DeviceConfig struct {
	Name           string                `yaml:"name"`
	Kind           device.Kind           `yaml:"kind"`
	Model          string                `yaml:"model"`
	Connection     device.ConnectionType `yaml:"connection,omitempty"`
	InkLevel       *int                  `yaml:"ink_level,omitempty"`
	ScanResolution *int                  `yaml:"scan_resolution,omitempty"`
}

// Spec converts the entry into a device spec.
func (dc DeviceConfig) Spec() device.Spec {
	return device.Spec{
		Kind:           dc.Kind,
		Model:          dc.Model,
		Connection:     dc.Connection,
		InkLevel:       dc.InkLevel,
		ScanResolution: dc.ScanResolution,
	}
}

// JournalConfig controls the outcome journal.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	Devices []DeviceConfig `yaml:"devices"`
	Journal JournalConfig  `yaml:"journal"`
}

func intPtr(v int) *int { return &v }

// DefaultConfig returns the demonstration fleet.
func DefaultConfig() *Config {
	return &Config{
		Devices: []DeviceConfig{
			{Name: "laserjet", Kind: device.KindPrinter, Model: "HP LaserJet", InkLevel: intPtr(80)},
			{Name: "epson", Kind: device.KindScanner, Model: "Epson V39", ScanResolution: intPtr(600)},
			{
				Name:           "officejet",
				Kind:           device.KindPrinterScanner,
				Model:          "HP OfficeJet Pro",
				Connection:     device.Ethernet,
				InkLevel:       intPtr(50),
				ScanResolution: intPtr(1200),
			},
		},
		Journal: JournalConfig{Enabled: true},
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "peripheral")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "peripheral")
}

// ConfigPath returns the config file path.
func ConfigPath() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// JournalDir returns the directory holding the journal database.
func (c *Config) JournalDir() string {
	if c.Journal.Dir == "" {
		return ConfigDir()
	}
	if strings.HasPrefix(c.Journal.Dir, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, c.Journal.Dir[1:])
	}
	return c.Journal.Dir
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (*Config, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{Journal: JournalConfig{Enabled: true}}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks names and enumerations. Bounds are left to device construction.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Devices))
	for i, dc := range c.Devices {
		if strings.TrimSpace(dc.Name) == "" {
			return fmt.Errorf("device %d: name is required", i)
		}
		if seen[dc.Name] {
			return fmt.Errorf("device %q defined twice", dc.Name)
		}
		seen[dc.Name] = true
		if !dc.Kind.Valid() {
			return fmt.Errorf("device %q: %w: %q", dc.Name, device.ErrUnknownKind, dc.Kind)
		}
		if dc.Connection != "" && !dc.Connection.Valid() {
			return fmt.Errorf("device %q: %w: %q", dc.Name, device.ErrUnknownConnectionType, dc.Connection)
		}
	}
	return nil
}

// Find returns the named device entry.
func (c *Config) Find(name string) (*DeviceConfig, bool) {
	for i := range c.Devices {
		if c.Devices[i].Name == name {
			return &c.Devices[i], true
		}
	}
	return nil, false
}

// Remove deletes the named device entry. It reports whether one was removed.
func (c *Config) Remove(name string) bool {
	for i, dc := range c.Devices {
		if dc.Name == name {
			c.Devices = append(c.Devices[:i], c.Devices[i+1:]...)
			return true
		}
	}
	return false
}
