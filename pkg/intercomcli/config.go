package intercomcli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultBaseDir is the base configuration directory name.
	DefaultBaseDir = ".intercom"
	// DefaultConfigFile is the default configuration filename.
	DefaultConfigFile = "config.yaml"
)

// Config is the on-disk configuration for one intercom core instance: its
// fixed topology plus the routing/headroom it should start ticking with.
type Config struct {
	// AppName is the instance name (e.g. "tower", "ramp").
	AppName string `yaml:"-"`

	// Channels is the number of PA/listener channels.
	Channels int `yaml:"channels"`
	// Tablets is the number of talker tablets.
	Tablets int `yaml:"tablets"`
	// SampleRate is the fixed sample rate in Hz.
	SampleRate int `yaml:"sample_rate"`
	// FrameSize is the fixed frame length in samples.
	FrameSize int `yaml:"frame_size"`

	// DefaultRoutingGainDB seeds every uplink/downlink entry on startup.
	DefaultRoutingGainDB float64 `yaml:"default_routing_gain_db"`
	// DefaultHeadroomDB seeds the pre-limiter headroom on startup.
	DefaultHeadroomDB float64 `yaml:"default_headroom_db"`

	// configPath is the path to the config file.
	configPath string
}

// LoadConfig loads or creates configuration for the named instance.
func LoadConfig(appName string) (*Config, error) {
	return LoadConfigWithPath(appName, "")
}

// LoadConfigWithPath loads configuration from a custom path.
func LoadConfigWithPath(appName, customPath string) (*Config, error) {
	var configPath string

	if customPath != "" {
		configPath = customPath
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, DefaultBaseDir, appName, DefaultConfigFile)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := &Config{
		AppName:              appName,
		Channels:             4,
		Tablets:              16,
		SampleRate:           48000,
		FrameSize:            960,
		DefaultRoutingGainDB: -12,
		configPath:           configPath,
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Save()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.AppName = appName
	cfg.configPath = configPath

	return cfg, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the config directory path.
func (c *Config) Dir() string {
	return filepath.Dir(c.configPath)
}

// Validate checks that the topology is coherent enough to construct a core.
func (c *Config) Validate() error {
	if c.Channels <= 0 {
		return fmt.Errorf("channels must be positive, got %d", c.Channels)
	}
	if c.Tablets <= 0 {
		return fmt.Errorf("tablets must be positive, got %d", c.Tablets)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	}
	if c.FrameSize <= 0 {
		return fmt.Errorf("frame_size must be positive, got %d", c.FrameSize)
	}
	return nil
}
