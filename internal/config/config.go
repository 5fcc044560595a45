// Package config loads server.yaml: a plain os.Open plus a yaml.v3 decode,
// fatal to the caller on a missing or malformed file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every knob server.yaml may override. Zero-valued fields fall
// back to the package defaults below.
type Config struct {
	ListenAddress  string `yaml:"listen_address"`
	BadPacketLimit int    `yaml:"bad_packet_limit"`
	TickRate       int    `yaml:"tick_rate"`
	LogLevel       string `yaml:"log_level"`
}

// Default values applied for any zero-valued config field.
const (
	DefaultListenAddress  = "127.0.0.1:4225"
	DefaultBadPacketLimit = 15
	DefaultTickRate       = 60
	DefaultLogLevel       = "info"
)

// Load reads and decodes path, applying defaults for any zero-valued field.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: could not open %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = DefaultListenAddress
	}
	if c.BadPacketLimit == 0 {
		c.BadPacketLimit = DefaultBadPacketLimit
	}
	if c.TickRate == 0 {
		c.TickRate = DefaultTickRate
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
