// Package config handles configuration for the gophtalk CLI, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the gophtalk CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend endpoint.
//   - Transport: protocol used to reach the server, "wire" or "grpc".
//   - UnreadCheckInterval: how often the client polls for unread messages.
type Config struct {
	ServerEndpointAddr  string
	Transport           string
	UnreadCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:5555"
	c.Transport = "wire"
	c.UnreadCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
