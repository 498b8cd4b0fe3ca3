// Package config loads runtime configuration for the DeadSwitch CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see Default).
//  2. DEADSWITCH_CLI_* environment variables.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags.
//
// Durations are Go duration strings everywhere ("3s", "1m30s").
//
//	-a string     address:port of the backend gRPC endpoint
//	-t duration   per-request timeout
//	-i duration   online status check interval
//	-s string     session directory
//
// JSON example:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "session_dir": ".deadswitch"
//	}
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/flagx"
)

type Config struct {
	ServerEndpointAddr  string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	// SessionDir holds the local session database, relative to the working
	// directory unless absolute.
	SessionDir string
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		ServerEndpointAddr:  "127.0.0.1:50051",
		RequestTimeout:      10 * time.Second,
		OnlineCheckInterval: 3 * time.Second,
		SessionDir:          ".deadswitch",
	}
}

// Validate reports every unusable setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.ServerEndpointAddr == "" {
		errs = append(errs, errors.New("server address is empty"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout))
	}
	if c.OnlineCheckInterval <= 0 {
		errs = append(errs, fmt.Errorf("online check interval must be positive, got %s", c.OnlineCheckInterval))
	}
	if c.SessionDir == "" {
		errs = append(errs, errors.New("session directory is empty"))
	}
	return errors.Join(errs...)
}

// LoadConfig layers the environment, the JSON file and args (without the
// program name) over Default.
func LoadConfig(args []string) (*Config, error) {
	cfg := Default()
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseJson(cfg, flagx.LookupString(args, "config", "c")); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
