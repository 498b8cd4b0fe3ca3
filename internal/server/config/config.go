// Package config loads the server configuration. Sources are layered
// defaults, then DEADSWITCH_* environment variables (optionally seeded from a
// .env file), then a JSON file, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/flagx"
)

type Config struct {
	EndpointAddrGRPC string
	// EndpointAddrHTTP serves health, metrics and the read-only views.
	EndpointAddrHTTP string
	// DatabaseDSN is a pgx DSN. Empty runs against the in-memory store.
	DatabaseDSN string
	// SecretKey signs access tokens (HS256).
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration

	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string

	// NATSURL empty disables event publishing.
	NATSURL           string
	NATSSubjectPrefix string

	// ChainGenesis is height 0; one block passes every BlockInterval.
	ChainGenesis  time.Time
	BlockInterval time.Duration

	KeeperEnabled   bool
	KeeperInterval  time.Duration
	KeeperBatchSize int

	LogLevel string
}

// DefaultGenesis is height 0 of the default clock.
var DefaultGenesis = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Default returns development settings. The secret and S3 credentials must
// be overridden in production.
func Default() *Config {
	return &Config{
		EndpointAddrGRPC:             ":50051",
		EndpointAddrHTTP:             ":8080",
		SecretKey:                    "secretKey",
		AccessTokenValidityDuration:  15 * time.Minute,
		RefreshTokenValidityDuration: 24 * time.Hour,
		S3RootUser:                   "admin",
		S3RootPassword:               "secretpassword",
		S3Bucket:                     "deadswitch",
		S3Region:                     "us-east-1",
		S3BaseEndpoint:               "http://127.0.0.1:9000/",
		NATSSubjectPrefix:            "deadswitch",
		ChainGenesis:                 DefaultGenesis,
		BlockInterval:                10 * time.Minute,
		KeeperEnabled:                true,
		KeeperInterval:               time.Minute,
		KeeperBatchSize:              100,
		LogLevel:                     "info",
	}
}

// Validate reports every unusable setting at once.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, d time.Duration) {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}

	if c.EndpointAddrGRPC == "" {
		errs = append(errs, errors.New("gRPC address is empty"))
	}
	if c.SecretKey == "" {
		errs = append(errs, errors.New("secret key is empty"))
	}
	positive("access token lifetime", c.AccessTokenValidityDuration)
	positive("refresh token lifetime", c.RefreshTokenValidityDuration)
	positive("block interval", c.BlockInterval)
	if c.KeeperEnabled {
		positive("keeper interval", c.KeeperInterval)
		if c.KeeperBatchSize <= 0 {
			errs = append(errs, fmt.Errorf("keeper batch size must be positive, got %d", c.KeeperBatchSize))
		}
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config from args (without the program name) and the
// process environment.
func LoadConfig(args []string) (*Config, error) {
	cfg := Default()
	if err := parseEnv(cfg, flagx.LookupString(args, "env")); err != nil {
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
