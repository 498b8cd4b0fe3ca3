package config

import (
	"fmt"
	"os"
	"time"
)

const envPrefix = "DEADSWITCH_CLI_"

func parseEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(envPrefix + "SERVER"); ok {
		cfg.ServerEndpointAddr = v
	}
	if v, ok := os.LookupEnv(envPrefix + "SESSION_DIR"); ok {
		cfg.SessionDir = v
	}
	for key, dst := range map[string]*time.Duration{
		"TIMEOUT":        &cfg.RequestTimeout,
		"CHECK_INTERVAL": &cfg.OnlineCheckInterval,
	} {
		v, ok := os.LookupEnv(envPrefix + key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*dst = d
	}
	return nil
}
