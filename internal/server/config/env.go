package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// envReader collects the first parse failure so the overlay reads as a flat
// list of assignments.
type envReader struct {
	err error
}

func (r *envReader) lookup(key string, parse func(string) error) {
	if r.err != nil {
		return
	}
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	if err := parse(v); err != nil {
		r.err = fmt.Errorf("%s: %w", key, err)
	}
}

func (r *envReader) str(key string, dst *string) {
	r.lookup(key, func(v string) error { *dst = v; return nil })
}

func (r *envReader) dur(key string, dst *time.Duration) {
	r.lookup(key, func(v string) (err error) { *dst, err = time.ParseDuration(v); return })
}

// parseEnv overlays DEADSWITCH_* variables. envFile, or ./.env when empty, is
// loaded first without overriding variables the process already has. Only an
// explicitly named file must exist.
func parseEnv(cfg *Config, envFile string) error {
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	r := &envReader{}
	r.str("DEADSWITCH_GRPC_ADDR", &cfg.EndpointAddrGRPC)
	r.str("DEADSWITCH_HTTP_ADDR", &cfg.EndpointAddrHTTP)
	r.str("DEADSWITCH_DATABASE_DSN", &cfg.DatabaseDSN)
	r.str("DEADSWITCH_SECRET_KEY", &cfg.SecretKey)
	r.dur("DEADSWITCH_ACCESS_TOKEN_TTL", &cfg.AccessTokenValidityDuration)
	r.dur("DEADSWITCH_REFRESH_TOKEN_TTL", &cfg.RefreshTokenValidityDuration)
	r.str("DEADSWITCH_S3_ROOT_USER", &cfg.S3RootUser)
	r.str("DEADSWITCH_S3_ROOT_PASSWORD", &cfg.S3RootPassword)
	r.str("DEADSWITCH_S3_BUCKET", &cfg.S3Bucket)
	r.str("DEADSWITCH_S3_REGION", &cfg.S3Region)
	r.str("DEADSWITCH_S3_BASE_ENDPOINT", &cfg.S3BaseEndpoint)
	r.str("DEADSWITCH_NATS_URL", &cfg.NATSURL)
	r.str("DEADSWITCH_NATS_SUBJECT_PREFIX", &cfg.NATSSubjectPrefix)
	r.lookup("DEADSWITCH_CHAIN_GENESIS", func(v string) (err error) {
		cfg.ChainGenesis, err = time.Parse(time.RFC3339, v)
		return
	})
	r.dur("DEADSWITCH_BLOCK_INTERVAL", &cfg.BlockInterval)
	r.lookup("DEADSWITCH_KEEPER_ENABLED", func(v string) (err error) {
		cfg.KeeperEnabled, err = strconv.ParseBool(v)
		return
	})
	r.dur("DEADSWITCH_KEEPER_INTERVAL", &cfg.KeeperInterval)
	r.lookup("DEADSWITCH_KEEPER_BATCH_SIZE", func(v string) (err error) {
		cfg.KeeperBatchSize, err = strconv.Atoi(v)
		return
	})
	r.str("DEADSWITCH_LOG_LEVEL", &cfg.LogLevel)
	return r.err
}

func loadEnvFile(name string) error {
	if name != "" {
		return godotenv.Load(name)
	}
	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
