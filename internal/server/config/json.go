package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/timex"
)

// fileConfig is the JSON shape of Config. Nil fields were absent from the
// file. Durations accept "1m30s" or integer nanoseconds.
type fileConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             *string         `json:"endpoint_addr_http"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	SecretKey                    *string         `json:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   *string         `json:"s3_root_user"`
	S3RootPassword               *string         `json:"s3_root_password"`
	S3Bucket                     *string         `json:"s3_bucket"`
	S3Region                     *string         `json:"s3_region"`
	S3BaseEndpoint               *string         `json:"s3_base_endpoint"`
	NATSURL                      *string         `json:"nats_url"`
	NATSSubjectPrefix            *string         `json:"nats_subject_prefix"`
	ChainGenesis                 *time.Time      `json:"chain_genesis"`
	BlockInterval                *timex.Duration `json:"block_interval"`
	KeeperEnabled                *bool           `json:"keeper_enabled"`
	KeeperInterval               *timex.Duration `json:"keeper_interval"`
	KeeperBatchSize              *int            `json:"keeper_batch_size"`
	LogLevel                     *string         `json:"log_level"`
}

func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return err
	}
	fc.apply(cfg)
	return nil
}

func (c *fileConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.NATSURL, c.NATSURL)
	setString(&config.NATSSubjectPrefix, c.NATSSubjectPrefix)
	if c.ChainGenesis != nil {
		config.ChainGenesis = *c.ChainGenesis
	}
	setDuration(&config.BlockInterval, c.BlockInterval)
	if c.KeeperEnabled != nil {
		config.KeeperEnabled = *c.KeeperEnabled
	}
	setDuration(&config.KeeperInterval, c.KeeperInterval)
	if c.KeeperBatchSize != nil {
		config.KeeperBatchSize = *c.KeeperBatchSize
	}
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
