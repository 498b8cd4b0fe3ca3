package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/deadswitch/internal/flagx"
)

var serverFlags = []string{"-a", "-w", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-n", "-k", "-i", "-l"}

// parseFlags applies the server's own flags from args. Durations use Go
// syntax ("15m", "30s"); the keeper is switched off with -k=false.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("deadswitch-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "gRPC listen address")
	fs.StringVar(&cfg.EndpointAddrHTTP, "w", cfg.EndpointAddrHTTP, "admin HTTP listen address")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN, empty for the in-memory store")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "JWT signing secret")
	fs.DurationVar(&cfg.AccessTokenValidityDuration, "t", cfg.AccessTokenValidityDuration, "access token lifetime")
	fs.DurationVar(&cfg.RefreshTokenValidityDuration, "r", cfg.RefreshTokenValidityDuration, "refresh token lifetime")
	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 access key")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket for sealed messages")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 endpoint URL")
	fs.StringVar(&cfg.NATSURL, "n", cfg.NATSURL, "NATS URL, empty disables events")
	fs.BoolVar(&cfg.KeeperEnabled, "k", cfg.KeeperEnabled, "run the trigger keeper")
	fs.DurationVar(&cfg.KeeperInterval, "i", cfg.KeeperInterval, "keeper sweep interval")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(flagx.FilterArgs(args, serverFlags))
}
