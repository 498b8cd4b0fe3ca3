package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/deadswitch/internal/flagx"
)

var cliFlags = []string{"-a", "-t", "-i", "-s"}

// parseFlags applies the CLI's own flags from args. Other flags, such as -c,
// are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("deadswitch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "server address:port")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.DurationVar(&cfg.OnlineCheckInterval, "i", cfg.OnlineCheckInterval, "online check interval")
	fs.StringVar(&cfg.SessionDir, "s", cfg.SessionDir, "session directory")

	return fs.Parse(flagx.FilterArgs(args, cliFlags))
}
