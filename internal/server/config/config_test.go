package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Empty(t, c.DatabaseDSN, "memory mode by default")
	assert.Empty(t, c.NATSURL, "events off by default")
	assert.Equal(t, DefaultGenesis, c.ChainGenesis)
	assert.Equal(t, 10*time.Minute, c.BlockInterval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr []string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "no grpc address and no secret",
			mutate:  func(c *Config) { c.EndpointAddrGRPC, c.SecretKey = "", "" },
			wantErr: []string{"gRPC address is empty", "secret key is empty"},
		},
		{
			name:    "zero block interval",
			mutate:  func(c *Config) { c.BlockInterval = 0 },
			wantErr: []string{"block interval must be positive"},
		},
		{
			name:    "keeper enabled without batch",
			mutate:  func(c *Config) { c.KeeperBatchSize = 0 },
			wantErr: []string{"keeper batch size must be positive"},
		},
		{
			name:   "keeper settings ignored when disabled",
			mutate: func(c *Config) { c.KeeperEnabled, c.KeeperInterval, c.KeeperBatchSize = false, 0, 0 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.wantErr {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DEADSWITCH_GRPC_ADDR", ":7000")
	t.Setenv("DEADSWITCH_HTTP_ADDR", ":7001")
	t.Setenv("DEADSWITCH_LOG_LEVEL", "debug")

	path := writeFile(t, "server.json", `{"endpoint_addr_http":":7100","log_level":"warn"}`)

	c, err := LoadConfig([]string{"-c", path, "-l", "error"})
	require.NoError(t, err)

	want := Default()
	want.EndpointAddrGRPC = ":7000"
	want.EndpointAddrHTTP = ":7100"
	want.LogLevel = "error"
	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoadConfig_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr string
	}{
		{name: "env", env: map[string]string{"DEADSWITCH_KEEPER_BATCH_SIZE": "many"}, wantErr: "environment: DEADSWITCH_KEEPER_BATCH_SIZE"},
		{name: "json", args: []string{"-config", filepath.Join(t.TempDir(), "nope.json")}, wantErr: "config file:"},
		{name: "flags", args: []string{"-t", "15"}, wantErr: "flags:"},
		{name: "validation", args: []string{"-a", ""}, wantErr: "gRPC address is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	c := &Config{}
	err := parseFlags(c, []string{
		"-a", "127.0.0.1:9090", "-w", "127.0.0.1:9091", "-d", "db", "-s", "secret",
		"-t", "1m", "-r", "3h", "-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1",
		"-e", "http://endpoint", "-n", "nats://nats:4222", "-k=false", "-i", "30s", "-l", "debug",
		"-c", "ignored.json",
	})
	require.NoError(t, err)

	want := &Config{
		EndpointAddrGRPC:             "127.0.0.1:9090",
		EndpointAddrHTTP:             "127.0.0.1:9091",
		DatabaseDSN:                  "db",
		SecretKey:                    "secret",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: 3 * time.Hour,
		S3RootUser:                   "user",
		S3RootPassword:               "password",
		S3Bucket:                     "bucket",
		S3Region:                     "us-west-1",
		S3BaseEndpoint:               "http://endpoint",
		NATSURL:                      "nats://nats:4222",
		KeeperInterval:               30 * time.Second,
		LogLevel:                     "debug",
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestParseJson(t *testing.T) {
	path := writeFile(t, "full.json", `{
		"endpoint_addr_grpc": "www.example:9000",
		"database_dsn": "postgres://db",
		"access_token_validity_duration": "1m",
		"nats_subject_prefix": "ds",
		"chain_genesis": "2025-06-01T00:00:00Z",
		"block_interval": "30s",
		"keeper_enabled": false,
		"keeper_interval": 5000000000,
		"keeper_batch_size": 10
	}`)

	c := Default()
	require.NoError(t, parseJson(c, path))

	assert.Equal(t, "www.example:9000", c.EndpointAddrGRPC)
	assert.Equal(t, "postgres://db", c.DatabaseDSN)
	assert.Equal(t, time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, "ds", c.NATSSubjectPrefix)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), c.ChainGenesis)
	assert.Equal(t, 30*time.Second, c.BlockInterval)
	assert.False(t, c.KeeperEnabled)
	assert.Equal(t, 5*time.Second, c.KeeperInterval)
	assert.Equal(t, 10, c.KeeperBatchSize)
	assert.Equal(t, ":8080", c.EndpointAddrHTTP, "absent keys keep their value")
}

func TestParseJson_Errors(t *testing.T) {
	require.NoError(t, parseJson(&Config{}, ""))
	assert.Error(t, parseJson(&Config{}, writeFile(t, "bad.json", `{ not json`)))
	assert.ErrorIs(t, parseJson(&Config{}, filepath.Join(t.TempDir(), "nope.json")), os.ErrNotExist)
}
