package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags gives ParseFlags a clean global flag set and simulated args.
func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	oldCommandLine, oldArgs := flag.CommandLine, os.Args
	flag.CommandLine = flag.NewFlagSet("cmd", flag.ContinueOnError)
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() {
		flag.CommandLine = oldCommandLine
		os.Args = oldArgs
	})
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8765", expectedAddr: NetAddress{Host: "localhost", Port: 8765}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "non-numeric port", input: "localhost:abc", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "hostname is not an IP", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8765",
				"-d", "/tmp/pins.db",
				"-c", "/path/to/config.json",
				"-hash-key", "secret",
				"-api-url", "https://api.example.test/v1",
				"-settings-url", "https://example.test/settings/password",
				"-cookies", "login=abc; auth=def",
				"-request-timeout", "10s",
				"-retry-count", "5",
				"-sync-interval", "15m",
				"-log-file", "/tmp/pins.log",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8765", cfg.Router.HTTPAddress)
				assert.Equal(t, "/tmp/pins.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "secret", cfg.App.HashKey)
				assert.Equal(t, "https://api.example.test/v1", cfg.Remote.APIBaseURL)
				assert.Equal(t, "https://example.test/settings/password", cfg.Remote.SettingsURL)
				assert.Equal(t, "login=abc; auth=def", cfg.Remote.SessionCookies)
				assert.Equal(t, 10*time.Second, cfg.Remote.RequestTimeout)
				assert.Equal(t, 5, cfg.Remote.RetryCount)
				assert.Equal(t, 15*time.Minute, cfg.Workers.SyncInterval)
				assert.Equal(t, "/tmp/pins.log", cfg.Log.FilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_LeavesPositionalArgs(t *testing.T) {
	resetFlags(t, "-d", "/tmp/pins.db", "tags", "https://example.com")

	ParseFlags()

	assert.Equal(t, []string{"tags", "https://example.com"}, flag.Args())
}
