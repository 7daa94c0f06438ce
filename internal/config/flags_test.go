package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8000}, expected: "localhost:8000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 3000}, expected: "127.0.0.1:3000"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8000}, expected: ":8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8000",
			expectedAddr: NetAddress{Host: "localhost", Port: 8000},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:3000",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 3000},
		},
		{
			name:        "missing colon",
			input:       "localhost8000",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8000",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr, *addr)
			}
		})
	}
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
				"-a", "localhost:8000",
				"-web-address", "127.0.0.1:3000",
				"-api-url", "http://localhost:8000",
				"-api-token", "flag-token",
				"-env", "staging",
				"-log-level", "debug",
				"-request-timeout", "15s",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
				assert.Equal(t, "127.0.0.1:3000", cfg.Web.HTTPAddress)
				assert.Equal(t, "http://localhost:8000", cfg.Web.APIURL)
				assert.Equal(t, "flag-token", cfg.App.APIToken)
				assert.Equal(t, "staging", cfg.App.Environment)
				assert.Equal(t, "debug", cfg.App.LogLevel)
				assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
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
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Empty(t, cfg.App.APIToken)
				assert.Zero(t, cfg.Server.RequestTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(newTestFlagSet(), tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags(newTestFlagSet(), []string{"-a", "nonsense"})
	assert.Error(t, err)
}
