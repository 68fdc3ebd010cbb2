// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/alpaca-mcp/internal/credentials"
	"github.com/MKhiriev/alpaca-mcp/internal/logger"
)

// Defaults applied when no source sets a value.
const (
	DefaultTransport   = TransportStdio
	DefaultHost        = "127.0.0.1"
	DefaultPort        = 8000
	DefaultEnvFilePath = ".env"
	DefaultPaperTrade  = "True"
)

// StructuredConfig is the top-level configuration container for the
// alpaca-mcp server.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Alpaca holds the trading account credentials and endpoint overrides.
	Alpaca Alpaca

	// Runtime holds verbosity hints set by the MCP client environment.
	Runtime Runtime

	// Server holds the transport selection and listen address.
	Server Server `envPrefix:"ALPACA_MCP_"`

	// EnvFilePath is the credentials file to read.
	// Env: ALPACA_MCP_ENV_FILE
	EnvFilePath string `env:"ALPACA_MCP_ENV_FILE"`
}

// Alpaca holds the values written by the installer into the credentials file.
// PaperTrade is kept as text so that an unset value can be told apart from
// False while sources are merged; use IsPaper to read it.
type Alpaca struct {
	APIKey        string `env:"ALPACA_API_KEY"`
	SecretKey     string `env:"ALPACA_SECRET_KEY"`
	PaperTrade    string `env:"ALPACA_PAPER_TRADE"`
	TradeAPIURL   string `env:"TRADE_API_URL"`
	TradeAPIWSS   string `env:"TRADE_API_WSS"`
	DataAPIURL    string `env:"DATA_API_URL"`
	StreamDataWSS string `env:"STREAM_DATA_WSS"`
}

// Runtime holds the operator hints that pick the log verbosity.
type Runtime struct {
	// MCPClient names the hosting client; "pycharm" asks for error-only logs.
	// Env: MCP_CLIENT
	MCPClient string `env:"MCP_CLIENT"`

	// Debug enables debug logs when set to "true".
	// Env: DEBUG
	Debug string `env:"DEBUG"`
}

// Server selects how the tool registry is exposed.
type Server struct {
	// Env: ALPACA_MCP_TRANSPORT
	Transport Transport `env:"TRANSPORT"`
	// Env: ALPACA_MCP_HOST
	Host string `env:"HOST"`
	// Env: ALPACA_MCP_PORT
	Port int `env:"PORT"`
}

// Validate reports ErrMissingCredentials unless both keys are set.
func (a Alpaca) Validate() error {
	if strings.TrimSpace(a.APIKey) == "" || strings.TrimSpace(a.SecretKey) == "" {
		return ErrMissingCredentials
	}
	return nil
}

// IsPaper reports whether the paper trading environment is selected. Unset
// or unrecognised values mean paper trading.
func (a Alpaca) IsPaper() bool {
	return credentials.ParseBool(a.PaperTrade, true)
}

// Credentials converts the configuration into the installer's record.
func (a Alpaca) Credentials() credentials.Credentials {
	return credentials.Credentials{
		APIKey:     a.APIKey,
		SecretKey:  a.SecretKey,
		PaperTrade: a.IsPaper(),
		Endpoints: credentials.Endpoints{
			TradeAPIURL:   a.TradeAPIURL,
			TradeAPIWSS:   a.TradeAPIWSS,
			DataAPIURL:    a.DataAPIURL,
			StreamDataWSS: a.StreamDataWSS,
		},
	}
}

// DebugEnabled reports whether DEBUG is "true" in any case.
func (r Runtime) DebugEnabled() bool {
	return strings.EqualFold(strings.TrimSpace(r.Debug), "true")
}

// LogLevel returns the verbosity selected by the hints.
func (r Runtime) LogLevel() zerolog.Level {
	return logger.LevelFor(r.MCPClient, r.DebugEnabled())
}

// Quiet reports whether the hosting client wants error-only output, which
// also suppresses the startup banner.
func (r Runtime) Quiet() bool {
	return r.LogLevel() == zerolog.ErrorLevel
}

// Address returns host:port.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// BaseURL returns the http URL clients use to reach the network transports.
func (s Server) BaseURL() string {
	return "http://" + s.Address()
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// flags carries the values set on the command line (zero fields are unset)
// and may be nil.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withEnvFile().
		withDefaults().
		build()
}

// normalize trims values and maps the None token to empty so that it does
// not shadow lower-priority sources.
func (cfg *StructuredConfig) normalize() {
	for _, field := range []*string{
		&cfg.Alpaca.APIKey,
		&cfg.Alpaca.SecretKey,
		&cfg.Alpaca.PaperTrade,
		&cfg.Alpaca.TradeAPIURL,
		&cfg.Alpaca.TradeAPIWSS,
		&cfg.Alpaca.DataAPIURL,
		&cfg.Alpaca.StreamDataWSS,
		&cfg.Runtime.MCPClient,
		&cfg.Runtime.Debug,
		&cfg.Server.Host,
		&cfg.EnvFilePath,
	} {
		*field = credentials.StripNone(*field)
	}
	cfg.Server.Transport = Transport(strings.TrimSpace(string(cfg.Server.Transport)))
}
