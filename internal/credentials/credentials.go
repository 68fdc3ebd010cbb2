// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import (
	"strings"
)

// Keys of the credentials file.
const (
	KeyAPIKey        = "ALPACA_API_KEY"
	KeySecretKey     = "ALPACA_SECRET_KEY"
	KeyPaperTrade    = "ALPACA_PAPER_TRADE"
	KeyTradeAPIURL   = "TRADE_API_URL"
	KeyTradeAPIWSS   = "TRADE_API_WSS"
	KeyDataAPIURL    = "DATA_API_URL"
	KeyStreamDataWSS = "STREAM_DATA_WSS"
)

// NoneToken marks an endpoint left at the vendor default.
const NoneToken = "None"

// Placeholders used in client descriptors when real keys were not supplied.
const (
	PlaceholderAPIKey    = "your_alpaca_api_key_for_paper_account"
	PlaceholderSecretKey = "your_alpaca_secret_key_for_paper_account"
)

// Endpoints holds optional overrides of the Alpaca endpoints. An empty value
// means the vendor default.
type Endpoints struct {
	TradeAPIURL   string
	TradeAPIWSS   string
	DataAPIURL    string
	StreamDataWSS string
}

// Credentials is the record collected by the installer.
type Credentials struct {
	APIKey     string
	SecretKey  string
	PaperTrade bool
	Endpoints  Endpoints
}

// Empty reports whether neither key was provided.
func (c Credentials) Empty() bool {
	return c.APIKey == "" && c.SecretKey == ""
}

// Complete reports whether both keys were provided.
func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.SecretKey != ""
}

// DescriptorEnv returns the environment block for a client descriptor:
// the real keys when both are present, placeholders otherwise.
func (c Credentials) DescriptorEnv() map[string]string {
	if c.Complete() {
		return map[string]string{KeyAPIKey: c.APIKey, KeySecretKey: c.SecretKey}
	}
	return map[string]string{KeyAPIKey: PlaceholderAPIKey, KeySecretKey: PlaceholderSecretKey}
}

// FormatBool renders a boolean the way the credentials file stores it.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// ParseBool accepts True/False in any case plus the usual 1/0, yes/no forms.
// Anything else yields def.
func ParseBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on":
		return true
	case "false", "0", "no", "n", "off":
		return false
	default:
		return def
	}
}

// OrNone returns NoneToken for an empty value.
func OrNone(s string) string {
	if s == "" {
		return NoneToken
	}
	return s
}

// StripNone maps the NoneToken (and blank values) to "".
func StripNone(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, NoneToken) {
		return ""
	}
	return s
}

// Mask hides all but the last four characters of a secret.
func Mask(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
