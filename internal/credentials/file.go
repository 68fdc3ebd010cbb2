// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// FileMode is the permission of the credentials file.
const FileMode os.FileMode = 0o600

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// quote renders s so that godotenv and python-dotenv read the same value.
// Values holding a "$" are single-quoted because neither reader expands
// variables there, and python-dotenv has no escape for "$" inside double
// quotes.
func quote(s string) string {
	if strings.Contains(s, "$") && !strings.ContainsAny(s, "'\\\n") {
		return "'" + s + "'"
	}
	return `"` + quoteEscaper.Replace(s) + `"`
}

// Render returns the credentials file content.
func Render(c Credentials) []byte {
	var b bytes.Buffer

	b.WriteString("# Alpaca MCP Server Configuration\n")
	b.WriteString("# Generated by alpaca-mcp init\n\n")

	b.WriteString("# Alpaca API Credentials\n")
	fmt.Fprintf(&b, "%s = %s\n", KeyAPIKey, quote(c.APIKey))
	fmt.Fprintf(&b, "%s = %s\n\n", KeySecretKey, quote(c.SecretKey))

	b.WriteString("# Trading Configuration\n")
	fmt.Fprintf(&b, "%s = %s\n\n", KeyPaperTrade, FormatBool(c.PaperTrade))

	b.WriteString("# API Endpoints (leave as None for defaults)\n")
	fmt.Fprintf(&b, "%s = %s\n", KeyTradeAPIURL, OrNone(c.Endpoints.TradeAPIURL))
	fmt.Fprintf(&b, "%s = %s\n", KeyTradeAPIWSS, OrNone(c.Endpoints.TradeAPIWSS))
	fmt.Fprintf(&b, "%s = %s\n", KeyDataAPIURL, OrNone(c.Endpoints.DataAPIURL))
	fmt.Fprintf(&b, "%s = %s\n", KeyStreamDataWSS, OrNone(c.Endpoints.StreamDataWSS))

	return b.Bytes()
}

// Write stores c at path, replacing any previous file.
func Write(path string, c Credentials) error {
	if err := os.WriteFile(path, Render(c), FileMode); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFile, path, err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, FileMode); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFile, path, err)
	}
	return nil
}
