// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clientconfig

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Client identifies a supported MCP client application.
type Client string

const (
	Claude Client = "claude"
	Cursor Client = "cursor"
)

// Clients lists the supported clients in prompt order.
var Clients = []Client{Claude, Cursor}

// ParseClient accepts a client name in any case.
func ParseClient(s string) (Client, error) {
	c := Client(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case Claude, Cursor:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownClient, s)
	}
}

// DisplayName returns the product name shown to the operator.
func (c Client) DisplayName() string {
	switch c {
	case Claude:
		return "Claude Desktop"
	case Cursor:
		return "Cursor IDE"
	default:
		return string(c)
	}
}

// ConfigPath returns the location of the client's configuration file for the
// given operating system (runtime.GOOS values) and home directory.
func ConfigPath(c Client, goos, home string) (string, error) {
	switch c {
	case Claude:
		switch goos {
		case "darwin":
			return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json"), nil
		case "windows":
			return filepath.Join(home, "AppData", "Roaming", "Claude", "claude_desktop_config.json"), nil
		default:
			return filepath.Join(home, ".config", "claude", "claude_desktop_config.json"), nil
		}
	case Cursor:
		return filepath.Join(home, ".cursor", "mcp.json"), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownClient, string(c))
	}
}
