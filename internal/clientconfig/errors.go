// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clientconfig

import "errors"

var (
	// ErrUnknownClient is returned for a client name other than claude or cursor.
	ErrUnknownClient = errors.New("unknown MCP client")

	// ErrCorruptDocument reports content that is not valid JSON or whose top
	// level is not an object. The content is discarded.
	ErrCorruptDocument = errors.New("configuration is not a JSON object")

	// ErrUnreadable reports a configuration file that exists but could not be read.
	ErrUnreadable = errors.New("configuration file could not be read")

	// ErrServersNotObject reports an mcpServers value that is not an object.
	// The value is replaced with an empty object.
	ErrServersNotObject = errors.New("mcpServers is not a JSON object")

	// ErrEmptyServerName is returned when merging a descriptor without a name.
	ErrEmptyServerName = errors.New("server name must not be empty")
)
