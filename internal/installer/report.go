// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import "github.com/MKhiriev/alpaca-mcp/internal/clientconfig"

// Report summarises a finished run.
type Report struct {
	ProjectDir string
	Native     bool

	// Python is the interpreter found in step 1; empty in native mode.
	Python   string
	VenvPath string

	Client       clientconfig.Client
	EnvFile      string
	KeysProvided bool

	// Descriptor is the server entry for the client, without its env block.
	Descriptor clientconfig.ServerDescriptor

	ConfigPath string
	// Configured is true when the client configuration was updated.
	Configured bool
	Merge      clientconfig.Result
	// MergeErr is the reason the update failed; the run still succeeds.
	MergeErr error
}
