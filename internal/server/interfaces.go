// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract shared by the transports.
type Server interface {
	// RunServer serves until ctx is cancelled, the client goes away or the
	// server is shut down. A stop requested by the caller is not an error.
	RunServer(ctx context.Context) error

	// Shutdown stops serving and releases the listener, waiting at most
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
