// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrRegistryMissing is returned when the registry factory yields no
	// registry and no error.
	ErrRegistryMissing = errors.New("tool registry is not available")

	// ErrNoFactory is returned when Start is called without a registry factory.
	ErrNoFactory = errors.New("no registry factory provided")
)
