// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] before it is used at
// startup. Credentials and the transport name are checked by the server at
// start time so that the status command can report on incomplete setups.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}
	if cfg.Server.Host == "" {
		return fmt.Errorf("%w: empty host", ErrInvalidServerConfigs)
	}

	return nil
}
