// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseEnvFile decodes the key/value file at path through the same tags as
// parseEnv. It returns nil and no error when the file does not exist.
func parseEnvFile(path string) (*StructuredConfig, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading env file %s: %w", path, err)
	}
	if values == nil {
		values = map[string]string{}
	}

	cfg := &StructuredConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: values}); err != nil {
		return nil, fmt.Errorf("error getting configs from env file %s: %w", path, err)
	}

	return cfg, nil
}
