// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected sources. mergo only fills zero fields, so the
// source added first has the highest priority.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags == nil {
		return b
	}

	flagCfg := *flags
	flagCfg.normalize()
	b.configs = append(b.configs, &flagCfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	envCfg.normalize()
	b.configs = append(b.configs, envCfg)
	return b
}

// withEnvFile reads the credentials file named by the sources collected so
// far, or the default path. A missing file is not an error.
func (b *configBuilder) withEnvFile() *configBuilder {
	path := DefaultEnvFilePath
	for _, cfg := range b.configs {
		if cfg.EnvFilePath != "" {
			path = cfg.EnvFilePath
			break
		}
	}

	fileCfg, err := parseEnvFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if fileCfg == nil {
		return b
	}

	fileCfg.normalize()
	// the file cannot redirect itself
	fileCfg.EnvFilePath = path
	b.configs = append(b.configs, fileCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		Alpaca: Alpaca{PaperTrade: DefaultPaperTrade},
		Server: Server{
			Transport: DefaultTransport,
			Host:      DefaultHost,
			Port:      DefaultPort,
		},
		EnvFilePath: DefaultEnvFilePath,
	})
	return b
}
