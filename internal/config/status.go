// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"

	"github.com/MKhiriev/alpaca-mcp/internal/credentials"
)

// Status is a display-safe summary of the configuration.
type Status struct {
	EnvFile        string
	EnvFileExists  bool
	CredentialsSet bool
	PaperTrade     bool
	APIKey         string // masked
	Transport      Transport
	Address        string
	Endpoints      credentials.Endpoints
}

// Status summarises cfg without exposing secrets.
func (cfg *StructuredConfig) Status() Status {
	_, err := os.Stat(cfg.EnvFilePath)

	return Status{
		EnvFile:        cfg.EnvFilePath,
		EnvFileExists:  err == nil,
		CredentialsSet: cfg.Alpaca.Validate() == nil,
		PaperTrade:     cfg.Alpaca.IsPaper(),
		APIKey:         credentials.Mask(cfg.Alpaca.APIKey),
		Transport:      cfg.Server.Transport,
		Address:        cfg.Server.Address(),
		Endpoints:      cfg.Alpaca.Credentials().Endpoints,
	}
}
