// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/alpaca-mcp/internal/cli"
	"github.com/MKhiriev/alpaca-mcp/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	os.Exit(cli.Execute(context.Background(), buildInfo))
}
