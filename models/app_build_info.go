// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected by linker flags.
// Empty values are reported as N/A.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNA(a.buildVersion) }

func (a AppBuildInfo) BuildDate() string { return orNA(a.buildDate) }

func (a AppBuildInfo) BuildCommit() string { return orNA(a.buildCommit) }

// String renders the three values on separate lines.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
