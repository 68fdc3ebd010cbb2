package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.3", "", "abc123")

	assert.Equal(t, "v1.2.3", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: v1.2.3\nBuild date: N/A\nBuild commit: abc123", info.String())
	assert.Equal(t, "N/A", AppBuildInfo{}.BuildVersion())
}
