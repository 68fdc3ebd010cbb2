// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/MKhiriev/alpaca-mcp/internal/logger"
)

type execRunner struct {
	logger *logger.Logger
}

// NewCommandRunner returns a CommandRunner backed by os/exec.
func NewCommandRunner(logger *logger.Logger) CommandRunner {
	return &execRunner{logger: logger}
}

func (r *execRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	r.logger.Debug().Str("command", name).Strs("args", args).Str("dir", dir).Msg("running command")

	err := cmd.Run()
	output := strings.TrimSpace(out.String())
	if err != nil {
		if output != "" {
			return output, fmt.Errorf("%s: %w: %s", name, err, output)
		}
		return output, fmt.Errorf("%s: %w", name, err)
	}
	return output, nil
}
