// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

//go:generate mockgen -source=interfaces.go -destination=../mock/installer_mock.go -package=mock

import "context"

// CommandRunner runs an external program to completion.
type CommandRunner interface {
	// Run executes name with args in dir (the current directory when empty)
	// and returns its combined output. A non-zero exit is an error.
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// Prompter reads answers from the operator.
type Prompter interface {
	// Ask prints question and returns the trimmed answer.
	Ask(ctx context.Context, question string) (string, error)

	// AskSecret is Ask without echoing the answer when input is a terminal.
	AskSecret(ctx context.Context, question string) (string, error)
}
