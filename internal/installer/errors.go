// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import "errors"

var (
	// ErrPrerequisite is returned when a required tool or file is missing:
	// no suitable Python interpreter, or no requirements.txt.
	ErrPrerequisite = errors.New("prerequisite missing")

	// ErrSetup is returned when a setup step fails: the virtual environment
	// cannot be created, dependencies cannot be installed or the
	// credentials file cannot be written.
	ErrSetup = errors.New("setup failed")

	// ErrInterrupted is returned when the operator cancels the run.
	ErrInterrupted = errors.New("installation cancelled by user")
)
