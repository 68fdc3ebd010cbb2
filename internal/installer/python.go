// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// Minimum interpreter version accepted by the Python setup.
const (
	minPythonMajor = 3
	minPythonMinor = 6
)

// pythonCandidates are tried in order.
var pythonCandidates = []string{"python3", "python"}

var pythonVersionRe = regexp.MustCompile(`Python (\d+)\.(\d+)`)

// parsePythonVersion extracts major and minor from `python --version`
// output such as "Python 3.11.4".
func parsePythonVersion(output string) (major, minor int, err error) {
	m := pythonVersionRe.FindStringSubmatch(output)
	if m == nil {
		return 0, 0, fmt.Errorf("unrecognised version output %q", output)
	}
	major, _ = strconv.Atoi(m[1])
	minor, _ = strconv.Atoi(m[2])
	return major, minor, nil
}

func pythonSupported(major, minor int) bool {
	return major > minPythonMajor || (major == minPythonMajor && minor >= minPythonMinor)
}

// venvPython is the interpreter inside a virtual environment.
func venvPython(venv, goos string) string {
	if goos == "windows" {
		return filepath.Join(venv, "Scripts", "python.exe")
	}
	return filepath.Join(venv, "bin", "python")
}

// venvActivate is the command that activates a virtual environment.
func venvActivate(venv, goos string) string {
	if goos == "windows" {
		return filepath.Join(venv, "Scripts", "activate")
	}
	return "source " + filepath.Join(venv, "bin", "activate")
}
