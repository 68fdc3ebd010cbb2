// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import "errors"

// ErrWriteFile is returned when the credentials file cannot be written.
var ErrWriteFile = errors.New("cannot write credentials file")
