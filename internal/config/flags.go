// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// RegisterFlags binds the serve flags to fs and returns the config they fill
// once fs is parsed. Flags left unset stay zero so lower-priority sources can
// supply the value.
//
// Flags:
//
//	--transport stdio | http | sse
//	--host      listen host for network transports
//	--port      listen port for network transports
//	--env-file  credentials file path
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar((*string)(&cfg.Server.Transport), "transport", "",
		fmt.Sprintf("transport protocol: stdio, http or sse (sse is deprecated) (default %q)", DefaultTransport))
	fs.StringVar(&cfg.Server.Host, "host", "",
		fmt.Sprintf("host to bind for http/sse transports (default %q)", DefaultHost))
	fs.IntVar(&cfg.Server.Port, "port", 0,
		fmt.Sprintf("port to bind for http/sse transports (default %d)", DefaultPort))
	fs.StringVar(&cfg.EnvFilePath, "env-file", "",
		fmt.Sprintf("path to the credentials file (default %q)", DefaultEnvFilePath))

	return cfg
}
