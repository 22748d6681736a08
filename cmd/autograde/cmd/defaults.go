package cmd

import "github.com/autograde-tools/autograde/internal/runtime"

const (
	// DefaultLogFile is empty, so logs go to stderr only.
	DefaultLogFile  = ""
	DefaultLogLevel = runtime.DefaultLogLevel

	// DefaultConfigName is the optional config file looked up in the
	// working directory, without extension.
	DefaultConfigName = "autograde"
	EnvPrefix         = "autograde"
)
