// Package logger provides the configurable logger shared by the secp256k1
// tooling.
//
// The root logger uses github.com/rs/zerolog with a console writer. The
// arithmetic core itself never logs; only the commands built on top of it do.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"secp256k1.mleku.dev/internal/debug"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if !debug.Debug && strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allows overriding the global logger
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the global logger
func Logger() zerolog.Logger {
	return logger
}
