//go:build !linux

package util

import (
	"io"
	"log"
	"os"
)

var logWriter io.Writer = os.Stderr

// GetLogWriter returns the writer log output currently goes to, for gin and wish
func GetLogWriter() io.Writer {
	return logWriter
}

// SetupLogging keeps standard logging; journald exists only on linux
func SetupLogging(withJournald bool) {
	if withJournald {
		log.Printf("Warning: journald is not supported on this system, %s logs to stderr", Name)
	}
}
