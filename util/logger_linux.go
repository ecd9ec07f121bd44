//go:build linux

package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// journaldWriter sends each log line to journald, ranking failures above info
type journaldWriter struct {
	fields map[string]string
}

func (w *journaldWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")

	if err := journal.Send(msg, priorityOf(msg), w.fields); err != nil {
		return fmt.Fprintf(os.Stderr, "%s", p)
	}
	return len(p), nil
}

// priorityOf maps the call-site wording to a journald priority
func priorityOf(msg string) journal.Priority {
	switch {
	case strings.HasPrefix(msg, "Failed"), strings.Contains(msg, " error: "):
		return journal.PriErr
	case strings.HasPrefix(msg, "Warning"), strings.HasPrefix(msg, "Rejected"):
		return journal.PriWarning
	default:
		return journal.PriInfo
	}
}

var logWriter io.Writer = os.Stderr

// GetLogWriter returns the writer log output currently goes to, for gin and wish
func GetLogWriter() io.Writer {
	return logWriter
}

// SetupLogging routes the log package to journald when asked and available
func SetupLogging(withJournald bool) {
	if !withJournald {
		return
	}
	if !journal.Enabled() {
		log.Println("Warning: journald not available on this system; using standard logging")
		return
	}

	logWriter = &journaldWriter{fields: map[string]string{
		"SYSLOG_IDENTIFIER": Name,
		"CHATSVIEW_VERSION": GetVersion(),
	}}
	log.SetOutput(logWriter)
	log.SetFlags(0)
	log.Printf("Logging to journald as %s", Name)
}
