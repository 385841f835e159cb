package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the package-level logger used through log.Debugf and
// friends. Debug mode adds timestamps and caller info.
func Setup(debug bool) {
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		log.SetReportCaller(true)
		return
	}
	log.SetLevel(log.InfoLevel)
	log.SetReportTimestamp(false)
	log.SetReportCaller(false)
}

// Quiet returns a logger that only reports errors, for interactive output
// where info lines would get in the way.
func Quiet(prefix string) *log.Logger {
	return NewWithConfig(os.Stderr, prefix, log.ErrorLevel, false, false)
}
