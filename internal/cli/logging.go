package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the diagnostic logger written to w.
// Only warnings and errors are shown unless verbose is set.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "todo",
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
