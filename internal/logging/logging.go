// Package logging builds the tool-wide logger on charmbracelet/log:
// leveled, colored when stderr is a terminal, honoring NO_COLOR.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// New returns the savekeeper logger. verbose lowers the threshold to debug;
// noColor forces plain output regardless of terminal detection.
func New(verbose, noColor bool) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "savekeeper",
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	if noColor {
		l.SetColorProfile(termenv.Ascii)
	}
	return l
}
