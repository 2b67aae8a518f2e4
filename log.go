package gridview

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// logHandler renders records for the package logger. Info and above by
// default; SetVerbose enables per-frame debug records.
var logHandler = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "gridview",
	Level:  log.InfoLevel,
})

// logger is the package logger. Hosts may replace it with SetLogger.
var logger = slog.New(logHandler)

// SetVerbose toggles debug-level logging on the default handler.
func SetVerbose(v bool) {
	if v {
		logHandler.SetLevel(log.DebugLevel)
	} else {
		logHandler.SetLevel(log.InfoLevel)
	}
}

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(logHandler)
	}
	logger = l
}
