package guikit

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package logger. Focus changes, menu actions and theme loading
// are reported at debug level.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "guikit",
	Level:  log.WarnLevel,
})

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}
