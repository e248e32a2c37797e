// Package log provides the logrus logger shared by the library and the
// command-line tools.
package log

import (
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DebugEnv is the environment variable that enables debug logging.
const DebugEnv = "UGEN_DEBUG"

var debug bool

// Logger is the subset of logrus used by library code.
type Logger interface {
	Debug(...interface{})
	Info(...interface{})
	WithFields(logrus.Fields) *logrus.Entry
}

func init() {
	var err error
	debug, err = strconv.ParseBool(os.Getenv(DebugEnv))
	if err != nil {
		debug = false
	}
}

// Debugging reports whether UGEN_DEBUG enabled debug logging.
func Debugging() bool { return debug }

// GetLogger returns a new logger writing to stderr. Its level is Debug
// when UGEN_DEBUG is set to a true value and Info otherwise.
func GetLogger() *logrus.Logger {
	return NewLogger(os.Stderr, debug)
}

// NewLogger returns a text logger writing to w.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
