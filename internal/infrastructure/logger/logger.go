// Package logger configures the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
	once sync.Once
)

// Get returns the shared logger, creating it at info level on first use.
func Get() *logrus.Logger {
	once.Do(func() {
		logg = logrus.New()
		logg.SetFormatter(&logrus.JSONFormatter{})
		logg.SetLevel(logrus.InfoLevel)
		logg.SetOutput(os.Stdout)
	})
	return logg
}

// Configure sets the level of the shared logger. Unknown levels fall back to
// info.
func Configure(level string, out io.Writer) *logrus.Logger {
	l := Get()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		l.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	if out != nil {
		l.SetOutput(out)
	}
	return l
}

// For returns an entry tagged with the component name, e.g. "snapshot.writer".
func For(component string) *logrus.Entry {
	return Get().WithField("component", component)
}

// LogError logs err with the function name and optional data attached.
func LogError(entry *logrus.Entry, funcName string, data any, err error) {
	fields := logrus.Fields{"funcName": funcName}
	if data != nil {
		fields["data"] = data
	}
	entry.WithFields(fields).Error(err.Error())
}

// Discard returns an entry that writes nowhere. Tests use it to keep output
// quiet.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
