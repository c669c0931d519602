package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps the report stream quiet unless something looks off
const DefaultLevel = "warn"

// Log is the process-wide logger. It writes to stderr so stdout only
// carries the report.
var Log = newLogger(os.Stderr, logrus.WarnLevel)

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(level)
	l.SetOutput(w)
	return l
}

// Init configures the logger level and output.
// An unknown level falls back to DefaultLevel and is returned as an error.
func Init(levelStr string, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.WarnLevel
	}

	Log = newLogger(w, level)
	return err
}
