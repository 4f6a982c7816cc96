package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	base  *logrus.Logger
	info  *logrus.Entry
	warn  *logrus.Entry
	error *logrus.Entry
}

func New() *Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		base.SetLevel(lvl)
	}

	return fromEntry(base, logrus.NewEntry(base))
}

func fromEntry(base *logrus.Logger, entry *logrus.Entry) *Logger {
	return &Logger{
		base:  base,
		info:  entry,
		warn:  entry,
		error: entry,
	}
}

// WithField returns a logger that tags every line with key=value.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return fromEntry(l.base, l.info.WithField(key, value))
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.info.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.warn.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.error.Errorf(format, v...)
}
