// Package logging backs the Nakama runtime.Logger interface with logrus so the
// standalone binaries log the same way the runtime module does.
package logging

import (
	"io"
	"maps"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/sirupsen/logrus"
)

type logger struct {
	entry *logrus.Entry
}

// New returns a JSON logger writing to out at the given level name.
// Unknown level names fall back to info.
func New(out io.Writer, level string) runtime.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return Wrap(logrus.NewEntry(l))
}

// Wrap adapts an existing logrus entry.
func Wrap(entry *logrus.Entry) runtime.Logger {
	return &logger{entry: entry}
}

func (l *logger) Debug(format string, v ...interface{}) { l.entry.Debugf(format, v...) }
func (l *logger) Info(format string, v ...interface{})  { l.entry.Infof(format, v...) }
func (l *logger) Warn(format string, v ...interface{})  { l.entry.Warnf(format, v...) }
func (l *logger) Error(format string, v ...interface{}) { l.entry.Errorf(format, v...) }

func (l *logger) WithField(key string, v interface{}) runtime.Logger {
	return &logger{entry: l.entry.WithField(key, v)}
}

func (l *logger) WithFields(fields map[string]interface{}) runtime.Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logger) Fields() map[string]interface{} {
	return maps.Clone(map[string]interface{}(l.entry.Data))
}
