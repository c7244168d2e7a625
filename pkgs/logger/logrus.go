package logger

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
)

// logrusLogger implements Logger on top of a logrus logger.
type logrusLogger struct {
	log   *logrus.Logger
	entry *logrus.Entry
}

// NewLogrus creates a logrus-backed logger that writes to stdout
func NewLogrus() Logger {
	return newLogrus(os.Stdout)
}

// NewLogrusWithFileRotation is like NewLogrus but also writes
// to the given file
func NewLogrusWithFileRotation(file io.Writer) Logger {
	return newLogrus(io.MultiWriter(os.Stdout, file))
}

// NewLogrusNoOp creates a logger that discards everything it is given.
// Useful in tests.
func NewLogrusNoOp() Logger {
	l := newLogrus(ioutil.Discard)
	l.(*logrusLogger).log.SetLevel(logrus.PanicLevel)
	return l
}

func newLogrus(out io.Writer) Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return &logrusLogger{log: log, entry: logrus.NewEntry(log)}
}

// SetToDebug sets the logger level to Debug
func (l *logrusLogger) SetToDebug() {
	l.log.SetLevel(logrus.DebugLevel)
}

// SetToInfo sets the logger level to Info
func (l *logrusLogger) SetToInfo() {
	l.log.SetLevel(logrus.InfoLevel)
}

// SetToError sets the logger level to Error
func (l *logrusLogger) SetToError() {
	l.log.SetLevel(logrus.ErrorLevel)
}

// Module returns a logger that tags every message with the given namespace
func (l *logrusLogger) Module(ns string) Logger {
	return &logrusLogger{log: l.log, entry: l.entry.WithField("module", ns)}
}

// toFields converts a variadic list of alternating keys and values
// to logrus fields. An odd trailing key is kept with a nil value.
func toFields(keyValues []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			continue
		}
		if i+1 < len(keyValues) {
			fields[key] = keyValues[i+1]
		} else {
			fields[key] = nil
		}
	}
	return fields
}

func (l *logrusLogger) Debug(msg string, keyValues ...interface{}) {
	l.entry.WithFields(toFields(keyValues)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, keyValues ...interface{}) {
	l.entry.WithFields(toFields(keyValues)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, keyValues ...interface{}) {
	l.entry.WithFields(toFields(keyValues)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, keyValues ...interface{}) {
	l.entry.WithFields(toFields(keyValues)).Error(msg)
}

func (l *logrusLogger) Fatal(msg string, keyValues ...interface{}) {
	l.entry.WithFields(toFields(keyValues)).Fatal(msg)
}
