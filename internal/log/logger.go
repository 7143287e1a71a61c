// Package log provides a leveled logger writing to a terminal and an optional
// rotated file.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	writer io.Writer

	Name  string
	Level Level

	TimeFormat string
}

// Rotation configures the rotation of a log file.
type Rotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

var DefaultRotation = Rotation{
	MaxSize:    128,
	MaxBackups: 5,
	MaxAge:     16,
}

// New returns a logger writing to w.
func New(name string, level Level, w io.Writer) *Logger {
	return &Logger{
		writer:     w,
		Name:       name,
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// NewFile returns a logger writing to stderr and, if file is not empty, to
// the file rotated as configured.
func NewFile(name string, level Level, file string, rot Rotation) *Logger {
	writers := []io.Writer{os.Stderr}

	if file != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    rot.MaxSize,
			MaxBackups: rot.MaxBackups,
			MaxAge:     rot.MaxAge,
			Compress:   rot.Compress,
		})
	}
	return New(name, level, io.MultiWriter(writers...))
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if level < l.Level {
		return
	}

	prefix := fmt.Sprintf("[%s] %-5s", time.Now().Format(l.TimeFormat), level)

	if l.Name != "" {
		prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
	}
	fmt.Fprintf(l.writer, "%s %s\n", prefix, fmt.Sprintf(msg, args...))
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

// Named returns a logger sharing the writer of l with name appended to its
// name.
func (l *Logger) Named(name string) *Logger {
	if l.Name != "" {
		name = l.Name + "/" + name
	}

	return &Logger{
		writer:     l.writer,
		Name:       name,
		Level:      l.Level,
		TimeFormat: l.TimeFormat,
	}
}
