// Package logging implements a levelled logger writing pipe-separated messages.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Candidate values for logging level.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

var levelNames = map[string]int{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

// Logger formats and writes log messages.
type Logger struct {
	logger *log.Logger
	level  int
}

// New instantiates a Logger writing to stderr.
func New(level int) *Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter instantiates a Logger writing to w.
func NewWithWriter(level int, w io.Writer) *Logger {
	return &Logger{
		logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds|log.LUTC|log.Lshortfile),
		level:  level,
	}
}

// ParseLevel converts a level name (debug/info/warn/error) or its numeric form (0-3) to a level.
func ParseLevel(s string) (int, error) {
	if level, found := levelNames[strings.ToLower(strings.TrimSpace(s))]; found {
		return level, nil
	}
	level, err := strconv.Atoi(s)
	if err != nil || level < LevelDebug || level > LevelError {
		return 0, fmt.Errorf("Invalid log level | level=%q", s)
	}
	return level, nil
}

// Level returns the log level.
func (l *Logger) Level() int {
	return l.level
}

// Debug writes formatted log with debug messages.
func (l *Logger) Debug(format string, operands ...interface{}) {
	if l.level <= LevelDebug {
		l.write("DEBUG", format, operands...)
	}
}

// Info writes formatted log with information messages.
func (l *Logger) Info(format string, operands ...interface{}) {
	if l.level <= LevelInfo {
		l.write("INFO", format, operands...)
	}
}

// Warn writes formatted log with warning messages.
func (l *Logger) Warn(format string, operands ...interface{}) {
	if l.level <= LevelWarn {
		l.write("WARN", format, operands...)
	}
}

// Error writes formatted log with error messages.
func (l *Logger) Error(format string, operands ...interface{}) {
	if l.level <= LevelError {
		l.write("ERROR", format, operands...)
	}
}

func (l *Logger) write(typ string, format string, operands ...interface{}) {
	fullFormat := fmt.Sprintf("[%v] %v", typ, format)
	l.logger.Output(3, fmt.Sprintf(fullFormat, operands...))
}
