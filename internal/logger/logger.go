package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the path to the viewer log file, relative to the working directory.
const LogFilePath = "logs/viewer.txt"

// Level marks how serious a logged line is. It is rendered as a prefix ("WARN ", "ERROR ").
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) prefix() string {
	switch l {
	case LevelWarn:
		return "WARN "
	case LevelError:
		return "ERROR "
	}
	return ""
}

// Logger keeps diagnostic lines in memory (the console overlay draws them) and appends them to a file.
// Lines are mirrored to a console writer (stderr by default) because diagnostics are console-only.
// Safe for use from load goroutines.
type Logger struct {
	mu      sync.Mutex
	lines   []string
	path    string
	console io.Writer
	now     func() time.Time
}

// New returns a Logger writing to LogFilePath and stderr, and ensures the logs directory exists.
func New() *Logger {
	dir := filepath.Dir(LogFilePath)
	_ = os.MkdirAll(dir, 0755)
	return &Logger{lines: make([]string, 0), path: LogFilePath, console: os.Stderr, now: time.Now}
}

// NewMemory returns a Logger that only keeps lines in memory (no file, no console). Used by tests
// and by the headless inspect command when --quiet is set.
func NewMemory() *Logger {
	return &Logger{lines: make([]string, 0), now: time.Now}
}

// Log records an info line.
func (l *Logger) Log(line string) {
	l.write(LevelInfo, line)
}

// Infof records a formatted info line.
func (l *Logger) Infof(format string, args ...any) {
	l.write(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf records a formatted warning, e.g. a partially loaded size variant.
func (l *Logger) Warnf(format string, args ...any) {
	l.write(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf records a formatted error line.
func (l *Logger) Errorf(format string, args ...any) {
	l.write(LevelError, fmt.Sprintf(format, args...))
}

// write prefixes the line with [timestamp] and level, stores it, and appends it to the outputs.
func (l *Logger) write(level Level, line string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + level.prefix() + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	console, path := l.console, l.path
	l.mu.Unlock()

	if console != nil {
		_, _ = io.WriteString(console, stamped+"\n")
	}
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// SetConsole replaces the console mirror. nil disables it.
func (l *Logger) SetConsole(w io.Writer) {
	l.mu.Lock()
	l.console = w
	l.mu.Unlock()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
