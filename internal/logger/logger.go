package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the viewer log file, relative to the working directory.
const DefaultPath = "logs/viewer.txt"

// Level tags a log line.
type Level string

const (
	Info  Level = "INFO"
	Error Level = "ERROR"
)

// Logger keeps log lines in memory (for the on-screen status line) and appends them to a file.
// It is safe for use from loader goroutines.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists. An empty path keeps lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Infof logs a formatted INFO line.
func (l *Logger) Infof(format string, args ...any) {
	l.Log(Info, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted ERROR line.
func (l *Logger) Errorf(format string, args ...any) {
	l.Log(Error, fmt.Sprintf(format, args...))
}

// Log appends "[timestamp] LEVEL msg" in memory and to the log file. File errors are dropped;
// the log must never take the viewer down.
func (l *Logger) Log(level Level, msg string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + string(level) + " " + msg

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Last returns up to n of the most recent lines, oldest first.
func (l *Logger) Last(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.lines) {
		n = len(l.lines)
	}
	out := make([]string, n)
	copy(out, l.lines[len(l.lines)-n:])
	return out
}
