// Package logger provides the leveled console logger behind the --debug
// flag. The listing pipeline itself is pure; diagnostics about scanning,
// git discovery and layout decisions are logged from the command layer.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

var levelNames = map[string]int{
	"trace": levelTrace,
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

// ConsoleLogger logs diagnostics to a writer with timestamps and thread
// safety. All output is prefixed with [HH:MM:SS] timestamps. Messages below
// the configured level are discarded.
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing to w. If w is nil,
// messages are silently discarded. level is one of trace, debug, info,
// warn, error (case-insensitive); empty or invalid levels default to info.
// Colour is enabled automatically when w is a terminal.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		level:       normalizeLevel(level),
		colorOutput: isTerminal(w),
	}
}

func normalizeLevel(level string) int {
	if n, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]; ok {
		return n
	}
	return levelInfo
}

// isTerminal checks if the writer is a terminal that supports colours.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) && !color.NoColor
}

// Tracef logs at trace level.
func (l *ConsoleLogger) Tracef(format string, args ...any) {
	l.logf(levelTrace, "TRACE", color.New(color.FgHiBlack), format, args...)
}

// Debugf logs at debug level.
func (l *ConsoleLogger) Debugf(format string, args ...any) {
	l.logf(levelDebug, "DEBUG", color.New(color.FgCyan), format, args...)
}

// Infof logs at info level.
func (l *ConsoleLogger) Infof(format string, args ...any) {
	l.logf(levelInfo, "INFO", color.New(color.FgGreen), format, args...)
}

// Warnf logs at warn level.
func (l *ConsoleLogger) Warnf(format string, args ...any) {
	l.logf(levelWarn, "WARN", color.New(color.FgYellow), format, args...)
}

// Errorf logs at error level.
func (l *ConsoleLogger) Errorf(format string, args ...any) {
	l.logf(levelError, "ERROR", color.New(color.FgRed), format, args...)
}

func (l *ConsoleLogger) logf(level int, tag string, c *color.Color, format string, args ...any) {
	if l.writer == nil || level < l.level {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	stamp := time.Now().Format("15:04:05")
	if l.colorOutput {
		tag = c.Sprint(tag)
	}
	fmt.Fprintf(l.writer, "[%s] %s %s\n", stamp, tag, fmt.Sprintf(format, args...))
}
