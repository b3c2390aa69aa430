// Package log is a small leveled, colorized logger in the shape the
// teacher codebase's own log package is consumed (log.Debug/Warn/
// Error with key-value context), built on the same third-party
// libraries that codebase pins for it: fatih/color for level
// coloring, mattn/go-colorable for a Windows-safe colored writer, and
// go-stack/stack to attach a caller frame to Crit output.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
)

// Level is a log severity.
type Level int

const (
	LevelCrit Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

func (l Level) String() string {
	switch l {
	case LevelCrit:
		return "CRIT"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

var levelColor = map[Level]*color.Color{
	LevelCrit:  color.New(color.FgHiRed, color.Bold),
	LevelError: color.New(color.FgRed),
	LevelWarn:  color.New(color.FgYellow),
	LevelInfo:  color.New(color.FgGreen),
	LevelDebug: color.New(color.FgCyan),
	LevelTrace: color.New(color.FgWhite),
}

// Logger writes leveled, keyed log lines to an output writer.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	module string
}

// std is the package-level default logger, matching the teacher's
// convention of a singleton logger invoked as log.Warn(...).
var std = New(LevelInfo, "")

// New returns a Logger writing colorized output to a colorable stdout
// writer, filtering out any line above level.
func New(level Level, module string) *Logger {
	return &Logger{out: colorable.NewColorableStdout(), level: level, module: module}
}

// SetLevel adjusts the minimum level the default logger emits.
func SetLevel(l Level) { std.SetLevel(l) }

// SetLevel adjusts the minimum level this logger emits.
func (l *Logger) SetLevel(lvl Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = lvl
}

func (l *Logger) log(lvl Level, msg string, ctx []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lvl > l.level {
		return
	}
	c, ok := levelColor[lvl]
	if !ok {
		c = color.New(color.Reset)
	}
	line := fmt.Sprintf("%s %s %s", time.Now().UTC().Format(time.RFC3339), c.Sprint(lvl.String()), msg)
	for i := 0; i+1 < len(ctx); i += 2 {
		line += fmt.Sprintf(" %v=%v", ctx[i], ctx[i+1])
	}
	if lvl == LevelCrit {
		frame := stack.Caller(2)
		line += fmt.Sprintf(" caller=%+v", frame)
	}
	fmt.Fprintln(l.out, line)
}

// Trace logs at LevelTrace.
func (l *Logger) Trace(msg string, ctx ...interface{}) { l.log(LevelTrace, msg, ctx) }

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, ctx ...interface{}) { l.log(LevelDebug, msg, ctx) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, ctx ...interface{}) { l.log(LevelInfo, msg, ctx) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, ctx ...interface{}) { l.log(LevelWarn, msg, ctx) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, ctx ...interface{}) { l.log(LevelError, msg, ctx) }

// Crit logs at LevelCrit with a captured caller frame, then exits the
// process — reserved for conditions the teacher codebase would guard
// with an assert in a debug build.
func (l *Logger) Crit(msg string, ctx ...interface{}) {
	l.log(LevelCrit, msg, ctx)
	os.Exit(1)
}

func Trace(msg string, ctx ...interface{}) { std.Trace(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { std.Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { std.Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { std.Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { std.Error(msg, ctx...) }

// CritNoExit logs at LevelCrit without terminating the process; used
// by shamap's precondition helper, which panics itself rather than
// exiting outright.
func CritNoExit(msg string, ctx ...interface{}) {
	frame := stack.Caller(1)
	std.mu.Lock()
	c := levelColor[LevelCrit]
	line := fmt.Sprintf("%s %s %s", time.Now().UTC().Format(time.RFC3339), c.Sprint(LevelCrit.String()), msg)
	for i := 0; i+1 < len(ctx); i += 2 {
		line += fmt.Sprintf(" %v=%v", ctx[i], ctx[i+1])
	}
	line += fmt.Sprintf(" caller=%+v", frame)
	fmt.Fprintln(std.out, line)
	std.mu.Unlock()
}
