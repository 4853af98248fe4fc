// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package log implements the structured, leveled logger used across the
// node: Trace/Debug/Info/Warn/Error/Crit, each taking a message followed by
// alternating key/value pairs. The default handler writes to stderr,
// color-coding by level when attached to a terminal.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Lvl is the level of a log line.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Lvl) String() string {
	switch l {
	case LvlCrit:
		return "CRIT"
	case LvlError:
		return "ERROR"
	case LvlWarn:
		return "WARN"
	case LvlInfo:
		return "INFO"
	case LvlDebug:
		return "DEBUG"
	default:
		return "TRACE"
	}
}

var levelColor = map[Lvl]*color.Color{
	LvlCrit:  color.New(color.FgRed, color.Bold),
	LvlError: color.New(color.FgRed),
	LvlWarn:  color.New(color.FgYellow),
	LvlInfo:  color.New(color.FgGreen),
	LvlDebug: color.New(color.FgCyan),
	LvlTrace: color.New(color.FgMagenta),
}

// Logger emits leveled, structured log lines, optionally prefixed with a
// fixed set of call-site context (e.g. a component name).
type Logger struct {
	ctx []interface{}
}

// Root returns the package-level default logger.
func Root() *Logger { return root }

var (
	mu       sync.Mutex
	colorize           = isatty.IsTerminal(os.Stderr.Fd())
	out      io.Writer = colorableStderr()
	minLevel           = LvlInfo
	root               = &Logger{}
)

func colorableStderr() io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return colorable.NewColorableStderr()
	}
	return os.Stderr
}

// SetOutput redirects where log lines are written (tests use this to
// capture output instead of stderr).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Verbosity sets the most verbose level emitted; anything more verbose
// than lvl is dropped cheaply before formatting.
func Verbosity(lvl Lvl) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = lvl
}

// New returns a Logger with ctx permanently attached to every line it
// emits, the way components tag their logs with a component/peer id.
func New(ctx ...interface{}) *Logger {
	return &Logger{ctx: ctx}
}

func (l *Logger) write(lvl Lvl, msg string, ctx []interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if lvl > minLevel {
		return
	}
	var b strings.Builder
	ts := time.Now().Format("2006-01-02T15:04:05.000")
	if colorize {
		levelColor[lvl].Fprintf(&b, "%-5s", lvl.String())
	} else {
		fmt.Fprintf(&b, "%-5s", lvl.String())
	}
	fmt.Fprintf(&b, "[%s] %s", ts, msg)
	all := append(append([]interface{}{}, l.ctx...), ctx...)
	for i := 0; i+1 < len(all); i += 2 {
		fmt.Fprintf(&b, " %v=%v", all[i], all[i+1])
	}
	if lvl <= LvlError {
		if c := stack.Caller(2); c != nil {
			fmt.Fprintf(&b, " caller=%+v", c)
		}
	}
	b.WriteByte('\n')
	io.WriteString(out, b.String())
}

func (l *Logger) Trace(msg string, ctx ...interface{}) { l.write(LvlTrace, msg, ctx) }
func (l *Logger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }
func (l *Logger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *Logger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *Logger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }
func (l *Logger) Crit(msg string, ctx ...interface{}) {
	l.write(LvlCrit, msg, ctx)
	os.Exit(1)
}

// New returns a child logger with extra ctx merged on top of l's.
func (l *Logger) New(ctx ...interface{}) *Logger {
	return &Logger{ctx: append(append([]interface{}{}, l.ctx...), ctx...)}
}

// Package-level convenience wrappers against the root logger, the way
// go-ethereum's log.Debug(...)/log.Error(...) free functions are called
// from every component without constructing a Logger first.
func Trace(msg string, ctx ...interface{}) { root.write(LvlTrace, msg, ctx) }
func Debug(msg string, ctx ...interface{}) { root.write(LvlDebug, msg, ctx) }
func Info(msg string, ctx ...interface{})  { root.write(LvlInfo, msg, ctx) }
func Warn(msg string, ctx ...interface{})  { root.write(LvlWarn, msg, ctx) }
func Error(msg string, ctx ...interface{}) { root.write(LvlError, msg, ctx) }
func Crit(msg string, ctx ...interface{})  { root.write(LvlCrit, msg, ctx) }
