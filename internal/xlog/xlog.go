// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides a simple logging package that allows to disable
certain message categories. The package has a predefined standard Logger
accessible through the helper functions Debugf, Warn and Fatal. The
standard logger writes to standard error and prints the date and time of
each logged message, which can be configured using the function SetFlags.

The package also supports the small Outputter interface that is satisfied
by *log.Logger. The helper function Printf taking such a logger as first
argument doesn't do anything if the logger is nil. The codec uses that
interface for its optional debug output.
*/
package xlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"
)

// The flags define what information is prefixed to each log entry
// generated by the Logger. The Lno* versions allow the suppression of
// specific output. The bits are or'ed together to control what will be
// printed. There is no control over the order of the items printed and
// the format. The full format is:
//
//	2009-01-23 01:23:23 d.go:23: message
const (
	Ldate      = 1 << iota // the date: 2009-01-23
	Ltime                  // the time: 01:23:23
	Lshortfile             // final file name element and line number: d.go:23
	Lnofatal               // suppresses output from Fatal but not the exit
	Lnowarn                // suppresses output from Warn
	Lnoprint               // suppresses output from Printf
	Lnodebug               // suppresses output from Debugf
	// initial values for the standard logger
	Lstdflags = Ldate | Ltime | Lnodebug
)

// Lquiet suppresses everything except fatal messages.
const Lquiet = Lnowarn | Lnoprint | Lnodebug

// A Logger represents an active logging object that generates lines of
// output to an io.Writer. Each logging operation if not suppressed
// makes a single call to the Writer's Write method. A Logger can be
// used simultaneously from multiple goroutines; it guarantees to
// serialize access to the Writer.
type Logger struct {
	mu sync.Mutex
	// prefix is put at the beginning of each line
	prefix string
	// properties
	flag int
	// destination for output
	out io.Writer
	// for accumulating text to write
	buf []byte
}

// New creates a new Logger. The out argument sets the destination to
// which the log output will be written. The prefix appears at the
// beginning of each log line. The flag argument defines the logging
// properties.
func New(out io.Writer, prefix string, flag int) *Logger {
	return &Logger{out: out, prefix: prefix, flag: flag}
}

// std is the standard logger used by the package scope functions.
var std = New(os.Stderr, "", Lstdflags)

func itoa(buf *[]byte, i int, wid int) {
	var u = uint(i)
	if u == 0 && wid <= 1 {
		*buf = append(*buf, '0')
		return
	}
	var b [32]byte
	bp := len(b)
	for ; u > 0 || wid > 0; u /= 10 {
		bp--
		wid--
		b[bp] = byte(u%10) + '0'
	}
	*buf = append(*buf, b[bp:]...)
}

func (l *Logger) formatHeader(buf *[]byte, t time.Time, file string, line int) {
	*buf = append(*buf, l.prefix...)
	if l.flag&Ldate != 0 {
		year, month, day := t.Date()
		itoa(buf, year, 4)
		*buf = append(*buf, '-')
		itoa(buf, int(month), 2)
		*buf = append(*buf, '-')
		itoa(buf, day, 2)
		*buf = append(*buf, ' ')
	}
	if l.flag&Ltime != 0 {
		hour, min, sec := t.Clock()
		itoa(buf, hour, 2)
		*buf = append(*buf, ':')
		itoa(buf, min, 2)
		*buf = append(*buf, ':')
		itoa(buf, sec, 2)
		*buf = append(*buf, ' ')
	}
	if l.flag&Lshortfile != 0 {
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				file = file[i+1:]
				break
			}
		}
		*buf = append(*buf, file...)
		*buf = append(*buf, ':')
		itoa(buf, line, -1)
		*buf = append(*buf, ": "...)
	}
}

// Output writes the string s with the header controlled by the flags to
// the l.out writer. A newline will be appended if s doesn't end in a
// newline. Calldepth is used to recover the PC, although all current
// calls of Output use the call depth 2. Access to the function is
// serialized. The method satisfies the Outputter interface.
func (l *Logger) Output(calldepth int, s string) error {
	now := time.Now()
	var file string
	var line int
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.flag&Lshortfile != 0 {
		l.mu.Unlock()
		var ok bool
		_, file, line, ok = runtime.Caller(calldepth)
		if !ok {
			file = "???"
			line = 0
		}
		l.mu.Lock()
	}
	l.buf = l.buf[:0]
	l.formatHeader(&l.buf, now, file, line)
	l.buf = append(l.buf, s...)
	if len(s) == 0 || s[len(s)-1] != '\n' {
		l.buf = append(l.buf, '\n')
	}
	_, err := l.out.Write(l.buf)
	return err
}

func (l *Logger) enabled(mask int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flag&mask == 0
}

// Debugf prints a debug message unless suppressed by Lnodebug.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(Lnodebug) {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Printf prints a message unless suppressed by Lnoprint.
func (l *Logger) Printf(format string, v ...interface{}) {
	if l.enabled(Lnoprint) {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Warn prints a warning unless suppressed by Lnowarn.
func (l *Logger) Warn(v ...interface{}) {
	if l.enabled(Lnowarn) {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Flags returns the current flags used by the logger.
func (l *Logger) Flags() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flag
}

// SetFlags sets the flags of the logger.
func (l *Logger) SetFlags(flag int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flag = flag
}

// SetPrefix sets the prefix for the logger.
func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}

// Flags returns the flags for the standard logger.
func Flags() int { return std.Flags() }

// SetFlags sets the flags for the standard logger.
func SetFlags(flag int) { std.SetFlags(flag) }

// SetPrefix sets the prefix for the standard logger.
func SetPrefix(prefix string) { std.SetPrefix(prefix) }

// Debugf prints a debug message using the standard logger.
func Debugf(format string, v ...interface{}) {
	if std.enabled(Lnodebug) {
		std.Output(2, fmt.Sprintf(format, v...))
	}
}

// Printf formats a message and writes it to the given logger. Nothing
// happens for a nil logger.
func Printf(l Outputter, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Warn prints a warning using the standard logger.
func Warn(v ...interface{}) {
	if std.enabled(Lnowarn) {
		std.Output(2, fmt.Sprint(v...))
	}
}

// Fatal prints a message using the standard logger and calls
// os.Exit(1).
func Fatal(v ...interface{}) {
	if std.enabled(Lnofatal) {
		std.Output(2, fmt.Sprint(v...))
	}
	os.Exit(1)
}

// Outputter is the minimal logging interface used by the codec for
// debug output. The *log.Logger type and *Logger support it.
type Outputter interface {
	Output(calldepth int, s string) error
}

// Default returns the standard logger used by the package functions.
func Default() *Logger { return std }
