/*
* Copyright (c) 2026-present Concerto project contributors
 */

// Package logger is a minimal leveled logger. The level is process-global
// and atomically swappable; output goes through the replaceable PrintLine
// hook, which keeps tests quiet and lets a CLI reroute output.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

type TLogLevel int32

const (
	LogLevelNone = TLogLevel(iota)
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelVerbose
	LogLevelTrace
)

var logLevel = int32(LogLevelInfo)

func SetLogLevel(level TLogLevel) (old TLogLevel) {
	return TLogLevel(atomic.SwapInt32(&logLevel, int32(level)))
}

// SetLogLevelWithRestore sets the level and returns a func restoring the
// previous one; handy in tests and around noisy sections.
func SetLogLevelWithRestore(level TLogLevel) (restore func()) {
	old := SetLogLevel(level)
	return func() { SetLogLevel(old) }
}

func Error(args ...interface{})   { printIfLevel(LogLevelError, args...) }
func Warning(args ...interface{}) { printIfLevel(LogLevelWarning, args...) }
func Info(args ...interface{})    { printIfLevel(LogLevelInfo, args...) }
func Verbose(args ...interface{}) { printIfLevel(LogLevelVerbose, args...) }
func Trace(args ...interface{})   { printIfLevel(LogLevelTrace, args...) }

func IsError() bool   { return isEnabled(LogLevelError) }
func IsWarning() bool { return isEnabled(LogLevelWarning) }
func IsInfo() bool    { return isEnabled(LogLevelInfo) }
func IsVerbose() bool { return isEnabled(LogLevelVerbose) }
func IsTrace() bool   { return isEnabled(LogLevelTrace) }

// PrintLine emits one formatted line. Replace to capture or reroute.
var PrintLine func(level TLogLevel, line string) = DefaultPrintLine

func DefaultPrintLine(level TLogLevel, line string) {
	var w io.Writer = os.Stdout
	if level == LogLevelError {
		w = os.Stderr
	}
	fmt.Fprintln(w, line)
}

var levelPrefixes = map[TLogLevel]string{
	LogLevelError:   "!!!",
	LogLevelWarning: "===",
	LogLevelInfo:    "===",
	LogLevelVerbose: "---",
	LogLevelTrace:   "---",
}

func isEnabled(level TLogLevel) bool {
	return atomic.LoadInt32(&logLevel) >= int32(level)
}

func printIfLevel(level TLogLevel, args ...interface{}) {
	if !isEnabled(level) {
		return
	}
	parts := make([]string, 0, len(args)+2)
	parts = append(parts, time.Now().Format("01/02 15:04:05.000"), levelPrefixes[level])
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	PrintLine(level, strings.Join(parts, " "))
}
