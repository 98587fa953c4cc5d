/*
* Copyright (c) 2026-present Concerto project contributors
 */
package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	prev := PrintLine
	PrintLine = func(level TLogLevel, line string) { lines = append(lines, line) }
	t.Cleanup(func() { PrintLine = prev })
	return &lines
}

func TestLevelGating(t *testing.T) {
	require := require.New(t)

	lines := capture(t)
	defer SetLogLevelWithRestore(LogLevelInfo)()

	Verbose("hidden")
	require.Empty(*lines)
	require.False(IsVerbose())

	SetLogLevel(LogLevelVerbose)
	require.True(IsVerbose())
	require.False(IsTrace())

	Verbose("shown", 42)
	require.Len(*lines, 1)
	require.True(strings.HasSuffix((*lines)[0], "--- shown 42"))
}

func TestSetLogLevelWithRestore(t *testing.T) {
	require := require.New(t)

	restore := SetLogLevelWithRestore(LogLevelTrace)
	require.True(IsTrace())
	restore()
	require.False(IsTrace())
	require.True(IsInfo())
}

func TestErrorAlwaysPrefixed(t *testing.T) {
	require := require.New(t)

	lines := capture(t)
	Error("boom")
	require.Len(*lines, 1)
	require.Contains((*lines)[0], "!!! boom")
}
