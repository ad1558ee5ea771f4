package dtmf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingLogger struct {
	NopLogger
	infoCalls [][]any
	warnCalls [][]any
}

func (l *capturingLogger) Info(msg string, kv ...any) {
	l.infoCalls = append(l.infoCalls, append([]any{msg}, kv...))
}

func (l *capturingLogger) Warn(msg string, kv ...any) {
	l.warnCalls = append(l.warnCalls, append([]any{msg}, kv...))
}

func kvLookup(call []any, key string) (any, bool) {
	for i := 1; i+1 < len(call); i += 2 {
		if call[i] == key {
			return call[i+1], true
		}
	}

	return nil, false
}

func TestLevelMonitor_ReportIncludesFormattedTimestamp(t *testing.T) {
	var logger = &capturingLogger{}
	var monitor = newLevelMonitor(1, "%Y-%m-%d", logger)

	monitor.observe([]byte{10, 20, 30})
	monitor.report()

	require.Len(t, logger.infoCalls, 1)

	var ts, ok = kvLookup(logger.infoCalls[0], "time")
	require.True(t, ok, "report should include a time field")
	assert.Len(t, ts.(string), len("2006-01-02"))
}

func TestLevelMonitor_EmptyFormatFallsBackToDefault(t *testing.T) {
	var logger = &capturingLogger{}
	var monitor = newLevelMonitor(1, "", logger)

	assert.Equal(t, DefaultTimestampFormat, monitor.timestamp)
}

func TestLevelMonitor_InvalidFormatFallsBackAndWarns(t *testing.T) {
	var logger = &capturingLogger{}
	var monitor = newLevelMonitor(1, "%", logger)

	var _ = monitor.formatTimestamp()

	assert.Equal(t, DefaultTimestampFormat, monitor.timestamp)
	assert.Len(t, logger.warnCalls, 1)
}

func TestLevelMonitor_ReportWithNoSamplesStillReportsTimestamp(t *testing.T) {
	var logger = &capturingLogger{}
	var monitor = newLevelMonitor(1, DefaultTimestampFormat, logger)

	monitor.report()

	require.Len(t, logger.infoCalls, 1)

	var status, ok = kvLookup(logger.infoCalls[0], "status")
	require.True(t, ok)
	assert.Equal(t, "no samples", status)

	var _, tsOK = kvLookup(logger.infoCalls[0], "time")
	assert.True(t, tsOK)
}
