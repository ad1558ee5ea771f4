package dtmf

import (
	"time"

	"github.com/lestrrat-go/strftime"
)

// levelMonitor accumulates min/max sample statistics and reports them to
// the Logger every interval, per SPEC_FULL §4.7 (grounded in the teacher's
// audio_stats.go, which reports sample rate and receive level on the same
// kind of periodic cadence). It is driven inline from handleBatch, so it
// needs no locking of its own — Pipeline guarantees handleBatch calls are
// never concurrent with each other.
//
// Its report timestamp is rendered with an strftime pattern
// (github.com/lestrrat-go/strftime), the same library and the same
// user-configurable-format convention the teacher uses for its received-frame
// timestamps in tq.go/xmit.go, rather than Go's own reference-time layout.
type levelMonitor struct {
	interval  time.Duration
	logger    Logger
	timestamp string

	windowStart time.Time
	batches     int
	samples     int
	min, max    byte
	haveSample  bool
}

func newLevelMonitor(intervalSeconds int, timestampFormat string, logger Logger) *levelMonitor {
	if timestampFormat == "" {
		timestampFormat = DefaultTimestampFormat
	}

	return &levelMonitor{
		interval:    time.Duration(intervalSeconds) * time.Second,
		logger:      logger,
		timestamp:   timestampFormat,
		windowStart: time.Now(),
	}
}

// formatTimestamp renders the current time with the monitor's configured
// strftime pattern, falling back to the default pattern (and logging a
// warning once) if the configured pattern doesn't compile.
func (m *levelMonitor) formatTimestamp() string {
	var formatted, err = strftime.Format(m.timestamp, time.Now())
	if err != nil {
		m.logger.Warn("invalid timestamp_format, falling back to default", "format", m.timestamp, "error", err)

		m.timestamp = DefaultTimestampFormat
		formatted, _ = strftime.Format(m.timestamp, time.Now())
	}

	return formatted
}

func (m *levelMonitor) observe(samples []byte) {
	m.batches++
	m.samples += len(samples)

	for _, s := range samples {
		if !m.haveSample {
			m.min, m.max = s, s
			m.haveSample = true

			continue
		}

		if s < m.min {
			m.min = s
		}

		if s > m.max {
			m.max = s
		}
	}

	if time.Since(m.windowStart) >= m.interval {
		m.report()
		m.reset()
	}
}

func (m *levelMonitor) report() {
	var ts = m.formatTimestamp()

	if !m.haveSample {
		m.logger.Info("capture level", "time", ts, "batches", m.batches, "samples", m.samples, "status", "no samples")

		return
	}

	m.logger.Info("capture level",
		"time", ts, "batches", m.batches, "samples", m.samples, "min", m.min, "max", m.max)
}

func (m *levelMonitor) reset() {
	m.windowStart = time.Now()
	m.batches = 0
	m.samples = 0
	m.haveSample = false
}
