package dtmf

import "fmt"

// Default configuration values from spec §6.
const (
	DefaultDetectionThreshold = 3.0
	DefaultWindowMS           = 50
	DefaultMonitorIntervalSec = 4
	DefaultSampleRateHint     = 8000

	// DefaultTimestampFormat is an strftime pattern, matching the
	// convention of the teacher's kissutil.go "-T" flag.
	DefaultTimestampFormat = "%Y-%m-%d %H:%M:%S"
)

// Config holds the recognized configuration options of spec §6, plus the
// sample-rate hint and device filter spec.md implies but leaves unnamed
// (SPEC_FULL §6).
type Config struct {
	// DetectionThreshold is the minimum Goertzel magnitude, already scaled
	// by N/2, at which a tone is considered present.
	DetectionThreshold float64 `yaml:"detection_threshold"`

	// WindowMS is the analysis window length in milliseconds.
	WindowMS int `yaml:"window_ms"`

	// MonitorIntervalSeconds is how often the pipeline logs min/max
	// statistics of the captured samples; 0 disables periodic reporting.
	MonitorIntervalSeconds int `yaml:"monitor_interval_seconds"`

	// SampleRateHint is the rate requested from the capture device.
	// Pipeline.Init sizes Ring and Table once, from the capture source's
	// SampleRate, and uses this hint only if the source reports no rate;
	// they are not rebuilt afterwards.
	SampleRateHint int `yaml:"sample_rate_hint"`

	// Device is a case-insensitive substring filter used to pick among
	// available input devices; empty selects the platform default.
	Device string `yaml:"device"`

	// TimestampFormat is an strftime pattern (github.com/lestrrat-go/strftime)
	// used to render the timestamp on periodic capture-level reports,
	// matching the "-T" flag convention of the teacher's kissutil.go.
	TimestampFormat string `yaml:"timestamp_format"`
}

// DefaultConfig returns the configuration spec §6 specifies when no
// overrides are given.
func DefaultConfig() Config {
	return Config{
		DetectionThreshold:     DefaultDetectionThreshold,
		WindowMS:               DefaultWindowMS,
		MonitorIntervalSeconds: DefaultMonitorIntervalSec,
		SampleRateHint:         DefaultSampleRateHint,
		TimestampFormat:        DefaultTimestampFormat,
	}
}

// Validate checks the configuration is usable, returning an init-fatal
// error (spec §7) describing the first problem found.
func (c Config) Validate() error {
	if c.DetectionThreshold <= 0 {
		return fmt.Errorf("dtmf: detection_threshold must be positive, got %v", c.DetectionThreshold)
	}

	if c.WindowMS <= 0 {
		return fmt.Errorf("dtmf: window_ms must be positive, got %v", c.WindowMS)
	}

	if c.MonitorIntervalSeconds < 0 {
		return fmt.Errorf("dtmf: monitor_interval_seconds must not be negative, got %v", c.MonitorIntervalSeconds)
	}

	if c.SampleRateHint <= 0 {
		return fmt.Errorf("dtmf: sample_rate_hint must be positive, got %v", c.SampleRateHint)
	}

	return nil
}
