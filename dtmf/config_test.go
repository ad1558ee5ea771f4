package dtmf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate_RejectsBadFields(t *testing.T) {
	var base = DefaultConfig()

	var withThreshold = base
	withThreshold.DetectionThreshold = 0
	assert.Error(t, withThreshold.Validate())

	var withWindow = base
	withWindow.WindowMS = -1
	assert.Error(t, withWindow.Validate())

	var withMonitor = base
	withMonitor.MonitorIntervalSeconds = -1
	assert.Error(t, withMonitor.Validate())

	var withRate = base
	withRate.SampleRateHint = 0
	assert.Error(t, withRate.Validate())
}

func TestConfig_Validate_ZeroMonitorIntervalDisablesButIsValid(t *testing.T) {
	var cfg = DefaultConfig()
	cfg.MonitorIntervalSeconds = 0

	assert.NoError(t, cfg.Validate())
}
