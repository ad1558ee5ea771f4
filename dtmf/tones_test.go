package dtmf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNewTable_CoefficientsAreStableAndInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var sampleRate = rapid.IntRange(8000, 48000).Draw(t, "sampleRate")
		var windowMS = rapid.IntRange(20, 100).Draw(t, "windowMS")

		var windowSize = RingCapacity(sampleRate, windowMS)
		if windowSize < NumTones {
			t.Skip("window too small for this sample rate/window combination")
		}

		var table = NewTable(sampleRate, windowSize)

		for _, tone := range table.Tones {
			assert.Greater(t, tone.coeff, float32(-2.0))
			assert.Less(t, tone.coeff, float32(2.0))
			assert.Equal(t, tone.coeff, 2*tone.cosOm)
		}
	})
}

func TestNewTable_ToneOrderMatchesRowThenColumn(t *testing.T) {
	var table = NewTable(8000, RingCapacity(8000, DefaultWindowMS))

	for i := 0; i < 4; i++ {
		assert.Equal(t, RowFrequenciesHz[i], table.Tones[i].FrequencyHz)
	}

	for i := 0; i < 4; i++ {
		assert.Equal(t, ColFrequenciesHz[i], table.Tones[4+i].FrequencyHz)
	}
}

func TestNewTable_PanicsOnNonPositiveInputs(t *testing.T) {
	assert.Panics(t, func() { NewTable(0, 100) })
	assert.Panics(t, func() { NewTable(8000, 0) })
}

func TestTable_SnapshotReflectsToneState(t *testing.T) {
	var table = NewTable(8000, RingCapacity(8000, DefaultWindowMS))

	table.Tones[0].detected.Store(true)
	table.Tones[5].detected.Store(true)

	var snap = table.Snapshot()

	assert.True(t, snap[0])
	assert.True(t, snap[5])
	assert.False(t, snap[1])
}
