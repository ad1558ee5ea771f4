package dtmf_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonewolf/tonewolf/audio"
	"github.com/tonewolf/tonewolf/dtmf"
)

// recordingView records every OnStateChanged invocation so tests can assert
// the "at most once per cycle, only when something toggled" contract of
// spec §6, rather than just inspecting the final state.
type recordingView struct {
	mu    sync.Mutex
	calls []dtmf.State
}

func (v *recordingView) OnStateChanged(s dtmf.State) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.calls = append(v.calls, s)
}

func (v *recordingView) count() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.calls)
}

// newRunningPipeline builds a Pipeline over a SyntheticSource and starts it
// on a goroutine, returning once Start has been called so the caller can
// Feed deterministically. Feed is synchronous with the pipeline's analysis
// cycle (runCycle runs on the capture goroutine), so no further
// synchronization is needed between a Feed call and asserting on State.
func newRunningPipeline(t *testing.T, view dtmf.View) (*dtmf.Pipeline, *audio.SyntheticSource) {
	t.Helper()

	var capture = audio.NewSyntheticSource(dtmf.DefaultSampleRateHint)
	var pipeline = dtmf.NewPipeline(dtmf.DefaultConfig(), capture, nil, view)

	require.NoError(t, pipeline.Init())

	var runErr = make(chan error, 1)
	go func() { runErr <- pipeline.Run() }()

	capture.WaitStarted()

	t.Cleanup(func() {
		pipeline.Shutdown()
		require.NoError(t, <-runErr)
	})

	return pipeline, capture
}

func TestPipeline_SilenceProducesNoDetection(t *testing.T) {
	var pipeline, capture = newRunningPipeline(t, nil)

	capture.FeedSilence(dtmf.DefaultWindowMS)

	var state = pipeline.State()
	assert.Equal(t, [dtmf.NumTones]bool{}, state.Tones)
	assert.False(t, state.KeyOK)
}

func TestPipeline_SingleToneSetsExactlyOneFlag(t *testing.T) {
	var pipeline, capture = newRunningPipeline(t, nil)

	capture.FeedTone(697, 0, 80, dtmf.DefaultWindowMS)

	var state = pipeline.State()
	for i, detected := range state.Tones {
		assert.Equal(t, i == 0, detected, "tone index %d", i)
	}

	assert.False(t, state.KeyOK)
}

func TestPipeline_DualToneDecodesKey2(t *testing.T) {
	var pipeline, capture = newRunningPipeline(t, nil)

	capture.FeedTone(697, 1336, 80, dtmf.DefaultWindowMS)

	var state = pipeline.State()
	require.True(t, state.KeyOK)
	assert.Equal(t, byte('2'), state.Key)
	assert.True(t, state.Tones[0])
	assert.True(t, state.Tones[5])
}

func TestPipeline_DualToneDecodesKeyPound(t *testing.T) {
	var pipeline, capture = newRunningPipeline(t, nil)

	capture.FeedTone(941, 1477, 80, dtmf.DefaultWindowMS)

	var state = pipeline.State()
	require.True(t, state.KeyOK)
	assert.Equal(t, byte('#'), state.Key)
	assert.True(t, state.Tones[3])
	assert.True(t, state.Tones[6])
}

// TestPipeline_TransitionFiresExactlyTwoChangeCallbacks exercises the
// concrete "abrupt transition" scenario of spec §8: silence, then a key
// pressed and held across two windows, then released. Exactly two
// OnStateChanged calls should fire: one on press, one on release, none for
// the repeated silence or the repeated held tone.
func TestPipeline_TransitionFiresExactlyTwoChangeCallbacks(t *testing.T) {
	var view = &recordingView{}
	var _, capture = newRunningPipeline(t, view)

	capture.FeedSilence(dtmf.DefaultWindowMS)
	capture.FeedTone(770, 1336, 80, dtmf.DefaultWindowMS) // "5" pressed
	capture.FeedTone(770, 1336, 80, dtmf.DefaultWindowMS) // held
	capture.FeedSilence(dtmf.DefaultWindowMS)             // released

	require.Equal(t, 2, view.count())

	assert.True(t, view.calls[0].KeyOK)
	assert.Equal(t, byte('5'), view.calls[0].Key)

	assert.False(t, view.calls[1].KeyOK)
}

func TestPipeline_ShutdownIsIdempotent(t *testing.T) {
	var pipeline, _ = newRunningPipeline(t, nil)

	pipeline.Shutdown()
	pipeline.Shutdown()
}
