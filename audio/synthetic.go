package audio

import (
	"errors"
	"sync"

	"github.com/tonewolf/tonewolf/dtmf"
)

// SyntheticSource is a dtmf.Capture implementation with no real device
// behind it: Start just records the callback, and a caller drives the
// pipeline deterministically via Feed, one batch per call — exactly the
// "capture thread ... invokes the Pipeline Coordinator once per drain"
// contract of spec §4.5, with the drain under the caller's control. It
// backs the pipeline's unit tests (spec §8's scenarios); cmd/tonegen does
// not use it and calls ToneSamples/SilenceSamples directly.
type SyntheticSource struct {
	sampleRate int

	mu        sync.Mutex
	onBatch   dtmf.BatchFunc
	started   bool
	stopped   bool
	startedCh chan struct{}
}

// NewSyntheticSource creates a source that reports sampleRate from
// construction on, before Start is called (mirroring a real device's
// negotiated rate being known up front).
func NewSyntheticSource(sampleRate int) *SyntheticSource {
	return &SyntheticSource{sampleRate: sampleRate, startedCh: make(chan struct{})}
}

func (s *SyntheticSource) SampleRate() int {
	return s.sampleRate
}

func (s *SyntheticSource) Start(onBatch dtmf.BatchFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errors.New("audio: synthetic source already started")
	}

	s.onBatch = onBatch
	s.started = true
	close(s.startedCh)

	return nil
}

// WaitStarted blocks until Start has been called, so a caller that runs
// Pipeline.Run on another goroutine can synchronize with it before calling
// Feed.
func (s *SyntheticSource) WaitStarted() {
	<-s.startedCh
}

func (s *SyntheticSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true

	return nil
}

// Feed delivers one batch of samples to the pipeline, as if a device had
// just drained that many frames. It is a no-op once Stop has been called,
// matching a real device's behavior of delivering no further batches after
// teardown.
func (s *SyntheticSource) Feed(samples []byte, anomaly dtmf.Anomaly) {
	s.mu.Lock()
	var cb = s.onBatch
	var stopped = s.stopped
	s.mu.Unlock()

	if stopped || cb == nil {
		return
	}

	cb(samples, anomaly)
}

// FeedTone is a convenience wrapper combining ToneSamples and Feed for a
// single window's worth of signal.
func (s *SyntheticSource) FeedTone(freqA, freqB, amplitude, durationMS int) {
	s.Feed(ToneSamples(freqA, freqB, amplitude, durationMS, s.sampleRate), dtmf.Anomaly{})
}

// FeedSilence is a convenience wrapper feeding durationMS of silence.
func (s *SyntheticSource) FeedSilence(durationMS int) {
	var n = (durationMS * s.sampleRate) / 1000
	s.Feed(SilenceSamples(n), dtmf.Anomaly{})
}
