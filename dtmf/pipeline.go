package dtmf

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// cycleState is the per-cycle context a coordinator hands to the eight
// workers: a single read offset captured once (spec §4.4 step 1, and the
// "single-snapshot read offset" design note in spec §9), plus the
// countdown for that cycle's wait-all.
type cycleState struct {
	readOffset int
	wg         sync.WaitGroup
}

// Pipeline owns the Ring, Table, and worker goroutines for one DTMF
// decoding session. It replaces the teacher's module-level globals (spec
// §9's "Global mutable state → module-scoped objects" design note) with an
// explicitly constructed value whose lifetime is Init → Run → Shutdown →
// Cleanup.
type Pipeline struct {
	cfg       Config
	capture   Capture
	logger    Logger
	view      View
	threshold float64

	ring  *Ring
	table *Table

	monitor *levelMonitor

	running atomic.Bool
	changed atomic.Bool
	cycle   atomic.Pointer[cycleState]

	stop   chan struct{}
	starts [NumTones]chan struct{}

	lifeWG       sync.WaitGroup
	initialized  bool
	shutdownOnce sync.Once
}

// NewPipeline constructs a Pipeline. logger and view may be nil, in which
// case NopLogger and NopView are used so core code never needs a nil
// check.
func NewPipeline(cfg Config, capture Capture, logger Logger, view View) *Pipeline {
	mustf(capture != nil, "dtmf: NewPipeline requires a non-nil Capture")

	if logger == nil {
		logger = NopLogger{}
	}

	if view == nil {
		view = NopView{}
	}

	return &Pipeline{
		cfg:     cfg,
		capture: capture,
		logger:  logger,
		view:    view,
	}
}

// Init validates the configuration, sizes the Ring and Table against the
// capture source's negotiated sample rate (falling back to the configured
// hint if the source cannot report one yet), and prepares the
// synchronization primitives for Run. It performs no partial construction
// on failure: an error here leaves the Pipeline exactly as before the call.
func (p *Pipeline) Init() error {
	mustf(!p.initialized, "dtmf: Init called more than once")

	if err := p.cfg.Validate(); err != nil {
		return fmt.Errorf("dtmf: init failed: %w", err)
	}

	var rate = p.capture.SampleRate()
	if rate <= 0 {
		rate = p.cfg.SampleRateHint
	}

	var windowSize = RingCapacity(rate, p.cfg.WindowMS)
	if windowSize < NumTones {
		return fmt.Errorf("dtmf: init failed: window of %d samples too small for %d tones at %d Hz/%dms",
			windowSize, NumTones, rate, p.cfg.WindowMS)
	}

	p.ring = NewRing(windowSize)
	p.table = NewTable(rate, windowSize)
	p.threshold = p.cfg.DetectionThreshold
	p.stop = make(chan struct{})

	for i := range p.starts {
		p.starts[i] = make(chan struct{}, 1)
	}

	if p.cfg.MonitorIntervalSeconds > 0 {
		p.monitor = newLevelMonitor(p.cfg.MonitorIntervalSeconds, p.cfg.TimestampFormat, p.logger)
	}

	p.initialized = true

	p.logger.Info("dtmf pipeline initialized",
		"sample_rate", rate, "window_samples", windowSize, "threshold", p.threshold)

	return nil
}

// Run starts the eight worker goroutines and the capture source, then
// blocks until Shutdown is called, per the Lifecycle interface of spec §6
// ("run() (blocks while running)"). It returns nil on an orderly shutdown,
// or the error that caused startup to fail.
func (p *Pipeline) Run() error {
	mustf(p.initialized, "dtmf: Run called before Init")
	mustf(!p.running.Load(), "dtmf: Run called while already running")

	p.running.Store(true)

	p.lifeWG.Add(NumTones)
	for i := 0; i < NumTones; i++ {
		go p.workerLoop(i)
	}

	if err := p.capture.Start(p.handleBatch); err != nil {
		p.running.Store(false)
		close(p.stop)
		p.lifeWG.Wait()

		return fmt.Errorf("dtmf: capture start failed: %w", err)
	}

	<-p.stop
	p.lifeWG.Wait()

	return nil
}

// Shutdown initiates cooperative shutdown: it clears the running flag,
// stops the capture source, and closes the stop channel, which Go's
// channel-close semantics broadcast to every worker blocked in its select
// (spec §5's "all wake events are manual-reset-safe" design note,
// generalized). Shutdown is idempotent — a second call is a no-op — and
// does not itself wait for workers to exit; Run does that.
func (p *Pipeline) Shutdown() {
	p.shutdownOnce.Do(func() {
		p.running.Store(false)

		if err := p.capture.Stop(); err != nil {
			p.logger.Warn("error stopping capture source", "error", err)
		}

		close(p.stop)
	})
}

// Cleanup releases anything Init allocated beyond what Shutdown already
// handles. Safe to call whether or not Run was ever called, and safe to
// call more than once.
func (p *Pipeline) Cleanup() {
	p.monitor = nil
}

// State returns the current tone flags and decoded key. Pure, thread-safe,
// non-blocking — the View contract's SnapshotToneState.
func (p *Pipeline) State() State {
	mustf(p.initialized, "dtmf: State called before Init")

	var tones = p.table.Snapshot()
	var key, ok = DecodeKeypad(tones)

	return State{Tones: tones, Key: key, KeyOK: ok}
}

// handleBatch is the BatchFunc the capture source drives once per drained
// batch, per spec §4.5. It always runs on the capture source's own
// goroutine, strictly sequentially with respect to itself.
func (p *Pipeline) handleBatch(samples []byte, anomaly Anomaly) {
	if anomaly.Discontinuity {
		p.logger.Warn("capture reported a discontinuity; continuing")
	}

	if anomaly.TimestampError {
		p.logger.Warn("capture reported a timestamp error; continuing")
	}

	for _, s := range samples {
		p.ring.Push(s)
	}

	if p.monitor != nil {
		p.monitor.observe(samples)
	}

	p.runCycle()
}

// runCycle is the Pipeline Coordinator of spec §4.4: capture a single read
// offset, fan out to the eight workers, wait for all eight, and notify the
// view at most once if anything changed.
func (p *Pipeline) runCycle() {
	if !p.running.Load() {
		return
	}

	var cs = &cycleState{readOffset: p.ring.WriteHead()}
	cs.wg.Add(NumTones)
	p.cycle.Store(cs)

	for i := 0; i < NumTones; i++ {
		p.starts[i] <- struct{}{}
	}

	cs.wg.Wait()

	if p.changed.Swap(false) {
		p.view.OnStateChanged(p.State())
	}
}

// workerLoop is one Goertzel Worker of spec §4.3: Idle until woken, compute
// once, signal done, back to Idle; exits only when it finds running=false
// on the loop head, after either a start wake or the shutdown broadcast.
func (p *Pipeline) workerLoop(index int) {
	defer p.lifeWG.Done()

	raiseThreadPriority(p.logger, "goertzel-worker")

	var tone = p.table.Tones[index]
	var buf = make([]byte, p.ring.Capacity())

	for {
		select {
		case <-p.stop:
			return
		case <-p.starts[index]:
			if !p.running.Load() {
				return
			}

			p.computeTone(index, tone, buf)
		}
	}
}

// computeTone runs one Goertzel evaluation for one tone in one cycle. A
// panic here is a worker wake anomaly (spec §7): it is logged, triggers
// cooperative shutdown, and is never retried. cs.wg.Done() always runs so
// the coordinator's wait-all cannot hang on a failed worker.
func (p *Pipeline) computeTone(index int, tone *Tone, buf []byte) {
	var cs = p.cycle.Load()

	defer cs.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("goertzel worker failed", "tone_index", index, "error", r)
			p.running.Store(false)

			go p.Shutdown()
		}
	}()

	p.ring.Snapshot(buf, cs.readOffset)

	var magnitude = goertzelMagnitude(buf, tone.coeff, tone.sinOm, tone.cosOm)
	tone.setMagnitude(magnitude)

	var newDetected = float64(magnitude) >= p.threshold
	if tone.detected.Swap(newDetected) != newDetected {
		p.changed.Store(true)
	}
}
