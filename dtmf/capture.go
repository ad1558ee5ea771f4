package dtmf

// Anomaly carries the three device anomaly signals spec §4.5 requires the
// capture source to tolerate. Silent frames are valid silence and are
// pushed like any other; Discontinuity and TimestampError are logged and
// still pushed — the ring's self-healing nature tolerates one bad packet.
type Anomaly struct {
	Silent         bool
	Discontinuity  bool
	TimestampError bool
}

// BatchFunc is invoked by a Capture implementation once per drained batch
// of samples, on the capture source's own goroutine. It must not be called
// concurrently with itself — batches are processed strictly in sequence,
// matching spec §5's "cycle N+1 does not begin until cycle N's wait-all
// completes."
type BatchFunc func(samples []byte, anomaly Anomaly)

// Capture is the audio input contract of spec §6: acquire the default
// capture endpoint, negotiate a mono 8-bit PCM stream, and deliver sample
// batches to onBatch, driven by whatever "samples-ready" signal the
// underlying device or test harness provides. Start must not return until
// the source is ready to deliver samples (or has failed); Stop must be
// idempotent and must unblock any goroutine the source owns.
type Capture interface {
	// Start negotiates the device and begins delivering batches to
	// onBatch. SampleRate must already report the delivery rate before
	// Start is called: Pipeline.Init reads it to size Ring and Table, and
	// they are not resized afterwards.
	Start(onBatch BatchFunc) error
	SampleRate() int
	Stop() error
}
