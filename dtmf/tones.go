package dtmf

import (
	"math"
	"sync/atomic"
)

// NumTones is the number of individual DTMF frequencies: four row tones
// plus four column tones.
const NumTones = 8

// RowFrequenciesHz and ColFrequenciesHz are the standard DTMF tone sets.
// Index order within each group matches the row/column indices used by
// DecodeKeypad.
var (
	RowFrequenciesHz = [4]int{697, 770, 852, 941}
	ColFrequenciesHz = [4]int{1209, 1336, 1477, 1633}
)

// ToneFrequenciesHz is RowFrequenciesHz followed by ColFrequenciesHz,
// indices 0..3 row, 4..7 column — the layout the Goertzel worker pool and
// Table both index by, grounded in the teacher's DTMF_TONES table
// (dtmf.go) but split so spec §4.6's row/column partition is explicit in
// the type rather than inferred from a flat array.
var ToneFrequenciesHz = [NumTones]int{
	RowFrequenciesHz[0], RowFrequenciesHz[1], RowFrequenciesHz[2], RowFrequenciesHz[3],
	ColFrequenciesHz[0], ColFrequenciesHz[1], ColFrequenciesHz[2], ColFrequenciesHz[3],
}

// ToneLabels are the eight display labels, display-only per spec §3.
var ToneLabels = [NumTones]string{"697", "770", "852", "941", "1209", "1336", "1477", "1633"}

// Tone holds one tone's immutable Goertzel coefficients and mutable
// detection state. Coefficients are written once, during Table
// initialization, and never rewritten short of a full Table
// re-initialization (spec §3 invariant). The mutable fields are written
// only by the one worker that owns this tone's index — no cross-tone
// writes.
type Tone struct {
	Index       int
	FrequencyHz int
	Label       string

	// Precomputed at init. k is the rounded DFT bin index; sin/cos/coeff
	// are derived from it. Rounding k to an integer is spec §4.2's bin
	// alignment: the bin then covers a whole number of cycles per window.
	// The bin center, k*SampleRate/WindowSize Hz, can lie up to half a bin
	// from the tone's nominal frequency (at 8 kHz and 50 ms, 770 Hz is
	// measured at bin 39, i.e. 780 Hz), so an off-center tone reads lower
	// than an on-center one of the same amplitude. The
	// teacher's dtmf.go deliberately leaves k unrounded ("What is to be
	// gained?") — spec.md §4.2 takes the opposite position, and this
	// module follows spec.md; see DESIGN.md. sin/cos/coeff are float32,
	// per spec §4.3's single-precision requirement.
	k     int
	sinOm float32
	cosOm float32
	coeff float32

	lastMagnitude atomic.Uint32 // math.Float32bits, updated by the owning worker
	detected      atomic.Bool
}

// Magnitude returns the most recently computed Goertzel magnitude for this
// tone. Safe to call from any goroutine.
func (t *Tone) Magnitude() float32 {
	return math.Float32frombits(t.lastMagnitude.Load())
}

func (t *Tone) setMagnitude(m float32) {
	t.lastMagnitude.Store(math.Float32bits(m))
}

// Detected reports whether this tone is currently above threshold. Safe to
// call from any goroutine.
func (t *Tone) Detected() bool {
	return t.detected.Load()
}

// Table is the shared, mostly-immutable descriptor set for the eight DTMF
// tones, indexed 0..3 row and 4..7 column.
type Table struct {
	Tones      [NumTones]*Tone
	SampleRate int
	WindowSize int
}

// NewTable computes Goertzel coefficients for all eight tones against a
// window of windowSize samples at sampleRate samples/sec, per spec §4.2.
func NewTable(sampleRate, windowSize int) *Table {
	if sampleRate <= 0 || windowSize <= 0 {
		panic("dtmf: sample rate and window size must be positive")
	}

	var table = &Table{SampleRate: sampleRate, WindowSize: windowSize}

	for i, freq := range ToneFrequenciesHz {
		var k = int(math.Round(float64(windowSize) * float64(freq) / float64(sampleRate)))
		var omega = 2 * math.Pi * float64(k) / float64(windowSize)

		// math has no float32 Sin/Cos; compute in float64 and narrow
		// immediately, same as the original's sinf/cosf intrinsics — the
		// coefficients themselves end up float32, only their one-time
		// derivation briefly touches a wider type.
		var sinOm = float32(math.Sin(omega))
		var cosOm = float32(math.Cos(omega))

		table.Tones[i] = &Tone{
			Index:       i,
			FrequencyHz: freq,
			Label:       ToneLabels[i],
			k:           k,
			sinOm:       sinOm,
			cosOm:       cosOm,
			coeff:       2 * cosOm,
		}
	}

	return table
}

// Snapshot captures all eight detection flags at a single instant. It does
// not itself guarantee the flags are mutually consistent across a boundary
// where a worker is concurrently updating one of them — callers that need
// a whole-cycle-consistent snapshot should call this only after a
// Pipeline's wait-all for the cycle has returned, as Pipeline.State does.
func (tb *Table) Snapshot() [NumTones]bool {
	var out [NumTones]bool
	for i, t := range tb.Tones {
		out[i] = t.Detected()
	}

	return out
}
