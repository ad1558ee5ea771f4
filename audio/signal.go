// Package audio provides Capture implementations for dtmf.Pipeline: a
// PortAudio-backed production source and a synthetic source used by tests.
// Its sample synthesis functions also back the tonegen utility.
package audio

import "math"

// ToneSamples synthesizes one or two simultaneous sine tones as unsigned
// 8-bit PCM samples centered at 127, for durationMS milliseconds at
// sampleRate samples/sec. amplitude is in 0..100, matching the convention
// of the teacher's push_button_raw (dtmf.go) where 100 uses the full
// dynamic range. Passing freqB <= 0 generates a single tone.
//
// Grounded in the teacher's gen_tone.go/dtmf.go dtmf_send + push_button
// transmit path, reworked for a receive-only module: this is a pure
// function that returns a sample buffer rather than writing to a PTT-keyed
// output device.
func ToneSamples(freqA, freqB int, amplitude int, durationMS int, sampleRate int) []byte {
	if amplitude < 0 {
		amplitude = 0
	}

	if amplitude > 100 {
		amplitude = 100
	}

	var n = (durationMS * sampleRate) / 1000
	var out = make([]byte, n)

	var phaseA, phaseB float64

	var stepA = 2 * math.Pi * float64(freqA) / float64(sampleRate)

	var stepB float64
	if freqB > 0 {
		stepB = 2 * math.Pi * float64(freqB) / float64(sampleRate)
	}

	// Two sine waves sum to a peak amplitude of +-2.0 when both are
	// present; scale by half in that case so a dual-tone signal doesn't
	// clip any more than a single tone at the same amplitude setting.
	var scale = 127.0 * float64(amplitude) / 100.0
	if freqB > 0 {
		scale /= 2
	}

	for i := 0; i < n; i++ {
		var v = math.Sin(phaseA)
		phaseA += stepA

		if freqB > 0 {
			v += math.Sin(phaseB)
			phaseB += stepB
		}

		out[i] = clampSample(127.0 + v*scale)
	}

	return out
}

// SilenceSamples returns n samples of silence (value 127).
func SilenceSamples(n int) []byte {
	var out = make([]byte, n)
	for i := range out {
		out[i] = 127
	}

	return out
}

func clampSample(v float64) byte {
	if v < 0 {
		return 0
	}

	if v > 255 {
		return 255
	}

	return byte(v + 0.5)
}
