// Command tonegen writes synthetic 8-bit unsigned PCM DTMF signal to
// stdout, for piping into other tools or capturing as fixture data. It is
// a signal source, not a file-based decoder, so it does not touch the
// file/compressed-audio decoding Non-goal of spec §1.
//
// Grounded in the teacher's gen_tone.go/dtmf.go transmit path
// (dtmf_send/push_button), reworked as a standalone generator rather than
// a PTT-keyed radio transmit step.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/tonewolf/tonewolf/audio"
	"github.com/tonewolf/tonewolf/dtmf"
)

func main() {
	var keys = pflag.StringP("keys", "k", "", "Sequence of DTMF keys to generate, e.g. \"123A\".")
	var sampleRate = pflag.IntP("sample-rate", "r", dtmf.DefaultSampleRateHint, "Sample rate in Hz.")
	var amplitude = pflag.IntP("amplitude", "a", 80, "Signal amplitude, 0-100.")
	var toneMS = pflag.IntP("tone-ms", "t", 100, "Duration of each tone in milliseconds.")
	var gapMS = pflag.IntP("gap-ms", "g", 100, "Duration of silence between tones in milliseconds.")
	var leadMS = pflag.IntP("lead-ms", "l", 0, "Leading silence in milliseconds.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: tonegen -k <keys> [options] > out.pcm\n\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help || *keys == "" {
		pflag.Usage()

		if *keys == "" {
			os.Exit(1)
		}

		return
	}

	var out = bufio.NewWriter(os.Stdout)
	defer out.Flush() //nolint:errcheck

	if *leadMS > 0 {
		out.Write(audio.SilenceSamples((*leadMS * *sampleRate) / 1000)) //nolint:errcheck
	}

	for _, r := range strings.ToUpper(*keys) {
		var rowHz, colHz, ok = dtmf.FrequenciesForKey(byte(r))
		if !ok {
			fmt.Fprintf(os.Stderr, "tonegen: skipping unrecognized key %q\n", r)

			continue
		}

		out.Write(audio.ToneSamples(rowHz, colHz, *amplitude, *toneMS, *sampleRate)) //nolint:errcheck
		out.Write(audio.SilenceSamples((*gapMS * *sampleRate) / 1000))               //nolint:errcheck
	}
}
