// Package view provides a minimal reference implementation of dtmf.View.
// The windowing/GUI surface itself is out of scope (spec §1's "treated as
// external collaborators"), but a consumer of the View contract is useful
// for manual verification and lets cmd/tonewolf demonstrate the pipeline
// end to end without a GUI toolkit dependency.
package view

import (
	"fmt"
	"io"

	"github.com/tonewolf/tonewolf/dtmf"
)

// Terminal prints one line per key transition: a line when a key becomes
// pressed, and a line when it releases. It treats dtmf.View's
// at-most-once-per-cycle, changed-only callback as the hint it is and does
// no I/O beyond one unbuffered Fprintf to w per transition.
type Terminal struct {
	w       io.Writer
	lastKey byte
	hadKey  bool
}

// NewTerminal builds a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) OnStateChanged(state dtmf.State) {
	if state.KeyOK && (!t.hadKey || state.Key != t.lastKey) {
		fmt.Fprintf(t.w, "key pressed: %c\n", state.Key)

		t.lastKey = state.Key
		t.hadKey = true

		return
	}

	if !state.KeyOK && t.hadKey {
		fmt.Fprintf(t.w, "key released: %c\n", t.lastKey)

		t.hadKey = false
	}
}

var _ dtmf.View = (*Terminal)(nil)
