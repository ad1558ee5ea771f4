package dtmf

// State is the pure, thread-safe, non-blocking snapshot the View contract
// (spec §6) is built around: the eight tone flags and the decoded key, if
// any.
type State struct {
	Tones [NumTones]bool
	Key   byte
	KeyOK bool
}

// View is the push side of the contract the core exposes to whatever
// visualises keypad state; the pull side is Pipeline.State, which is pure
// and safe to call at any time after Init. OnStateChanged, registered via
// NewPipeline, is invoked at most once per analysis cycle, and only in
// cycles where at least one tone flag changed (spec §6). It is called
// synchronously on the capture goroutine, and the next cycle does not
// start until it returns, so a View should return quickly.
type View interface {
	OnStateChanged(state State)
}

// ViewFunc adapts a plain function to View.
type ViewFunc func(State)

func (f ViewFunc) OnStateChanged(state State) {
	f(state)
}

// NopView discards state-changed notifications. Used as the default so a
// Pipeline never needs a nil check.
type NopView struct{}

func (NopView) OnStateChanged(State) {}
