//go:build !linux

package dtmf

// raiseThreadPriorityPlatform is a no-op outside Linux; still satisfies the
// "hint, not a correctness requirement" clause of spec §4.5.
func raiseThreadPriorityPlatform() error {
	return nil
}
