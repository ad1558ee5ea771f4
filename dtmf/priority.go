package dtmf

// raiseThreadPriority is a best-effort hint (spec §4.5: "SHOULD request the
// platform's real-time 'audio capture' scheduling class where available.
// This is a hint, not a correctness requirement."). The Linux
// implementation locks the calling goroutine to its OS thread and raises
// its scheduling priority via golang.org/x/sys/unix; other platforms are a
// no-op. Callers must invoke this from the goroutine whose priority should
// change, before doing any real work. A failure is logged at warn here and
// otherwise ignored; nothing is returned to the caller.
func raiseThreadPriority(logger Logger, role string) {
	if err := raiseThreadPriorityPlatform(); err != nil {
		logger.Warn("could not raise thread scheduling priority", "role", role, "error", err)
	}
}
