//go:build linux

package dtmf

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// raiseThreadPriorityPlatform locks the current goroutine to its OS thread
// (a prerequisite for a per-thread priority change meaning anything) and
// asks for a lower-than-default niceness (a higher priority). It deliberately does not
// attempt SCHED_FIFO/SCHED_RR, which require privileges this process may
// not have — a failed Setpriority is exactly the "hint, not correctness
// requirement" spec §4.5 describes, grounded in the teacher's ptt.go use
// of golang.org/x/sys/unix for direct OS interaction.
func raiseThreadPriorityPlatform() error {
	runtime.LockOSThread()

	return unix.Setpriority(unix.PRIO_PROCESS, 0, -11)
}
