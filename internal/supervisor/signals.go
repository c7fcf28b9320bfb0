package supervisor

import (
	"os"

	"golang.org/x/sys/unix"
)

// signalBuffer sizes the notification channel. The kernel coalesces
// pending signals, so a modest buffer loses nothing.
const signalBuffer = 64

// maxSignal covers the standard and realtime signal range on Linux.
const maxSignal = 64

// errorSignals indicate a fault in the supervisor itself. They keep their
// default dispositions so a crash stays a crash instead of being forwarded
// to the child.
var errorSignals = map[unix.Signal]bool{
	unix.SIGFPE:  true,
	unix.SIGILL:  true,
	unix.SIGSEGV: true,
	unix.SIGBUS:  true,
	unix.SIGABRT: true,
	unix.SIGTRAP: true,
	unix.SIGSYS:  true,
}

// notifySignals lists every signal the supervisor subscribes to: the full
// range minus errorSignals and SIGURG. SIGKILL and SIGSTOP are included
// for symmetry but can never be delivered.
func notifySignals() []os.Signal {
	sigs := make([]os.Signal, 0, maxSignal)
	for n := unix.Signal(1); n <= maxSignal; n++ {
		if errorSignals[n] {
			continue
		}
		// The runtime uses SIGURG for goroutine preemption; subscribing
		// would flood the loop with wakeups that mean nothing here.
		if n == unix.SIGURG {
			continue
		}
		sigs = append(sigs, n)
	}
	return sigs
}
