package supervisor

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// waitAndForward blocks until a signal is pending or the timeout elapses.
// A timeout is a no-op: it only bounds how long a dead descendant can sit
// unreaped before the next reap pass. SIGCHLD wakes the loop without being
// forwarded; the reap pass collects the status. Every other signal is
// relayed verbatim to the main child.
func (s *Supervisor) waitAndForward(sigCh <-chan os.Signal) error {
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case sig := <-sigCh:
		num, ok := sig.(unix.Signal)
		if !ok {
			// os/signal only delivers unix signals here; anything else
			// is a spurious wake, handled like a timeout.
			return nil
		}
		if num == unix.SIGCHLD {
			s.log.Debug("Received SIGCHLD")
			return nil
		}
		s.log.Debug(fmt.Sprintf("Passing signal: %s", unix.SignalName(num)))
		if err := unix.Kill(s.childPid, num); err != nil {
			if errors.Is(err, unix.ESRCH) {
				// Expected race: the child died between reap passes.
				s.log.Warn("Child was dead when forwarding signal")
				return nil
			}
			return fmt.Errorf("forwarding signal %s failed: %w", unix.SignalName(num), err)
		}
	}
	return nil
}
