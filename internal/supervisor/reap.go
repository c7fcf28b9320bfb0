package supervisor

import (
	"errors"
	"fmt"

	"go.olrik.dev/tinit/internal/core"
	"golang.org/x/sys/unix"
)

// reapZombies drains every terminated descendant without blocking. The
// main child's status becomes the run's outcome; adopted orphans are
// collected and dropped. Multiple descendants can die between passes, so
// the drain loops until the kernel reports nothing left.
func (s *Supervisor) reapZombies() error {
	for {
		var status unix.WaitStatus
		pid, err := unix.Wait4(-1, &status, unix.WNOHANG, nil)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			if errors.Is(err, unix.ECHILD) {
				s.trace("No child to wait")
				return nil
			}
			return fmt.Errorf("waiting for pids failed: %w", err)
		}
		if pid == 0 {
			s.trace("No child to reap")
			return nil
		}

		s.log.Debug(fmt.Sprintf("Reaped child with pid %d", pid))
		if pid != s.childPid {
			// A reparented orphan; it only existed to be reaped.
			continue
		}

		switch {
		case status.Exited():
			s.log.Info(fmt.Sprintf("Main child exited normally (with status %d)", status.ExitStatus()))
			s.outcome.Record(status.ExitStatus())
		case status.Signaled():
			sig := status.Signal()
			s.log.Info(fmt.Sprintf("Main child exited with signal %s", unix.SignalName(sig)))
			// Same rule as sh/bash: 128 + signal number.
			s.outcome.Record(128 + int(sig))
		default:
			return fmt.Errorf("main child exited for unknown reason (wait status %#x)", uint32(status))
		}
	}
}

func (s *Supervisor) trace(msg string) {
	core.Trace(s.log, msg)
}
