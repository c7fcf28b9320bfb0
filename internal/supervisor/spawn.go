package supervisor

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// spawn starts argv[0] (resolved via PATH) as the supervised child with
// the supervisor's stdio. The child gets its own process group so a
// controlling terminal delivers signals only to the supervisor, which
// stays the sole forwarder.
func (s *Supervisor) spawn(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawning child process %q failed: %w", argv[0], err)
	}

	s.childPid = cmd.Process.Pid
	s.log.Info(fmt.Sprintf("Spawned child process %q with pid %d", argv[0], s.childPid))

	// The child is reaped through Wait4, never through cmd.Wait.
	_ = cmd.Process.Release()
	return nil
}
