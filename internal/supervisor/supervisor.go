// Package supervisor implements the PID-1 half of tinit: it spawns a
// single child process, forwards received signals to it, reaps every
// descendant, and reports the child's exit status as its own.
package supervisor

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"time"
)

// Supervisor runs one child to completion. It is single-threaded: the only
// blocking point is the bounded wait for a pending signal, and all reaping
// happens synchronously right after it.
type Supervisor struct {
	log     *slog.Logger
	timeout time.Duration

	childPid int
	outcome  Outcome
}

// Option adjusts a Supervisor before its run.
type Option func(*Supervisor)

// WithWaitTimeout overrides the bound on each wait-for-signal step. The
// default of one second keeps zombie cleanup fresh even when no signal
// arrives; tests shorten it.
func WithWaitTimeout(d time.Duration) Option {
	return func(s *Supervisor) {
		s.timeout = d
	}
}

func New(log *slog.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		log:     log,
		timeout: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run spawns argv as the supervised child and blocks until its exit status
// is known, returning it as the process exit code: the child's own code
// for a normal exit, 128 plus the signal number when killed by a signal.
// A returned error is fatal and maps to exit code 1 in the caller.
func (s *Supervisor) Run(argv []string) (int, error) {
	if len(argv) == 0 {
		return 1, errors.New("no child command given")
	}

	// Subscribe before spawning so a child that dies instantly cannot
	// race the first wait.
	sigCh := make(chan os.Signal, signalBuffer)
	signal.Notify(sigCh, notifySignals()...)
	defer signal.Stop(sigCh)

	if err := s.spawn(argv); err != nil {
		return 1, err
	}

	for {
		if err := s.waitAndForward(sigCh); err != nil {
			return 1, err
		}
		if err := s.reapZombies(); err != nil {
			return 1, err
		}
		if code, ok := s.outcome.Code(); ok {
			s.trace("Child has exited, exiting")
			return code, nil
		}
	}
}

// Outcome is the supervised child's final exit status. It starts unset and
// is written at most once; later writes are ignored.
type Outcome struct {
	code int
	set  bool
}

// Record stores code unless an outcome was already recorded, and reports
// whether it was stored.
func (o *Outcome) Record(code int) bool {
	if o.set {
		return false
	}
	o.code = code
	o.set = true
	return true
}

// Code returns the recorded exit code, if any.
func (o *Outcome) Code() (int, bool) {
	return o.code, o.set
}
