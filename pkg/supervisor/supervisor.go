// Package supervisor runs the ptrace wait loop: it pumps wait-status
// events, classifies them into a ProcessEvent, maintains the
// proctable.Table of live tracees, drives syscallrecord.Record collection
// across the ENTER/EXIT pair, and dispatches every observable moment to a
// Consumer. The loop owns all resumption decisions; a Consumer is read-only.
package supervisor

import (
	"fmt"
	"syscall"

	"github.com/sirupsen/logrus"

	"art/pkg/proctable"
	"art/pkg/tracerr"
)

// Config selects the ptrace options the Supervisor Loop requests on the
// initial tracee, and is inherited by every subsequently discovered child.
type Config struct {
	// ForkEnabled requests PTRACE_O_TRACEFORK | TRACEVFORK | TRACECLONE:
	// children are auto-attached and reported as Fork events instead of
	// running untraced.
	ForkEnabled bool
	// ExecEnabled requests PTRACE_O_TRACEEXEC | TRACEEXIT: a successful
	// execve is reported as an unambiguous Execution event rather than a
	// plain syscall-exit stop, and a tracee about to exit is reported as
	// an Exiting event before its final Exited event.
	ExecEnabled bool
	// SysgoodEnabled requests PTRACE_O_TRACESYSGOOD: syscall stops carry
	// the 0x80 bit, letting the loop tell them apart from ordinary
	// signal-delivery stops without consulting TrapCause.
	SysgoodEnabled bool
}

func (c Config) optionsMask() int {
	mask := 0
	if c.ForkEnabled {
		mask |= syscall.PTRACE_O_TRACEFORK | syscall.PTRACE_O_TRACEVFORK | syscall.PTRACE_O_TRACECLONE
	}
	if c.ExecEnabled {
		mask |= syscall.PTRACE_O_TRACEEXEC | syscall.PTRACE_O_TRACEEXIT
	}
	if c.SysgoodEnabled {
		mask |= syscall.PTRACE_O_TRACESYSGOOD
	}
	return mask
}

// Supervisor owns the Traced-Process Table and runs the wait loop.
type Supervisor struct {
	cfg        Config
	table      *proctable.Table
	log        logrus.FieldLogger
	initialPID int
}

// spawnFailureExitCode is the exit status a failed exec in the traced
// child conventionally surfaces as, once the shell-exec-failure path in
// the Spawner contract runs.
const spawnFailureExitCode = 255

// New returns a Supervisor configured per cfg. A nil logger defaults to
// logrus's standard logger.
func New(cfg Config, log logrus.FieldLogger) *Supervisor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Supervisor{cfg: cfg, table: proctable.New(log), log: log}
}

// Table exposes the underlying Traced-Process Table, mainly for tests and
// diagnostic front-ends.
func (s *Supervisor) Table() *proctable.Table {
	return s.table
}

// Adopt inserts pid (already stopped under PTRACE_TRACEME, per the Spawner
// contract) as the initial tracee, applies the configured options, and
// notifies consumer.OnTracingStarted. Run then drives the loop starting
// from this tracee.
func (s *Supervisor) Adopt(pid int, consumer Consumer) (*proctable.TracedProcess, error) {
	var ws syscall.WaitStatus
	if _, err := syscall.Wait4(pid, &ws, 0, nil); err != nil {
		return nil, fmt.Errorf("%w: initial wait4 pid %d: %v", tracerr.ErrKernelOperationFailed, pid, err)
	}

	tp := s.table.Insert(pid, 0, false)
	tp.MarkTraceMeAttached()
	tp.MarkStopped()
	if err := tp.SetOptions(s.cfg.optionsMask()); err != nil {
		return nil, err
	}
	s.initialPID = pid
	consumer.OnTracingStarted(tp)
	return tp, nil
}

// Run pumps wait-status events until the Table is empty. It resumes the
// initial tracee (previously registered via Adopt) into syscall-stop mode
// and does not return until every tracee — the initial one and every
// fork/clone descendant — has exited or been killed, or a control-flow
// error (wait, resume, option-set) makes continuing impossible.
//
// On any control-flow error or panic escaping a Consumer hook, Run detaches
// every remaining tracee before returning.
func (s *Supervisor) Run(initial *proctable.TracedProcess, consumer Consumer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.table.Quit()
			err = fmt.Errorf("supervisor: consumer panicked: %v", r)
		}
	}()

	if err := initial.Syscall(0); err != nil {
		s.table.Quit()
		return err
	}

	for !s.table.IsEmpty() {
		var ws syscall.WaitStatus
		pid, waitErr := syscall.Wait4(-1, &ws, 0, nil)
		if waitErr != nil {
			if waitErr == syscall.EINTR {
				continue
			}
			if waitErr == syscall.ECHILD {
				break
			}
			err := fmt.Errorf("%w: wait4: %v", tracerr.ErrKernelOperationFailed, waitErr)
			s.log.WithError(err).Error("fatal error in supervisor loop, detaching all tracees")
			s.table.Quit()
			return err
		}

		event, classifyErr := ClassifyEvent(pid, ws)
		if classifyErr != nil {
			s.log.WithError(classifyErr).WithField("pid", pid).Error("fatal error in supervisor loop, detaching all tracees")
			s.table.Quit()
			return classifyErr
		}
		consumer.OnEvent(event)

		if event.Kind == EventExited && event.PID == s.initialPID && event.ExitCode == spawnFailureExitCode {
			s.log.WithField("pid", event.PID).Warn("initial tracee exited 255, likely an exec failure in the child")
		}

		if err := s.dispatch(event, consumer); err != nil {
			s.log.WithError(err).WithField("pid", event.PID).Error("fatal error in supervisor loop, detaching all tracees")
			s.table.Quit()
			return err
		}
	}

	return nil
}

// Quit tears down every remaining tracee, detaching each in reverse
// insertion order. Safe to call after Run has already returned.
func (s *Supervisor) Quit() {
	s.table.Quit()
}

func (s *Supervisor) dispatch(event ProcessEvent, consumer Consumer) error {
	switch event.Kind {
	case EventSignal:
		return s.dispatchSignal(event, consumer)

	case EventFork:
		return s.dispatchFork(event)

	case EventExecution:
		if tp, ok := s.table.Get(event.PID); ok {
			tp.DiscardSyscall()
			return tp.Syscall(0)
		}
		return fmt.Errorf("%w: execution event for pid %d", tracerr.ErrUnknownProcess, event.PID)

	case EventExiting:
		consumer.OnExiting(event)
		if tp, ok := s.table.Get(event.PID); ok {
			return tp.Cont(0)
		}
		return fmt.Errorf("%w: exiting event for pid %d", tracerr.ErrUnknownProcess, event.PID)

	case EventExited:
		consumer.OnExit(event)
		return s.table.Remove(event.PID)

	case EventKilled:
		return s.table.Remove(event.PID)

	default:
		return fmt.Errorf("%w: unhandled event kind for pid %d", tracerr.ErrUnknownEvent, event.PID)
	}
}

func (s *Supervisor) dispatchSignal(event ProcessEvent, consumer Consumer) error {
	tp, ok := s.table.Get(event.PID)
	if !ok {
		// STOP-before-FORK race: the kernel can report the child's own
		// initial stop before the parent's Fork event names it. Adopt
		// it here under an unknown parent; the Fork event, when it
		// eventually arrives, finds the pid already present and is a
		// no-op re-insert.
		if event.Signum == syscall.SIGSTOP {
			tp = s.table.Insert(event.PID, 0, false)
			tp.MarkTraceMeAttached()
			if err := tp.SetOptions(s.cfg.optionsMask()); err != nil {
				return err
			}
			return tp.Syscall(0)
		}
		return fmt.Errorf("%w: signal event for pid %d", tracerr.ErrUnknownProcess, event.PID)
	}

	if event.Signum == syscall.SIGSTOP && !event.IsSyscallTrap {
		// The initial stop of a newly auto-attached child whose parent's
		// Fork event has already been handled (the opposite order is
		// handled in the not-found branch above). Swallow it rather than
		// forwarding a real SIGSTOP.
		return tp.Syscall(0)
	}

	if event.IsSyscallTrap {
		if !tp.InSyscall() {
			rec, err := tp.PrepareSyscallEnter()
			if err != nil {
				return err
			}
			if err := rec.CollectParams(); err != nil {
				return err
			}
			consumer.OnSyscallEnter(rec)
		} else {
			rec, err := tp.PrepareSyscallExit()
			if err != nil {
				return err
			}
			if err := rec.CollectResult(); err != nil {
				return err
			}
			consumer.OnSyscallExit(rec)
		}
		return tp.Syscall(0)
	}

	return tp.Syscall(int(event.Signum))
}

func (s *Supervisor) dispatchFork(event ProcessEvent) error {
	parent, ok := s.table.Get(event.PID)
	if !ok {
		return fmt.Errorf("%w: fork event for pid %d", tracerr.ErrUnknownProcess, event.PID)
	}

	if _, alreadyKnown := s.table.Get(event.ChildPID); !alreadyKnown {
		// Ordinary ordering: this Fork event is the child's first
		// appearance. Insert it, option-set it, and resume it — it is
		// still sitting on its own initial ptrace-stop.
		child := s.table.Insert(event.ChildPID, event.PID, true)
		child.MarkTraceMeAttached()
		if err := child.SetOptions(s.cfg.optionsMask()); err != nil {
			return err
		}
		if err := child.Syscall(0); err != nil {
			return err
		}
	}
	// Else: STOP-before-FORK race. dispatchSignal already inserted,
	// option-set, and resumed the child off its own initial SIGSTOP; it
	// is now running, not ptrace-stopped, so neither SetOptions nor a
	// resume call is safe to repeat here.

	return parent.Syscall(0)
}
