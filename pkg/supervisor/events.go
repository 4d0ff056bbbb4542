package supervisor

import (
	"fmt"
	"syscall"

	"art/pkg/tracerr"
)

// EventKind tags a ProcessEvent's variant. The taxonomy is closed: every
// wait-status classifies into exactly one of these, or ClassifyEvent fails
// with tracerr.ErrUnknownEvent.
type EventKind int

const (
	// EventExecution: the tracee successfully exec'd.
	EventExecution EventKind = iota
	// EventFork: the tracee forked, vforked, or cloned a new process.
	EventFork
	// EventSignal: the tracee stopped on a signal — either a syscall
	// trap (IsSyscallTrap) or a real signal to forward.
	EventSignal
	// EventExiting: the tracee has entered PTRACE_EVENT_EXIT, carrying
	// its eventual exit code, but has not yet actually exited.
	EventExiting
	// EventExited: the tracee terminated normally.
	EventExited
	// EventKilled: the tracee was terminated by a signal.
	EventKilled
)

func (k EventKind) String() string {
	switch k {
	case EventExecution:
		return "Execution"
	case EventFork:
		return "Fork"
	case EventSignal:
		return "Signal"
	case EventExiting:
		return "Exiting"
	case EventExited:
		return "Exited"
	case EventKilled:
		return "Killed"
	default:
		return "Unknown"
	}
}

// ProcessEvent is the tagged variant the Supervisor Loop produces once per
// wait cycle: Execution(pid) · Fork(pid, child_pid) ·
// Signal(pid, signum, is_syscall_trap) · Exiting(pid, status) ·
// Exited(pid, code) · Killed(pid, signum). Only the fields relevant to Kind
// are meaningful.
type ProcessEvent struct {
	Kind EventKind
	PID  int

	ChildPID int // Fork

	Signum        syscall.Signal // Signal, Killed
	IsSyscallTrap bool           // Signal: the 0x80 sysgood marker was set

	ExitCode int // Exiting, Exited
}

const sysgoodBit = syscall.Signal(0x80)

// ClassifyEvent turns a (pid, wait-status) pair into a ProcessEvent by
// inspecting the standard status predicates in order: Exited, Killed,
// Stopped (subdividing on the ptrace event code carried in bits 16..23
// when the stop signal is a trap), else ErrUnknownEvent.
func ClassifyEvent(pid int, ws syscall.WaitStatus) (ProcessEvent, error) {
	switch {
	case ws.Exited():
		return ProcessEvent{Kind: EventExited, PID: pid, ExitCode: ws.ExitStatus()}, nil

	case ws.Signaled():
		return ProcessEvent{Kind: EventKilled, PID: pid, Signum: ws.Signal()}, nil

	case ws.Stopped():
		return classifyStopped(pid, ws)

	default:
		return ProcessEvent{}, fmt.Errorf("%w: pid %d status %#x", tracerr.ErrUnknownEvent, pid, uint32(ws))
	}
}

func classifyStopped(pid int, ws syscall.WaitStatus) (ProcessEvent, error) {
	stopSig := ws.StopSignal()
	isSyscallTrap := stopSig&sysgoodBit != 0
	plainSig := stopSig &^ sysgoodBit

	if plainSig != syscall.SIGTRAP {
		return ProcessEvent{Kind: EventSignal, PID: pid, Signum: plainSig, IsSyscallTrap: isSyscallTrap}, nil
	}

	switch ws.TrapCause() {
	case syscall.PTRACE_EVENT_EXEC:
		return ProcessEvent{Kind: EventExecution, PID: pid}, nil

	case syscall.PTRACE_EVENT_FORK, syscall.PTRACE_EVENT_VFORK, syscall.PTRACE_EVENT_CLONE:
		child, err := syscall.PtraceGetEventMsg(pid)
		if err != nil {
			return ProcessEvent{}, fmt.Errorf("%w: geteventmsg (fork) pid %d: %v", tracerr.ErrKernelOperationFailed, pid, err)
		}
		return ProcessEvent{Kind: EventFork, PID: pid, ChildPID: int(child)}, nil

	case syscall.PTRACE_EVENT_EXIT:
		code, err := syscall.PtraceGetEventMsg(pid)
		if err != nil {
			return ProcessEvent{}, fmt.Errorf("%w: geteventmsg (exit) pid %d: %v", tracerr.ErrKernelOperationFailed, pid, err)
		}
		// The event message is the pending wait status, not the bare
		// exit code; decode it the same way an Exited status is decoded.
		return ProcessEvent{Kind: EventExiting, PID: pid, ExitCode: syscall.WaitStatus(code).ExitStatus()}, nil

	default:
		return ProcessEvent{Kind: EventSignal, PID: pid, Signum: plainSig, IsSyscallTrap: isSyscallTrap}, nil
	}
}
