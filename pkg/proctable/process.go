// Package proctable holds the Traced-Process Table: an insertion-ordered
// mapping from pid to TracedProcess, and the TracedProcess record itself
// (trace options, attach/stop state, and the currently in-flight
// syscallrecord.Record, if any).
package proctable

import (
	"fmt"
	"syscall"

	"art/pkg/syscallrecord"
	"art/pkg/tracerr"
)

// TracedProcess is one process under trace. Its parent is referenced only
// by pid (a weak back-reference): the parent may be removed from the
// Table independently without invalidating this record.
type TracedProcess struct {
	PID      int
	ParentPID int
	HasParent bool

	attached bool
	stopped  bool
	options  int

	syscall *syscallrecord.Record
}

func newTracedProcess(pid int, parentPID int, hasParent bool) *TracedProcess {
	return &TracedProcess{PID: pid, ParentPID: parentPID, HasParent: hasParent}
}

// Attach requests the kernel tracing relationship, idempotent against the
// attached flag: the underlying PTRACE_ATTACH call only happens on the
// false->true edge.
func (p *TracedProcess) Attach() error {
	if p.attached {
		return nil
	}
	if err := syscall.PtraceAttach(p.PID); err != nil {
		return fmt.Errorf("%w: attach pid %d: %v", tracerr.ErrKernelOperationFailed, p.PID, err)
	}
	p.attached = true
	return nil
}

// MarkTraceMeAttached records the tracing relationship as already
// established by the kernel — via the tracee's own PTRACE_TRACEME, or via
// auto-attach under PTRACE_O_TRACEFORK/VFORK/CLONE — without issuing a
// PTRACE_ATTACH call, which would fail against a relationship that already
// exists.
func (p *TracedProcess) MarkTraceMeAttached() {
	p.attached = true
}

// Detach releases the kernel tracing relationship, idempotent against the
// attached flag.
func (p *TracedProcess) Detach() error {
	if !p.attached {
		return nil
	}
	if err := syscall.PtraceDetach(p.PID); err != nil {
		return fmt.Errorf("%w: detach pid %d: %v", tracerr.ErrKernelOperationFailed, p.PID, err)
	}
	p.attached = false
	return nil
}

// SetOptions forwards mask — a combination of trace-fork, trace-vfork,
// trace-exec, trace-exit and sysgood bits — to the kernel's set-options
// primitive.
func (p *TracedProcess) SetOptions(mask int) error {
	if err := syscall.PtraceSetOptions(p.PID, mask); err != nil {
		return fmt.Errorf("%w: setoptions pid %d: %v", tracerr.ErrKernelOperationFailed, p.PID, err)
	}
	p.options = mask
	return nil
}

// Options returns the last mask passed to SetOptions.
func (p *TracedProcess) Options() int {
	return p.options
}

// suppressTrapRedelivery substitutes 0 for a pending SIGTRAP: re-delivering
// the trap that just stopped the tracee would otherwise produce a second,
// spurious trap on resume.
func suppressTrapRedelivery(sig int) int {
	if sig == int(syscall.SIGTRAP) {
		return 0
	}
	return sig
}

// Syscall resumes the tracee until the next syscall stop, delivering sig
// (or none, with 0) to the tracee as it resumes.
func (p *TracedProcess) Syscall(sig int) error {
	sig = suppressTrapRedelivery(sig)
	if err := syscall.PtraceSyscall(p.PID, sig); err != nil {
		return fmt.Errorf("%w: ptrace_syscall pid %d: %v", tracerr.ErrKernelOperationFailed, p.PID, err)
	}
	p.stopped = false
	return nil
}

// Cont resumes the tracee without requesting syscall stops.
func (p *TracedProcess) Cont(sig int) error {
	sig = suppressTrapRedelivery(sig)
	if err := syscall.PtraceCont(p.PID, sig); err != nil {
		return fmt.Errorf("%w: ptrace_cont pid %d: %v", tracerr.ErrKernelOperationFailed, p.PID, err)
	}
	p.stopped = false
	return nil
}

// Stopped reports whether the process is currently believed to be
// ptrace-stopped.
func (p *TracedProcess) Stopped() bool {
	return p.stopped
}

// MarkStopped records that the tracee is currently stopped. Supervisor.Adopt
// calls it for the initial tracee's first stop; the wait loop in
// Supervisor.Run does not call it for later stops, so Stopped() stays false
// after the first resume.
func (p *TracedProcess) MarkStopped() {
	p.stopped = true
}

// InSyscall reports whether a syscall is currently in flight for this
// process — i.e. whether the supervisor has seen the ENTER stop but not
// yet the matching EXIT stop.
func (p *TracedProcess) InSyscall() bool {
	return p.syscall != nil
}

// CurrentSyscall returns the in-flight Syscall Record, if any.
func (p *TracedProcess) CurrentSyscall() *syscallrecord.Record {
	return p.syscall
}

// errSyscallSlotBusy / errSyscallSlotEmpty are local programming-error
// signals: PrepareSyscallEnter/Exit are only ever called by the Supervisor
// Loop at the point its own state machine guarantees the slot's state, so
// these should never surface outside of a test harness misusing the API.
var (
	errSyscallSlotBusy  = fmt.Errorf("proctable: syscall slot already occupied")
	errSyscallSlotEmpty = fmt.Errorf("proctable: syscall slot is empty")
)

// PrepareSyscallEnter creates a new Syscall Record for the current
// syscall-enter stop and attaches it to the process. The slot must be
// empty.
func (p *TracedProcess) PrepareSyscallEnter() (*syscallrecord.Record, error) {
	if p.syscall != nil {
		return nil, errSyscallSlotBusy
	}
	rec, err := syscallrecord.New(p.PID)
	if err != nil {
		return nil, err
	}
	p.syscall = rec
	return rec, nil
}

// PrepareSyscallExit detaches and returns the current Syscall Record. The
// slot must be non-empty.
func (p *TracedProcess) PrepareSyscallExit() (*syscallrecord.Record, error) {
	if p.syscall == nil {
		return nil, errSyscallSlotEmpty
	}
	rec := p.syscall
	p.syscall = nil
	return rec, nil
}

// DiscardSyscall drops any in-flight Syscall Record without requiring it
// to have reached EXIT — used when an execve discards the address space
// the in-flight record's string arguments were read from.
func (p *TracedProcess) DiscardSyscall() {
	p.syscall = nil
}
