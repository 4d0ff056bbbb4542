package proctable

import "testing"

func TestNewTracedProcessDefaults(t *testing.T) {
	tp := newTracedProcess(123, 0, false)
	if tp.InSyscall() {
		t.Error("a freshly constructed TracedProcess should not be InSyscall")
	}
	if tp.CurrentSyscall() != nil {
		t.Error("a freshly constructed TracedProcess should have no CurrentSyscall")
	}
	if tp.Stopped() {
		t.Error("a freshly constructed TracedProcess should not be Stopped")
	}
}

func TestMarkStopped(t *testing.T) {
	tp := newTracedProcess(1, 0, false)
	tp.MarkStopped()
	if !tp.Stopped() {
		t.Error("MarkStopped() should set Stopped()")
	}
}

func TestSuppressTrapRedelivery(t *testing.T) {
	if got := suppressTrapRedelivery(5); got != 0 {
		t.Errorf("suppressTrapRedelivery(SIGTRAP) = %d, want 0", got)
	}
	if got := suppressTrapRedelivery(9); got != 9 {
		t.Errorf("suppressTrapRedelivery(SIGKILL) = %d, want 9", got)
	}
	if got := suppressTrapRedelivery(0); got != 0 {
		t.Errorf("suppressTrapRedelivery(0) = %d, want 0", got)
	}
}

func TestDiscardSyscallOnEmptySlotIsNoOp(t *testing.T) {
	tp := newTracedProcess(1, 0, false)
	tp.DiscardSyscall()
	if tp.InSyscall() {
		t.Error("DiscardSyscall() on an already-empty slot should leave InSyscall() false")
	}
}

func TestPrepareSyscallExitOnEmptySlotFails(t *testing.T) {
	tp := newTracedProcess(1, 0, false)
	if _, err := tp.PrepareSyscallExit(); err != errSyscallSlotEmpty {
		t.Errorf("PrepareSyscallExit() on an empty slot = %v, want errSyscallSlotEmpty", err)
	}
}
