//go:build arm64

package sysdecode

import (
	"syscall"
	"testing"
)

func TestArgumentsArm64(t *testing.T) {
	var regs syscall.PtraceRegs
	regs.Regs[8] = 56 // openat
	regs.Regs[0] = 10
	regs.Regs[1] = 20
	regs.Regs[2] = 30
	regs.Regs[3] = 40
	regs.Regs[4] = 50
	regs.Regs[5] = 60

	if got, want := SyscallNumber(regs), uint64(56); got != want {
		t.Errorf("SyscallNumber() = %d, want %d", got, want)
	}

	args := Arguments(regs)
	want := [6]uint64{10, 20, 30, 40, 50, 60}
	if args != want {
		t.Errorf("Arguments() = %v, want %v", args, want)
	}

	regs.Regs[0] = ^uint64(0) // -1
	if got, want := Result(regs), int64(-1); got != want {
		t.Errorf("Result() = %d, want %d", got, want)
	}
}
