//go:build 386

package sysdecode

import (
	"syscall"
	"testing"
)

func TestArguments386(t *testing.T) {
	regs := syscall.PtraceRegs{
		Orig_eax: 295, // openat
		Ebx:      1,
		Ecx:      2,
		Edx:      3,
		Esi:      4,
		Edi:      5,
		Ebp:      6,
		Eax:      -2,
	}

	if got, want := SyscallNumber(regs), uint64(295); got != want {
		t.Errorf("SyscallNumber() = %d, want %d", got, want)
	}

	args := Arguments(regs)
	want := [6]uint64{1, 2, 3, 4, 5, 6}
	if args != want {
		t.Errorf("Arguments() = %v, want %v", args, want)
	}

	if got, want := Result(regs), int64(-2); got != want {
		t.Errorf("Result() = %d, want %d", got, want)
	}
}
