//go:build amd64

package sysdecode

import (
	"syscall"
	"testing"
)

func TestArgumentsAmd64(t *testing.T) {
	regs := syscall.PtraceRegs{
		Orig_rax: 257,
		Rdi:      1,
		Rsi:      2,
		Rdx:      3,
		R10:      4,
		R8:       5,
		R9:       6,
		Rax:      ^uint64(3), // -4 as two's complement
	}

	if got, want := SyscallNumber(regs), uint64(257); got != want {
		t.Errorf("SyscallNumber() = %d, want %d", got, want)
	}

	args := Arguments(regs)
	want := [6]uint64{1, 2, 3, 4, 5, 6}
	if args != want {
		t.Errorf("Arguments() = %v, want %v", args, want)
	}

	if got, want := Result(regs), int64(-4); got != want {
		t.Errorf("Result() = %d, want %d", got, want)
	}
}
