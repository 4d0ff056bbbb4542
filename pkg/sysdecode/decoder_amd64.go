//go:build amd64

package sysdecode

// SyscallNumber reads the in-flight syscall number from ORIG_RAX.
func SyscallNumber(regs Registers) uint64 {
	return regs.Orig_rax
}

// Arguments extracts the six syscall argument words from (RDI, RSI, RDX,
// R10, R8, R9), per the x86-64 syscall calling convention.
func Arguments(regs Registers) [6]uint64 {
	return [6]uint64{
		regs.Rdi,
		regs.Rsi,
		regs.Rdx,
		regs.R10,
		regs.R8,
		regs.R9,
	}
}

// Result reads the return-value register (RAX), valid only at EXIT.
func Result(regs Registers) int64 {
	return int64(regs.Rax)
}
