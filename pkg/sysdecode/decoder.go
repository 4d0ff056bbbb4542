// Package sysdecode is the architecture-specific syscall decoder: it turns
// a stopped tracee's register file into a syscall number, six raw argument
// words, and a result word, and reads NUL-terminated strings out of the
// tracee's address space. It also owns the two static tables (number→name,
// name→prototype) that give the raw numbers symbolic meaning.
package sysdecode

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"

	"art/pkg/tracerr"
)

// Registers is the full general-purpose register snapshot for the host
// architecture.
type Registers = syscall.PtraceRegs

// Prototype describes one syscall parameter: its C type spelling and its
// name. Parameter names are meaningful — "filename", "pathname", "oldname"
// and "newname" are the dereference hints a STRING-kind classification is
// keyed on.
type Prototype struct {
	Type string
	Name string
}

// unknownPrototype is returned by PrototypeOf for a name absent from the
// static table.
var unknownPrototype = []Prototype{{Type: "?", Name: "?"}}

// UnknownName is the sentinel returned by NameOf for a syscall number
// absent from the static table.
const UnknownName = "unknown"

// ReadRegisters reads the full register snapshot for a stopped pid.
func ReadRegisters(pid int) (Registers, error) {
	var regs Registers
	if err := syscall.PtraceGetRegs(pid, &regs); err != nil {
		return regs, fmt.Errorf("%w: getregs pid %d: %v", tracerr.ErrKernelOperationFailed, pid, err)
	}
	return regs, nil
}

// ReadSyscallNumber reads the current syscall number directly, without the
// caller needing a register snapshot first.
func ReadSyscallNumber(pid int) (uint64, error) {
	regs, err := ReadRegisters(pid)
	if err != nil {
		return 0, err
	}
	return SyscallNumber(regs), nil
}

// NameOf looks up a syscall number in the static number→name table.
// Returns UnknownName when the number is absent.
func NameOf(num uint64) string {
	if name, ok := numberToName[num]; ok {
		return name
	}
	return UnknownName
}

// PrototypeOf looks up a syscall's ordered parameter prototype in the
// static name→prototype table. Returns a single ("?", "?") entry when the
// name is absent.
func PrototypeOf(name string) []Prototype {
	if proto, ok := nameToPrototype[name]; ok {
		return proto
	}
	return unknownPrototype
}

const wordSize = 8

// ReadCString reads a NUL-terminated byte string from the tracee's address
// space starting at addr, returning the bytes up to but not including the
// terminator. It tries a single batched process_vm_readv first (one page,
// extending to a second page if the terminator has not been found) and
// falls back to PTRACE_PEEKDATA word reads when process_vm_readv is
// refused — e.g. under a restrictive yama ptrace_scope, or across a
// namespace boundary the kernel does not allow process_vm_readv to cross.
func ReadCString(pid int, addr uint64) ([]byte, error) {
	if addr == 0 {
		return nil, nil
	}
	if b, err := readCStringVM(pid, addr); err == nil {
		return b, nil
	}
	return readCStringPeek(pid, addr)
}

func readCStringVM(pid int, addr uint64) ([]byte, error) {
	pageSize := uint64(unix.Getpagesize())
	pageAddr := addr &^ (pageSize - 1)
	firstReadSize := pageAddr + pageSize - addr
	maxReadSize := firstReadSize + pageSize

	for size := firstReadSize; size <= maxReadSize; size += pageSize {
		buf := make([]byte, size)
		local := []unix.Iovec{{Base: &buf[0]}}
		local[0].SetLen(len(buf))
		remote := []unix.RemoteIovec{{Base: uintptr(addr), Len: len(buf)}}
		if _, err := unix.ProcessVMReadv(pid, local, remote, 0); err != nil {
			return nil, fmt.Errorf("%w: process_vm_readv pid %d addr %#x: %v", tracerr.ErrStringReadError, pid, addr, err)
		}
		if i := indexZero(buf); i >= 0 {
			return buf[:i], nil
		}
	}
	return nil, fmt.Errorf("%w: process_vm_readv pid %d addr %#x: string too long", tracerr.ErrStringReadError, pid, addr)
}

func readCStringPeek(pid int, addr uint64) ([]byte, error) {
	var out []byte
	word := make([]byte, wordSize)
	for i := uint64(0); ; i += wordSize {
		n, err := syscall.PtracePeekData(pid, uintptr(addr+i), word)
		if err != nil || n != len(word) {
			return nil, fmt.Errorf("%w: peekdata pid %d addr %#x: %v", tracerr.ErrStringReadError, pid, addr+i, err)
		}
		if j := indexZero(word); j >= 0 {
			out = append(out, word[:j]...)
			return out, nil
		}
		out = append(out, word...)
	}
}

func indexZero(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
