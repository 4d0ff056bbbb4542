// Package tracerr defines the error taxonomy shared by the tracing engine.
//
// Every class below is a sentinel; call sites wrap it with fmt.Errorf and
// %w so callers can still errors.Is against the class while getting a
// useful message.
package tracerr

import "errors"

var (
	// ErrProgramNotFound means the target executable could not be
	// resolved on PATH. Fatal; reported synchronously by the spawner.
	ErrProgramNotFound = errors.New("program not found")

	// ErrSpawnFailed means the child failed to set up tracing or exec.
	// Fatal for that target; reported via the initial wait.
	ErrSpawnFailed = errors.New("spawn failed")

	// ErrAlreadyTraced means an attempt was made to add a pid already in
	// the Traced-Process Table. Programming error; fatal.
	ErrAlreadyTraced = errors.New("process already traced")

	// ErrUnknownProcess means an operation referenced a pid not in the
	// Traced-Process Table. Programming error; fatal.
	ErrUnknownProcess = errors.New("unknown process")

	// ErrUnknownEvent means a wait-status did not match any known
	// pattern. Fatal for the current loop iteration; must be surfaced,
	// never swallowed.
	ErrUnknownEvent = errors.New("unknown wait status")

	// ErrParamReadFailed means tracee memory was unreadable or
	// encoding-invalid at a string parameter. Recovered locally: the
	// SyscallParam is kept with its raw value, rendering falls back to
	// numeric form.
	ErrParamReadFailed = errors.New("syscall parameter read failed")

	// ErrKernelOperationFailed means the underlying ptrace primitive
	// returned an error not otherwise classified. Surfaced with the
	// originating pid.
	ErrKernelOperationFailed = errors.New("kernel trace operation failed")

	// ErrStringReadError means the tracee's address space was
	// unreadable at a given address.
	ErrStringReadError = errors.New("tracee string read error")

	// ErrStringDecodeError means a caller-requested text decoding of a
	// successfully-read byte string did not succeed.
	ErrStringDecodeError = errors.New("tracee string decode error")
)
