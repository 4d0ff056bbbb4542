// Package spawner launches the initial tracee: it resolves the target
// program on PATH, forks and requests tracing from the kernel in the
// child, and leaves the child halted on its first ptrace-visible stop so
// the Supervisor Loop can attach options before anything the target does
// is missed.
package spawner

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"art/pkg/tracerr"
)

// Config is the argument vector, environment, and output policy for a
// spawn.
type Config struct {
	// Argv is the program and its arguments; Argv[0] is resolved against
	// PATH unless it is absolute or contains a path separator.
	Argv []string
	// Env is the child's environment. A nil slice inherits the current
	// process's environment, matching os/exec's own default.
	Env []string
	// Quiet redirects the child's standard output and standard error to
	// the null device.
	Quiet bool

	// Stdin, Stdout, Stderr override the child's standard streams (e.g.
	// a pty slave for interactive mode). A nil field falls back to the
	// parent's own stream, except that Quiet still wins over Stdout and
	// Stderr.
	Stdin, Stdout, Stderr *os.File

	// Setsid and Setctty place the child in a new session and make its
	// controlling terminal the given pty slave; set together when
	// Stdin/Stdout/Stderr point at one.
	Setsid, Setctty bool
}

// Spawned is a running, traced-me child, halted on its first ptrace stop.
type Spawned struct {
	PID int
	cmd *exec.Cmd
}

// Spawn resolves cfg.Argv[0], forks, and requests kernel tracing in the
// child via SysProcAttr.Ptrace. The Go runtime's fork/exec trampoline
// issues PTRACE_TRACEME before the exec and only explicitly inherits
// Stdin/Stdout/Stderr — every other descriptor is opened CLOEXEC by the
// standard library's fork lock discipline, which satisfies the
// "close every inherited descriptor" step without a manual sweep.
//
// The kernel delivers a SIGTRAP stop to the child the moment the exec
// completes, because a PTRACE_TRACEME'd process always traps on its next
// exec; this is the synchronization point the parent's first wait relies
// on to install trace options before the child executes its first
// instruction.
//
// ptrace binds the tracer relationship to the specific OS thread that
// performed the fork: the caller must hold runtime.LockOSThread for the
// entire Spawn→Supervisor.Adopt→Supervisor.Run session on one goroutine,
// unlocking only after Run returns, or the Go scheduler may migrate the
// goroutine to a different OS thread on the next blocking syscall and
// every subsequent ptrace(2) call will fail with ESRCH.
func Spawn(cfg Config) (*Spawned, error) {
	if len(cfg.Argv) == 0 {
		return nil, fmt.Errorf("%w: empty argument vector", tracerr.ErrProgramNotFound)
	}

	resolved, err := resolveProgram(cfg.Argv[0])
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(resolved, cfg.Argv[1:]...)
	cmd.Env = cfg.Env
	cmd.SysProcAttr = &syscall.SysProcAttr{Ptrace: true, Setsid: cfg.Setsid, Setctty: cfg.Setctty}

	if cfg.Quiet {
		devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			cmd.Stdout = nil
			cmd.Stderr = nil
		} else {
			defer devNull.Close()
			cmd.Stdout = devNull
			cmd.Stderr = devNull
		}
	} else {
		cmd.Stdout = orDefault(cfg.Stdout, os.Stdout)
		cmd.Stderr = orDefault(cfg.Stderr, os.Stderr)
	}
	cmd.Stdin = orDefault(cfg.Stdin, os.Stdin)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", tracerr.ErrSpawnFailed, err)
	}

	return &Spawned{PID: cmd.Process.Pid, cmd: cmd}, nil
}

// resolveProgram implements the PATH-resolution half of the Spawn
// contract: a name containing a path separator (or already absolute) is
// used as-is; otherwise it is looked up on PATH, failing with
// ErrProgramNotFound.
func resolveProgram(name string) (string, error) {
	if containsPathSeparator(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("%w: %s: %v", tracerr.ErrProgramNotFound, name, err)
		}
		return name, nil
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", tracerr.ErrProgramNotFound, name, err)
	}
	return path, nil
}

func orDefault(f, fallback *os.File) *os.File {
	if f != nil {
		return f
	}
	return fallback
}

func containsPathSeparator(name string) bool {
	for _, r := range name {
		if r == '/' {
			return true
		}
	}
	return false
}

// Release detaches the Spawned handle's *exec.Cmd bookkeeping once the
// Supervisor Loop has taken over waiting on the pid directly — os/exec
// otherwise expects to be the sole caller of wait4 on its own child.
func (s *Spawned) Release() error {
	return s.cmd.Process.Release()
}
