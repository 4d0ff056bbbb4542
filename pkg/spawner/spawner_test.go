package spawner

import (
	"errors"
	"runtime"
	"syscall"
	"testing"

	"art/pkg/tracerr"
)

func TestResolveProgramOnPath(t *testing.T) {
	path, err := resolveProgram("ls")
	if err != nil {
		t.Fatalf("resolveProgram(ls) error = %v, want a resolved path (is ls on PATH in this environment?)", err)
	}
	if path == "" {
		t.Error("resolveProgram(ls) returned an empty path")
	}
}

func TestResolveProgramNotFound(t *testing.T) {
	_, err := resolveProgram("definitely-not-a-real-binary-xyz")
	if !errors.Is(err, tracerr.ErrProgramNotFound) {
		t.Errorf("resolveProgram(missing) = %v, want ErrProgramNotFound", err)
	}
}

func TestResolveProgramWithSeparatorMissing(t *testing.T) {
	_, err := resolveProgram("./no/such/path/binary")
	if !errors.Is(err, tracerr.ErrProgramNotFound) {
		t.Errorf("resolveProgram(missing path) = %v, want ErrProgramNotFound", err)
	}
}

func TestSpawnRejectsEmptyArgv(t *testing.T) {
	_, err := Spawn(Config{Argv: nil})
	if !errors.Is(err, tracerr.ErrProgramNotFound) {
		t.Errorf("Spawn(empty argv) = %v, want ErrProgramNotFound", err)
	}
}

func TestSpawnStartsTracedProcessHaltedOnExec(t *testing.T) {
	// ptrace binds the tracer to the OS thread that performed the fork;
	// this test drives that fork, the wait, and the detach all on one
	// locked thread, the same contract Spawn's doc comment asks of a
	// real caller.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	spawned, err := Spawn(Config{Argv: []string{"/bin/true"}, Quiet: true})
	if err != nil {
		t.Skipf("could not spawn /bin/true (sandboxed test environment?): %v", err)
	}
	defer spawned.Release()

	var ws syscall.WaitStatus
	if _, err := syscall.Wait4(spawned.PID, &ws, 0, nil); err != nil {
		t.Fatalf("wait4 error = %v", err)
	}
	if !ws.Stopped() || ws.StopSignal() != syscall.SIGTRAP {
		t.Fatalf("wait status = %v, want a SIGTRAP stop from the post-exec trap", ws)
	}

	if err := syscall.PtraceDetach(spawned.PID); err != nil {
		t.Fatalf("PtraceDetach error = %v", err)
	}
}

func TestContainsPathSeparator(t *testing.T) {
	cases := map[string]bool{
		"ls":        false,
		"./ls":      true,
		"/bin/ls":   true,
		"a/b":       true,
		"plainword": false,
	}
	for in, want := range cases {
		if got := containsPathSeparator(in); got != want {
			t.Errorf("containsPathSeparator(%q) = %v, want %v", in, got, want)
		}
	}
}
