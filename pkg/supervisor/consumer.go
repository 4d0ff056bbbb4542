package supervisor

import (
	"art/pkg/proctable"
	"art/pkg/syscallrecord"
)

// Consumer is the capability bundle the Supervisor Loop drives as it pumps
// events: one method per observable moment. A Consumer never mutates a
// tracee's registers or resumption decision — policy layers that do belong
// above this package, wrapping a Consumer rather than extending it.
//
// Embed NoOpConsumer to implement only the methods you care about; any
// member left unembedded silently no-ops.
type Consumer interface {
	// OnTracingStarted fires once, after the initial process has been
	// spawned and inserted into the Table, before the loop resumes it
	// for the first time.
	OnTracingStarted(initial *proctable.TracedProcess)

	// OnEvent fires once per classified wait-status, for every event
	// kind, in addition to any more specific hook below.
	OnEvent(event ProcessEvent)

	// OnSyscallEnter fires when a syscall-enter stop has been turned
	// into a Record with its arguments collected.
	OnSyscallEnter(rec *syscallrecord.Record)

	// OnSyscallExit fires when the matching syscall-exit stop has been
	// collected onto the same Record.
	OnSyscallExit(rec *syscallrecord.Record)

	// OnExiting fires on PTRACE_EVENT_EXIT, before the tracee has
	// actually exited.
	OnExiting(event ProcessEvent)

	// OnExit fires once the tracee has actually exited.
	OnExit(event ProcessEvent)
}

// NoOpConsumer implements Consumer with every method a no-op. Embed it in a
// concrete consumer type to pick and override only the hooks that matter.
type NoOpConsumer struct{}

func (NoOpConsumer) OnTracingStarted(*proctable.TracedProcess) {}
func (NoOpConsumer) OnEvent(ProcessEvent)                      {}
func (NoOpConsumer) OnSyscallEnter(*syscallrecord.Record)      {}
func (NoOpConsumer) OnSyscallExit(*syscallrecord.Record)       {}
func (NoOpConsumer) OnExiting(ProcessEvent)                    {}
func (NoOpConsumer) OnExit(ProcessEvent)                       {}

var _ Consumer = NoOpConsumer{}
