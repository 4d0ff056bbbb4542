// Package traceconsumer holds illustrative supervisor.Consumer
// implementations: a text renderer and an allow-list filter. Neither
// mutates a tracee — a Consumer in this codebase is strictly read-only;
// register-level intervention (skip/modify a syscall) belongs to a
// separate policy layer built on top of, not inside, this package.
package traceconsumer

import (
	"fmt"
	"io"

	"art/pkg/proctable"
	"art/pkg/supervisor"
	"art/pkg/syscallrecord"
)

// TextConsumer writes one line to Out for tracing start, each syscall
// enter and exit (in the "[pid] -> name(args)" / "[pid] <- name = result"
// shape), each Exiting event and each Exited event. Execution, Fork,
// Signal and Killed events are not printed.
type TextConsumer struct {
	supervisor.NoOpConsumer
	Out io.Writer
}

// NewTextConsumer returns a TextConsumer writing to out.
func NewTextConsumer(out io.Writer) *TextConsumer {
	return &TextConsumer{Out: out}
}

func (c *TextConsumer) OnTracingStarted(initial *proctable.TracedProcess) {
	fmt.Fprintf(c.Out, "[%-5d] tracing started\n", initial.PID)
}

func (c *TextConsumer) OnSyscallEnter(rec *syscallrecord.Record) {
	fmt.Fprintf(c.Out, "[%-5d] -> %s\n", rec.PID, rec.String())
}

func (c *TextConsumer) OnSyscallExit(rec *syscallrecord.Record) {
	fmt.Fprintf(c.Out, "[%-5d] <- %s = %d\n", rec.PID, rec.Name, rec.Result)
}

func (c *TextConsumer) OnExiting(event supervisor.ProcessEvent) {
	fmt.Fprintf(c.Out, "[%-5d] exiting, status %d\n", event.PID, event.ExitCode)
}

func (c *TextConsumer) OnExit(event supervisor.ProcessEvent) {
	fmt.Fprintf(c.Out, "[%-5d] exited, status %d\n", event.PID, event.ExitCode)
}

var _ supervisor.Consumer = (*TextConsumer)(nil)
