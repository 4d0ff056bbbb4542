package traceconsumer

import (
	"art/pkg/proctable"
	"art/pkg/supervisor"
	"art/pkg/syscallrecord"
)

// FilteringConsumer wraps another Consumer and only forwards
// OnSyscallEnter/OnSyscallExit for syscalls named in its allow-list; every
// other hook passes through unconditionally. An empty allow-list passes
// everything, matching the underlying per-process traceSyscalls whitelist
// this is grounded on.
type FilteringConsumer struct {
	Inner   supervisor.Consumer
	allowed map[string]bool
}

// NewFilteringConsumer wraps inner, forwarding syscall-enter/exit hooks
// only for names in allow (pass no names to allow everything).
func NewFilteringConsumer(inner supervisor.Consumer, allow []string) *FilteringConsumer {
	var allowed map[string]bool
	if len(allow) > 0 {
		allowed = make(map[string]bool, len(allow))
		for _, name := range allow {
			allowed[name] = true
		}
	}
	return &FilteringConsumer{Inner: inner, allowed: allowed}
}

func (f *FilteringConsumer) shouldForward(name string) bool {
	if len(f.allowed) == 0 {
		return true
	}
	return f.allowed[name]
}

func (f *FilteringConsumer) OnTracingStarted(initial *proctable.TracedProcess) {
	f.Inner.OnTracingStarted(initial)
}

func (f *FilteringConsumer) OnEvent(event supervisor.ProcessEvent) {
	f.Inner.OnEvent(event)
}

func (f *FilteringConsumer) OnSyscallEnter(rec *syscallrecord.Record) {
	if f.shouldForward(rec.Name) {
		f.Inner.OnSyscallEnter(rec)
	}
}

func (f *FilteringConsumer) OnSyscallExit(rec *syscallrecord.Record) {
	if f.shouldForward(rec.Name) {
		f.Inner.OnSyscallExit(rec)
	}
}

func (f *FilteringConsumer) OnExiting(event supervisor.ProcessEvent) {
	f.Inner.OnExiting(event)
}

func (f *FilteringConsumer) OnExit(event supervisor.ProcessEvent) {
	f.Inner.OnExit(event)
}

var _ supervisor.Consumer = (*FilteringConsumer)(nil)
