package traceconsumer

import (
	"testing"

	"art/pkg/supervisor"
	"art/pkg/syscallrecord"
)

type recordingConsumer struct {
	supervisor.NoOpConsumer
	entered []string
	exited  []string
}

func (r *recordingConsumer) OnSyscallEnter(rec *syscallrecord.Record) {
	r.entered = append(r.entered, rec.Name)
}

func (r *recordingConsumer) OnSyscallExit(rec *syscallrecord.Record) {
	r.exited = append(r.exited, rec.Name)
}

func TestFilteringConsumerEmptyAllowListPassesEverything(t *testing.T) {
	rec := &recordingConsumer{}
	f := NewFilteringConsumer(rec, nil)

	f.OnSyscallEnter(&syscallrecord.Record{Name: "open"})
	f.OnSyscallEnter(&syscallrecord.Record{Name: "write"})

	if len(rec.entered) != 2 {
		t.Errorf("entered = %v, want both syscalls forwarded", rec.entered)
	}
}

func TestFilteringConsumerOnlyForwardsAllowed(t *testing.T) {
	rec := &recordingConsumer{}
	f := NewFilteringConsumer(rec, []string{"open"})

	f.OnSyscallEnter(&syscallrecord.Record{Name: "open"})
	f.OnSyscallEnter(&syscallrecord.Record{Name: "write"})
	f.OnSyscallExit(&syscallrecord.Record{Name: "open"})

	if len(rec.entered) != 1 || rec.entered[0] != "open" {
		t.Errorf("entered = %v, want only [open]", rec.entered)
	}
	if len(rec.exited) != 1 || rec.exited[0] != "open" {
		t.Errorf("exited = %v, want only [open]", rec.exited)
	}
}

var _ supervisor.Consumer = (*recordingConsumer)(nil)
