package syscallrecord

import (
	"errors"
	"testing"
)

func TestStateString(t *testing.T) {
	if got, want := StateEnter.String(), "ENTER"; got != want {
		t.Errorf("StateEnter.String() = %q, want %q", got, want)
	}
	if got, want := StateExit.String(), "EXIT"; got != want {
		t.Errorf("StateExit.String() = %q, want %q", got, want)
	}
}

func TestRecordStringRendersParams(t *testing.T) {
	path := "/bin/ls"
	rec := &Record{
		Name: "open",
		Params: []Param{
			{Kind: KindString, Decoded: &path},
			{Kind: KindNumber, Raw: 0},
			{Kind: KindNumber, Raw: 0o644},
		},
	}
	got := rec.String()
	want := `open("/bin/ls", 0, 420)`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRecordStringNoParams(t *testing.T) {
	rec := &Record{Name: "getpid"}
	if got, want := rec.String(), "getpid()"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCollectResultRejectsDoubleCollection(t *testing.T) {
	rec := &Record{State: StateExit}
	if err := rec.CollectResult(); !errors.Is(err, ErrAlreadyExited) {
		t.Errorf("CollectResult() on an already-exited record = %v, want ErrAlreadyExited", err)
	}
}

func TestResultCollectedReflectsState(t *testing.T) {
	rec := &Record{}
	if rec.ResultCollected() {
		t.Error("ResultCollected() should be false before CollectResult runs")
	}
}

func TestCollectParamsIsIdempotentOnAlreadyCollected(t *testing.T) {
	rec := &Record{Params: []Param{{Kind: KindNumber, Raw: 1}}}
	if err := rec.CollectParams(); err != nil {
		t.Fatalf("CollectParams() on an already-collected record returned %v, want nil", err)
	}
	if len(rec.Params) != 1 {
		t.Errorf("CollectParams() mutated an already-collected Params slice: got %d entries", len(rec.Params))
	}
}
