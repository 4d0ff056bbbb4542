package proctable

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"art/pkg/tracerr"
)

// Test pids here are never actually attached (Attach/MarkTraceMeAttached is
// never called), so Detach is always a no-op and these tests drive pure
// Table bookkeeping without touching the kernel.

func newTestTable() *Table {
	log := logrus.New()
	log.SetOutput(discardWriter{})
	return New(log)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestInsertIsIdempotent(t *testing.T) {
	tbl := newTestTable()
	first := tbl.Insert(100, 0, false)
	second := tbl.Insert(100, 0, false)
	if first != second {
		t.Error("Insert on a duplicate pid should return the existing TracedProcess")
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestAddRejectsDuplicate(t *testing.T) {
	tbl := newTestTable()
	if _, err := tbl.Add(200, 0, false); err != nil {
		t.Fatalf("Add() on a fresh pid returned %v, want nil", err)
	}
	if _, err := tbl.Add(200, 0, false); !errors.Is(err, tracerr.ErrAlreadyTraced) {
		t.Errorf("Add() on a duplicate pid = %v, want ErrAlreadyTraced", err)
	}
}

func TestRemoveUnknownProcess(t *testing.T) {
	tbl := newTestTable()
	if err := tbl.Remove(999); !errors.Is(err, tracerr.ErrUnknownProcess) {
		t.Errorf("Remove() on an absent pid = %v, want ErrUnknownProcess", err)
	}
}

func TestIterateIsInsertionOrder(t *testing.T) {
	tbl := newTestTable()
	tbl.Insert(1, 0, false)
	tbl.Insert(2, 0, false)
	tbl.Insert(3, 0, false)

	got := tbl.Iterate()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Iterate() returned %d entries, want %d", len(got), len(want))
	}
	for i, tp := range got {
		if tp.PID != want[i] {
			t.Errorf("Iterate()[%d].PID = %d, want %d", i, tp.PID, want[i])
		}
	}
}

// The detach order Quit uses is not observable here (Detach is a no-op for
// these never-attached pids); this checks only that Quit empties the Table.
func TestQuitClearsTable(t *testing.T) {
	tbl := newTestTable()
	tbl.Insert(1, 0, false)
	tbl.Insert(2, 0, false)
	tbl.Insert(3, 0, false)

	tbl.Quit()

	if !tbl.IsEmpty() {
		t.Error("Quit() should leave the Table empty")
	}
	if tbl.Contains(1) || tbl.Contains(2) || tbl.Contains(3) {
		t.Error("Quit() should remove every tracked pid")
	}
}

func TestPopAnyOnEmptyTable(t *testing.T) {
	tbl := newTestTable()
	if _, ok := tbl.PopAny(); ok {
		t.Error("PopAny() on an empty Table should return ok=false")
	}
}

func TestGetContains(t *testing.T) {
	tbl := newTestTable()
	tbl.Insert(42, 7, true)

	tp, ok := tbl.Get(42)
	if !ok {
		t.Fatal("Get(42) should find the inserted process")
	}
	if tp.ParentPID != 7 || !tp.HasParent {
		t.Errorf("Get(42) parent bookkeeping = (%d, %v), want (7, true)", tp.ParentPID, tp.HasParent)
	}
	if !tbl.Contains(42) {
		t.Error("Contains(42) should be true")
	}
	if tbl.Contains(43) {
		t.Error("Contains(43) should be false")
	}
}
