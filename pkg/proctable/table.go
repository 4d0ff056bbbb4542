package proctable

import (
	"container/list"
	"fmt"

	"github.com/sirupsen/logrus"

	"art/pkg/tracerr"
)

// Table is the insertion-ordered pid -> TracedProcess mapping. It
// exclusively owns every TracedProcess it holds; no other component keeps
// a long-lived reference.
type Table struct {
	log     logrus.FieldLogger
	byPID   map[int]*list.Element // pid -> element wrapping *TracedProcess
	order   *list.List            // insertion order, for stable iteration
}

// New returns an empty Table. A nil logger defaults to logrus's standard
// logger.
func New(log logrus.FieldLogger) *Table {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Table{
		log:   log,
		byPID: make(map[int]*list.Element),
		order: list.New(),
	}
}

// Insert adds pid with an optional parent, idempotent over a pid already
// present: a second Insert of the same pid returns the existing record and
// emits a debug trace rather than erroring.
func (t *Table) Insert(pid int, parentPID int, hasParent bool) *TracedProcess {
	if el, ok := t.byPID[pid]; ok {
		t.log.WithField("pid", pid).Debug("process already traced")
		return el.Value.(*TracedProcess)
	}
	tp := newTracedProcess(pid, parentPID, hasParent)
	el := t.order.PushBack(tp)
	t.byPID[pid] = el
	return tp
}

// Add adds pid with an optional parent, failing with ErrAlreadyTraced if
// pid collides with an existing entry. This is the non-idempotent
// attach-path counterpart to Insert.
func (t *Table) Add(pid int, parentPID int, hasParent bool) (*TracedProcess, error) {
	if _, ok := t.byPID[pid]; ok {
		return nil, fmt.Errorf("%w: pid %d", tracerr.ErrAlreadyTraced, pid)
	}
	return t.Insert(pid, parentPID, hasParent), nil
}

// Get returns the TracedProcess for pid, if present.
func (t *Table) Get(pid int) (*TracedProcess, bool) {
	el, ok := t.byPID[pid]
	if !ok {
		return nil, false
	}
	return el.Value.(*TracedProcess), true
}

// Contains reports whether pid is present in the Table.
func (t *Table) Contains(pid int) bool {
	_, ok := t.byPID[pid]
	return ok
}

// Remove detaches the underlying kernel tracing relationship and drops pid
// from the Table. Removal is O(1): the backing store is a doubly linked
// list keyed by a map of pid -> element.
func (t *Table) Remove(pid int) error {
	el, ok := t.byPID[pid]
	if !ok {
		return fmt.Errorf("%w: pid %d", tracerr.ErrUnknownProcess, pid)
	}
	tp := el.Value.(*TracedProcess)
	if err := tp.Detach(); err != nil {
		return err
	}
	t.order.Remove(el)
	delete(t.byPID, pid)
	return nil
}

// Iterate returns every TracedProcess in insertion order. The returned
// slice is a snapshot; mutating the Table afterward does not affect it.
func (t *Table) Iterate() []*TracedProcess {
	out := make([]*TracedProcess, 0, t.order.Len())
	for el := t.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*TracedProcess))
	}
	return out
}

// PopAny removes and returns an arbitrary TracedProcess from the Table
// (the most recently inserted, for O(1) removal), or false if the Table is
// empty.
func (t *Table) PopAny() (*TracedProcess, bool) {
	el := t.order.Back()
	if el == nil {
		return nil, false
	}
	tp := el.Value.(*TracedProcess)
	t.order.Remove(el)
	delete(t.byPID, tp.PID)
	return tp, true
}

// IsEmpty reports whether the Table holds no processes.
func (t *Table) IsEmpty() bool {
	return t.order.Len() == 0
}

// Len reports the number of processes currently in the Table.
func (t *Table) Len() int {
	return t.order.Len()
}

// Quit iterates the Table in reverse insertion order, detaching each
// record, then clears it: the most recently adopted tracee (typically the
// deepest descendant) is detached first, the initial tracee last.
func (t *Table) Quit() {
	for el := t.order.Back(); el != nil; el = el.Prev() {
		tp := el.Value.(*TracedProcess)
		if err := tp.Detach(); err != nil {
			t.log.WithError(err).WithField("pid", tp.PID).Warn("detach during shutdown failed")
		}
	}
	t.order.Init()
	t.byPID = make(map[int]*list.Element)
}
