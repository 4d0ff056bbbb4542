// Package syscallrecord carries one in-flight syscall through its two
// observable stops: the per-process object holding its number, name,
// prototype, raw argument words, lazily decoded parameters, result, and
// the two-state ENTER/EXIT machine.
package syscallrecord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"art/pkg/sysdecode"
	"art/pkg/tracerr"
)

// State is the syscall record's two-state machine. Transitions are
// monotonic: ENTER -> EXIT, never the reverse, and EXIT is terminal.
type State int

const (
	// StateEnter is set at construction, at the syscall-enter stop.
	StateEnter State = iota
	// StateExit is set once CollectResult has run, at the syscall-exit
	// stop.
	StateExit
)

func (s State) String() string {
	if s == StateExit {
		return "EXIT"
	}
	return "ENTER"
}

// ErrAlreadyExited is returned by CollectResult when called on a record
// already in StateExit — calling it a second time is a programming error,
// not a recoverable condition.
var ErrAlreadyExited = errors.New("syscallrecord: collect_result called on a record already in EXIT state")

// Record is a per-process object representing one in-flight syscall.
type Record struct {
	PID       int
	Number    uint64
	Name      string
	Prototype []sysdecode.Prototype

	Args   [6]uint64
	Params []Param

	Result    int64
	State     State
	collected bool
}

// New constructs a Record at syscall-enter: it reads the call number from
// the stopped pid, derives the name and prototype from the static tables,
// and leaves the state as ENTER with arguments uncollected.
func New(pid int) (*Record, error) {
	num, err := sysdecode.ReadSyscallNumber(pid)
	if err != nil {
		return nil, err
	}
	name := sysdecode.NameOf(num)
	return &Record{
		PID:       pid,
		Number:    num,
		Name:      name,
		Prototype: sysdecode.PrototypeOf(name),
		State:     StateEnter,
	}, nil
}

// CollectParams reads registers once, asks the decoder for the six raw
// argument words, and pairs them positionally with the prototype to build
// one Param per prototype entry. It is safe to call more than once: the
// second and later calls are no-ops that leave the cached Params in place.
//
// A STRING-kind parameter is dereferenced immediately with ReadCString; a
// failure there is recovered locally into Param.ReadErr (tracerr.ErrParamReadFailed,
// annotated with type/name/syscall), not returned — only a failure to read
// the register file itself (a control-flow error, not a single-parameter
// decode error) is returned here.
func (r *Record) CollectParams() error {
	if r.Params != nil {
		return nil
	}

	regs, err := sysdecode.ReadRegisters(r.PID)
	if err != nil {
		return err
	}
	r.Args = sysdecode.Arguments(regs)

	params := make([]Param, len(r.Prototype))
	for i, proto := range r.Prototype {
		raw := uint64(0)
		if i < len(r.Args) {
			raw = r.Args[i]
		}
		p := Param{Type: proto.Type, Name: proto.Name, Raw: raw}
		p.Kind = classifyKind(proto.Type, proto.Name)

		if p.Kind == KindString {
			b, err := sysdecode.ReadCString(r.PID, raw)
			if err != nil {
				p.ReadErr = fmt.Errorf("%w: (%s, %s, %s): %v", tracerr.ErrParamReadFailed, proto.Type, proto.Name, r.Name, err)
			} else {
				s := string(b)
				p.Decoded = &s
			}
		}
		params[i] = p
	}
	r.Params = params
	return nil
}

// CollectResult transitions the state machine to EXIT and records the
// return value. It must be called at most once.
func (r *Record) CollectResult() error {
	if r.State == StateExit {
		return ErrAlreadyExited
	}
	regs, err := sysdecode.ReadRegisters(r.PID)
	if err != nil {
		return err
	}
	r.Result = sysdecode.Result(regs)
	r.State = StateExit
	r.collected = true
	return nil
}

// ResultCollected reports whether CollectResult has run.
func (r *Record) ResultCollected() bool {
	return r.collected
}

// String renders the call as "name(p0, p1, ...)": quoted text for STRING
// parameters (newlines escaped), 0xHEX for ADDRESS, decimal for NUMBER.
func (r *Record) String() string {
	parts := make([]string, len(r.Params))
	for i, p := range r.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s(%s)", r.Name, strings.Join(parts, ", "))
}

func addressString(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

func decimalString(v uint64) string {
	return strconv.FormatInt(int64(v), 10)
}
