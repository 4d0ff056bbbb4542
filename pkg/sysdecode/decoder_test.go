package sysdecode

import "testing"

func TestNameOfUnknown(t *testing.T) {
	if got := NameOf(999999); got != UnknownName {
		t.Errorf("NameOf(999999) = %q, want %q", got, UnknownName)
	}
}

func TestNameOfKnownSyscall(t *testing.T) {
	// exit_group is present on every architecture's table in this
	// package and has a stable, well-known number story across arches,
	// so it's a safe cross-arch smoke check.
	name := NameOf(numberOf(t, "exit_group"))
	if name != "exit_group" {
		t.Errorf("NameOf(exit_group's number) = %q, want %q", name, "exit_group")
	}
}

func TestPrototypeOfUnknownFallsBack(t *testing.T) {
	proto := PrototypeOf("definitely_not_a_real_syscall_name")
	if len(proto) != len(unknownPrototype) {
		t.Fatalf("PrototypeOf(unknown) returned %d entries, want %d", len(proto), len(unknownPrototype))
	}
	for i, p := range proto {
		if p != unknownPrototype[i] {
			t.Errorf("PrototypeOf(unknown)[%d] = %+v, want %+v", i, p, unknownPrototype[i])
		}
	}
}

func TestPrototypeOfOpen(t *testing.T) {
	proto := PrototypeOf("open")
	if len(proto) == 0 {
		t.Fatal("PrototypeOf(open) returned no entries")
	}
	if proto[0].Name != "filename" {
		t.Errorf("PrototypeOf(open)[0].Name = %q, want %q", proto[0].Name, "filename")
	}
}

// numberOf reverse-looks-up a syscall number for name from the generated
// table, skipping the test if the architecture's table doesn't carry it.
func numberOf(t *testing.T, name string) uint64 {
	t.Helper()
	for num, n := range numberToName {
		if n == name {
			return num
		}
	}
	t.Skipf("%s not present in this architecture's table", name)
	return 0
}
