package seat

import "testing"

func TestDevicesReportsOnlyNewCapabilities(t *testing.T) {
	d := NewDevices()

	newly := d.AddDevice("kbd0", []Capability{CapabilityKeyboard})
	if len(newly) != 1 || newly[0] != CapabilityKeyboard {
		t.Fatalf("expected keyboard to be newly available, got %v", newly)
	}

	newly = d.AddDevice("kbd1", []Capability{CapabilityKeyboard})
	if len(newly) != 0 {
		t.Fatalf("expected no new capability from a second keyboard, got %v", newly)
	}

	lost := d.RemoveDevice("kbd0")
	if len(lost) != 0 {
		t.Fatalf("keyboard capability should survive while kbd1 remains, got %v", lost)
	}

	lost = d.RemoveDevice("kbd1")
	if len(lost) != 1 || lost[0] != CapabilityKeyboard {
		t.Fatalf("expected keyboard capability lost once the last device is removed, got %v", lost)
	}
	if d.HasCapability(CapabilityKeyboard) {
		t.Fatalf("expected no keyboard capability remaining")
	}
}

func TestSuppressedKeysFilterDrains(t *testing.T) {
	s := NewSuppressedKeys()
	s.Add(0x71, 1, 2)

	if !s.IsSuppressed(0x71) {
		t.Fatalf("expected key to be suppressed after Add")
	}

	toks, ok := s.Filter(0x71)
	if !ok || len(toks) != 2 {
		t.Fatalf("expected to drain 2 tokens, got %v ok=%v", toks, ok)
	}
	if s.IsSuppressed(0x71) {
		t.Fatalf("expected suppression cleared after Filter")
	}

	if _, ok := s.Filter(0x71); ok {
		t.Fatalf("expected second Filter on same key to report not-suppressed")
	}
}

func TestRegistryAssignDeviceCreatesSeatAndTracksOwnership(t *testing.T) {
	r := NewRegistry()
	s, newly := r.AssignDevice("seat0", "kbd0", []Capability{CapabilityKeyboard})
	if s.Name != "seat0" || len(newly) != 1 {
		t.Fatalf("expected seat0 created with new keyboard capability")
	}
	if r.SeatWithDevice("kbd0") != s {
		t.Fatalf("expected device lookup to resolve back to seat0")
	}

	owner, lost := r.RemoveDevice("kbd0")
	if owner != s || len(lost) != 1 {
		t.Fatalf("expected removal to report seat0 losing keyboard capability")
	}
	if r.SeatWithDevice("kbd0") != nil {
		t.Fatalf("expected device no longer assigned after removal")
	}
}
