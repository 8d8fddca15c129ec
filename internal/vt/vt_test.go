package vt

import "testing"

func TestNewDefaultsTTYPath(t *testing.T) {
	s := New("")
	if s.ttyPath != "/dev/tty0" {
		t.Fatalf("expected default tty path /dev/tty0, got %q", s.ttyPath)
	}
}

func TestNewHonorsExplicitTTYPath(t *testing.T) {
	s := New("/dev/console")
	if s.ttyPath != "/dev/console" {
		t.Fatalf("expected explicit tty path to be kept, got %q", s.ttyPath)
	}
}

func TestSwitchToFailsCleanlyWithoutRealConsole(t *testing.T) {
	s := New("/dev/null/does-not-exist")
	if err := s.SwitchTo(3); err == nil {
		t.Fatalf("expected an error opening a nonexistent console device")
	}
}
