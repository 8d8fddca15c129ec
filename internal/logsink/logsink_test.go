package logsink

import (
	"testing"

	"github.com/tidewm/tide/internal/keysym"
)

func TestSinkLogsEveryCall(t *testing.T) {
	var lines []string
	s := New(func(format string, args ...interface{}) {
		lines = append(lines, format)
	})

	s.KeyboardKey("seat0", 30, keysym.KeyPressed, 1000)
	s.PointerFrame("seat0")

	if len(lines) != 2 {
		t.Fatalf("expected 2 logged lines, got %d", len(lines))
	}
}
