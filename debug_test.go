package scrollstage

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_Stats(t *testing.T) {
	s, _, _ := mountTest(t, nil)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() { s.Scroll(500) })
	if !strings.Contains(output, "[scrollstage] scroll: 500.0 | progress: 0.5000 | writes: 1 | pinned: true") {
		t.Errorf("unexpected debug output: %q", output)
	}
}

func TestDebugMode_Off(t *testing.T) {
	s, _, _ := mountTest(t, nil)
	output := captureStderr(t, func() { s.Scroll(500) })
	if output != "" {
		t.Errorf("expected no output, got %q", output)
	}
}

func TestDebugMode_IdleWarning(t *testing.T) {
	host := newRecordingHost()
	b := testBinding(host)
	b.Trigger = "gone"
	b.Debug = true

	output := captureStderr(t, func() { Mount(b) })
	if !strings.Contains(output, "warning: idle") || !strings.Contains(output, "gone") {
		t.Errorf("expected idle warning, got %q", output)
	}
}

func TestDebugMode_ConflictWarning(t *testing.T) {
	host := newRecordingHost()
	b := testBinding(host)
	b.Timeline.FromTo([]string{"title"}, []Prop{P(PropScale, 2)}, []Prop{P(PropScale, 3)},
		TweenOptions{Duration: 0.5}, At(0.25))
	b.Debug = true

	output := captureStderr(t, func() { Mount(b) })
	if !strings.Contains(output, "overlap on handle 2 \"scale\"") {
		t.Errorf("expected overlap warning, got %q", output)
	}
}
