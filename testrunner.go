package scrollstage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// scriptStep is one entry of a JSON choreography script. Which fields matter
// depends on Action.
type scriptStep struct {
	Action string  `json:"action"`
	Target string  `json:"target,omitempty"`
	Offset float64 `json:"offset,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	From   float64 `json:"from,omitempty"`
	To     float64 `json:"to,omitempty"`
	Frames int     `json:"frames,omitempty"`

	ElementTop     float64 `json:"elementTop,omitempty"`
	ElementHeight  float64 `json:"elementHeight,omitempty"`
	ViewportHeight float64 `json:"viewportHeight,omitempty"`

	Expect *scriptExpect `json:"expect,omitempty"`
}

// scriptExpect is checked against the stage when an "expect" step runs.
// Unset fields are not checked.
type scriptExpect struct {
	Progress  *float64 `json:"progress,omitempty"`
	Pinned    *bool    `json:"pinned,omitempty"`
	Pointer   string   `json:"pointer,omitempty"`
	Tolerance float64  `json:"tolerance,omitempty"`
}

const defaultExpectTolerance = 1e-3

var scriptActions = map[string]bool{
	"scroll": true, "scrollTo": true, "resize": true,
	"enter": true, "move": true, "leave": true, "path": true,
	"wait": true, "expect": true, "dispose": true,
}

// TestRunner replays a JSON script of scroll and pointer events through a
// Stage's inject queue, one step per frame, and records failed expectations.
// Attach with Stage.SetTestRunner.
type TestRunner struct {
	steps    []scriptStep
	cursor   int
	waiting  int
	done     bool
	failures []error
}

// LoadTestScript parses a script of the form {"steps": [...]}.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "expect" && st.Expect == nil {
			return nil, fmt.Errorf("parse test script: step %d: expect without conditions", i)
		}
		if st.Action == "dispose" && i != len(script.Steps)-1 {
			return nil, fmt.Errorf("parse test script: step %d: steps after dispose never run", i)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner; Stage.Frame advances it before injected
// events are consumed.
func (s *Stage) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step ran and its injected events were consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the failed expectations so far, or nil.
func (r *TestRunner) Err() error {
	return errors.Join(r.failures...)
}

// step runs at most one script step. Steps wait for the inject queue to
// drain so expectations see the effect of everything queued before them.
func (r *TestRunner) step(s *Stage) {
	if r.done || len(s.injectQueue) > 0 {
		return
	}
	if r.waiting > 0 {
		r.waiting--
		return
	}
	if r.cursor == len(r.steps) {
		r.done = true
		return
	}
	r.run(s, r.cursor, r.steps[r.cursor])
	r.cursor++
	r.done = r.cursor == len(r.steps) && r.waiting == 0 && len(s.injectQueue) == 0
}

func (r *TestRunner) run(s *Stage, i int, st scriptStep) {
	switch st.Action {
	case "scroll":
		s.InjectScroll(st.Offset)
	case "scrollTo":
		s.InjectScrollTo(st.From, st.To, st.Frames)
	case "resize":
		s.InjectResize(Layout{ElementTop: st.ElementTop, ElementHeight: st.ElementHeight, ViewportHeight: st.ViewportHeight})
	case "enter":
		s.InjectPointerEnter(st.Target, st.X, st.Y)
	case "move":
		s.InjectPointerMove(st.X, st.Y)
	case "leave":
		s.InjectPointerLeave(st.Target)
	case "path":
		s.InjectPointerPath(st.Target, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		// The current frame is the first one waited.
		r.waiting = max(st.Frames-1, 0)
	case "expect":
		r.check(s, i, st.Expect)
	case "dispose":
		s.InjectDispose()
	}
}

func (r *TestRunner) check(s *Stage, i int, e *scriptExpect) {
	tol := e.Tolerance
	if tol <= 0 {
		tol = defaultExpectTolerance
	}
	if e.Progress != nil {
		if got := s.Progress(); math.Abs(got-*e.Progress) > tol {
			r.failures = append(r.failures, fmt.Errorf("step %d: progress %.4f, want %.4f", i, got, *e.Progress))
		}
	}
	if e.Pinned != nil && s.Pinned() != *e.Pinned {
		r.failures = append(r.failures, fmt.Errorf("step %d: pinned %v, want %v", i, s.Pinned(), *e.Pinned))
	}
	if e.Pointer != "" && s.PointerState().String() != e.Pointer {
		r.failures = append(r.failures, fmt.Errorf("step %d: pointer %v, want %s", i, s.PointerState(), e.Pointer))
	}
}
