package treent

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// inputScript is the top-level structure of an input script.
type inputScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// TestRunner sequences synthetic input across frames for automated
// interaction testing. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML (or JSON) input script and returns a
// TestRunner ready to be attached to a Scene via SetTestRunner.
//
// Supported actions: click (x, y), drag (fromX, fromY, toX, toY, frames),
// wait (frames).
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script inputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "drag", "wait":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner advances one
// step per Update, before the window is polled.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame, queueing input on w.
func (r *TestRunner) step(w *EbitenWindow) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if w.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		w.InjectClick(st.X, st.Y)
	case "drag":
		w.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && w.Pending() == 0 {
		r.done = true
	}
}
