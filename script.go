package polgame

import (
	"encoding/json"
	"fmt"
	"strings"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Key    string  `json:"key,omitempty"`
	Button string  `json:"button,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays a JSON list of input steps, one step per frame, through an
// InjectedInput. A Script is itself an InputSource and a FrameStarter: set
// it as Config.Input.
//
// Supported actions: "move" (x, y), "press" / "release" (button: left,
// middle or right; default left), "keydown" / "keyup" (key name such as
// "A" or "Space"), "click" (x, y: move, press, then release next frame),
// "drag" (x, y to toX, toY over frames), "wait" (frames) and "quit".
type Script struct {
	*InjectedInput
	steps     []scriptStep
	cursor    int
	waitCount int
	followUp  []func()
	done      bool
}

// LoadScript parses and validates a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if err := validateStep(st); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Script{InjectedInput: NewInjectedInput(), steps: f.Steps}, nil
}

func validateStep(st scriptStep) error {
	switch st.Action {
	case "move", "click", "drag", "wait", "quit":
		return nil
	case "press", "release":
		_, err := parseButton(st.Button)
		return err
	case "keydown", "keyup":
		if _, ok := KeyByName(st.Key); !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

func parseButton(name string) (MouseButton, error) {
	switch strings.ToLower(name) {
	case "", "left":
		return MouseButtonLeft, nil
	case "middle":
		return MouseButtonMiddle, nil
	case "right":
		return MouseButtonRight, nil
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.done
}

// StartFrame executes the work scheduled for this frame. Game.Load calls it
// before polling.
func (s *Script) StartFrame() {
	if s.done {
		return
	}
	if len(s.followUp) > 0 {
		fn := s.followUp[0]
		s.followUp = s.followUp[1:]
		fn()
		s.checkDone()
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		s.checkDone()
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "move":
		s.MoveTo(st.X, st.Y)
	case "press":
		b, _ := parseButton(st.Button)
		s.Press(b)
	case "release":
		b, _ := parseButton(st.Button)
		s.Release(b)
	case "keydown":
		k, _ := KeyByName(st.Key)
		s.KeyDown(k)
	case "keyup":
		k, _ := KeyByName(st.Key)
		s.KeyUp(k)
	case "click":
		s.MoveTo(st.X, st.Y)
		s.Press(MouseButtonLeft)
		s.followUp = append(s.followUp, func() { s.Release(MouseButtonLeft) })
	case "drag":
		s.scheduleDrag(st)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		s.Quit()
	}
	s.checkDone()
}

// scheduleDrag presses at (X, Y), moves linearly to (ToX, ToY) over the
// intermediate frames and releases. The sequence takes Frames frames, at
// least two.
func (s *Script) scheduleDrag(st scriptStep) {
	frames := max(st.Frames, 2)
	s.MoveTo(st.X, st.Y)
	s.Press(MouseButtonLeft)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := st.X + (st.ToX-st.X)*t
		y := st.Y + (st.ToY-st.Y)*t
		s.followUp = append(s.followUp, func() { s.MoveTo(x, y) })
	}
	s.followUp = append(s.followUp, func() {
		s.MoveTo(st.ToX, st.ToY)
		s.Release(MouseButtonLeft)
	})
}

func (s *Script) checkDone() {
	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(s.followUp) == 0 {
		s.done = true
	}
}
