package holddrag

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action    string  `json:"action"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	Pointer   int     `json:"pointer,omitempty"`
	Secondary bool    `json:"secondary,omitempty"` // not the primary pointer
	Button    string  `json:"button,omitempty"`    // left (default), right, middle
	MS        int     `json:"ms,omitempty"`
	Surface   string  `json:"surface,omitempty"`
}

// scriptFile is the top-level JSON structure of a gesture script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a recorded pointer sequence replayed against a Board without a
// window. Time only passes on "wait" steps.
//
//	{"steps": [
//	  {"action": "press", "x": 40, "y": 60},
//	  {"action": "wait", "ms": 350},
//	  {"action": "move", "x": 200, "y": 60},
//	  {"action": "release", "x": 200, "y": 60}
//	]}
type Script struct {
	steps []scriptStep
}

// LoadScript parses and validates a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range f.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "press", "move", "release", "cancel":
		if !PointerID(st.Pointer).valid() {
			return fmt.Errorf("pointer %d out of range", st.Pointer)
		}
		if _, ok := parseButton(st.Button); !ok {
			return fmt.Errorf("unknown button %q", st.Button)
		}
	case "wait":
		if st.MS < 0 {
			return fmt.Errorf("negative wait %d", st.MS)
		}
	case "teardown":
		if st.Surface == "" {
			return fmt.Errorf("teardown needs a surface")
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func parseButton(s string) (MouseButton, bool) {
	switch s {
	case "", "left":
		return MouseButtonLeft, true
	case "right":
		return MouseButtonRight, true
	case "middle":
		return MouseButtonMiddle, true
	}
	return 0, false
}

// Run replays every step against b. It returns an error naming the first
// teardown step whose surface does not exist.
func (s *Script) Run(b *Board) error {
	d := b.Dispatcher()
	for i, st := range s.steps {
		button, _ := parseButton(st.Button)
		ev := PointerEvent{
			PointerID: PointerID(st.Pointer),
			Button:    button,
			Point:     Vec2{st.X, st.Y},
			Primary:   !st.Secondary,
		}
		switch st.Action {
		case "press":
			d.PointerDown(ev)
		case "move":
			d.PointerMove(ev)
		case "release":
			d.PointerUp(ev)
		case "cancel":
			d.PointerCancel(ev)
		case "wait":
			b.advance(time.Duration(st.MS) * time.Millisecond)
		case "teardown":
			if !b.RemoveSurface(st.Surface) {
				return fmt.Errorf("step %d: no surface %q", i, st.Surface)
			}
		}
	}
	return nil
}
