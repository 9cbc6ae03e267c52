// Package input turns SDL2 events into viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Action is a viewer command triggered by a key press.
type Action int

const (
	ActionNone Action = iota
	ActionCamera1
	ActionCamera2
	ActionCamera3
	ActionAnimate
	ActionStop
	ActionReset
	ActionScreenshot
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionCamera1:
		return "camera1"
	case ActionCamera2:
		return "camera2"
	case ActionCamera3:
		return "camera3"
	case ActionAnimate:
		return "animate"
	case ActionStop:
		return "stop"
	case ActionReset:
		return "reset"
	case ActionScreenshot:
		return "screenshot"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// CameraIndex returns the rig index a camera action selects.
func (a Action) CameraIndex() (int, bool) {
	switch a {
	case ActionCamera1:
		return 0, true
	case ActionCamera2:
		return 1, true
	case ActionCamera3:
		return 2, true
	}
	return 0, false
}

// DefaultBindings maps keys to actions.
func DefaultBindings() map[sdl.Scancode]Action {
	return map[sdl.Scancode]Action{
		sdl.SCANCODE_1:      ActionCamera1,
		sdl.SCANCODE_2:      ActionCamera2,
		sdl.SCANCODE_3:      ActionCamera3,
		sdl.SCANCODE_A:      ActionAnimate,
		sdl.SCANCODE_S:      ActionStop,
		sdl.SCANCODE_R:      ActionReset,
		sdl.SCANCODE_P:      ActionScreenshot,
		sdl.SCANCODE_Q:      ActionQuit,
		sdl.SCANCODE_ESCAPE: ActionQuit,
	}
}

// Resize is a window size change.
type Resize struct {
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	bindings map[sdl.Scancode]Action
	actions  []Action
	resize   *Resize
}

// New creates an input handler with the default bindings.
func New() *Input {
	return &Input{
		bindings: DefaultBindings(),
		actions:  make([]Action, 0, 8),
	}
}

// Update polls SDL events. Returns true if the window was closed.
func (i *Input) Update() bool {
	i.actions = i.actions[:0]
	i.resize = nil

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.resize = &Resize{Width: int(e.Data1), Height: int(e.Data2)}
			}

		case *sdl.KeyboardEvent:
			// presses only; key repeat and release are ignored
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				if a := i.Lookup(e.Keysym.Scancode); a != ActionNone {
					i.actions = append(i.actions, a)
				}
			}
		}
	}

	return false
}

// Lookup returns the action bound to a key.
func (i *Input) Lookup(key sdl.Scancode) Action {
	return i.bindings[key]
}

// Actions returns the actions from the last Update.
func (i *Input) Actions() []Action {
	return i.actions
}

// Resized returns the last resize seen by Update, if any.
func (i *Input) Resized() (Resize, bool) {
	if i.resize == nil {
		return Resize{}, false
	}
	return *i.resize, true
}
