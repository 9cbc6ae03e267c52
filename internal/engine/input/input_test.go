package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestLookup(t *testing.T) {
	in := New()

	tests := []struct {
		key  sdl.Scancode
		want Action
	}{
		{sdl.SCANCODE_1, ActionCamera1},
		{sdl.SCANCODE_3, ActionCamera3},
		{sdl.SCANCODE_A, ActionAnimate},
		{sdl.SCANCODE_ESCAPE, ActionQuit},
		{sdl.SCANCODE_Q, ActionQuit},
		{sdl.SCANCODE_P, ActionScreenshot},
		{sdl.SCANCODE_Z, ActionNone},
	}
	for _, tt := range tests {
		if got := in.Lookup(tt.key); got != tt.want {
			t.Errorf("Lookup(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestCameraIndex(t *testing.T) {
	tests := []struct {
		action Action
		index  int
		ok     bool
	}{
		{ActionCamera1, 0, true},
		{ActionCamera2, 1, true},
		{ActionCamera3, 2, true},
		{ActionAnimate, 0, false},
	}
	for _, tt := range tests {
		i, ok := tt.action.CameraIndex()
		if i != tt.index || ok != tt.ok {
			t.Errorf("%v.CameraIndex() = %d, %v", tt.action, i, ok)
		}
	}
}

func TestResizedEmpty(t *testing.T) {
	if _, ok := New().Resized(); ok {
		t.Error("fresh input reports a resize")
	}
}
