package systems

import (
	"testing"

	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/utils"
)

func TestKeyInputSystem_Bindings(t *testing.T) {
	tests := []struct {
		key  string
		want Direction
	}{
		{"w", DirUp},
		{"W", DirUp},
		{"ц", DirUp},
		{"Ц", DirUp},
		{"s", DirDown},
		{"ы", DirDown},
		{"a", DirLeft},
		{"Ф", DirLeft},
		{"d", DirRight},
		{"В", DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			input := NewKeyInputSystem(config.DefaultKeyBindings())
			input.KeyDown(tt.key)

			for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
				if got := input.IsHeld(dir); got != (dir == tt.want) {
					t.Errorf("key %q: IsHeld(%v) = %v", tt.key, dir, got)
				}
			}

			input.KeyUp(tt.key)
			if input.IsHeld(tt.want) {
				t.Errorf("key %q: direction still held after release", tt.key)
			}
		})
	}
}

func TestKeyInputSystem_TwoBindingsHeld(t *testing.T) {
	input := NewKeyInputSystem(config.DefaultKeyBindings())

	input.KeyDown("w")
	input.KeyDown("ц")
	input.KeyUp("w")

	if !input.IsHeld(DirUp) {
		t.Error("Direction should stay held while the other binding is down")
	}

	input.KeyUp("Ц")
	if input.IsHeld(DirUp) {
		t.Error("Direction should be released when both bindings are up")
	}
}

func TestKeyInputSystem_HandleKeyEvent(t *testing.T) {
	input := NewKeyInputSystem(config.DefaultKeyBindings())

	input.HandleKeyEvent(utils.KeyEvent{Name: "D", Pressed: true})
	if !input.IsHeld(DirRight) {
		t.Error("Expected right held")
	}

	input.HandleKeyEvent(utils.KeyEvent{Name: "x", Pressed: true})
	input.Reset()
	if input.IsHeld(DirRight) {
		t.Error("Reset should release all keys")
	}
}

func TestKeyInputSystem_CustomBindings(t *testing.T) {
	input := NewKeyInputSystem(config.KeyBindings{Up: []string{"ArrowUp"}})

	input.KeyDown("arrowup")
	if !input.IsHeld(DirUp) {
		t.Error("Custom bindings should match case-insensitively")
	}
	if input.IsHeld(DirDown) {
		t.Error("Unbound direction should never be held")
	}
}
