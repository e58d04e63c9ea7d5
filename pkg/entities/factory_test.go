package entities

import (
	"errors"
	"testing"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// failingLoader 所有图片都加载失败
type failingLoader struct {
	calls int
}

func (f *failingLoader) LoadImage(path string) (*ebiten.Image, error) {
	f.calls++
	return nil, errors.New("not found")
}

func TestNewItemEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	layout := config.ItemLayout{ItemWidth: 80, ItemHeight: 60}

	left := NewItemEntity(em, nil, config.ItemConfig{ID: "cup", Image: "images/cup.png", Column: "left"}, 0, layout)
	right := NewItemEntity(em, nil, config.ItemConfig{ID: "hat", Column: "right"}, 3, layout)

	d, ok := ecs.GetComponent[*components.DraggableComponent](em, left)
	if !ok {
		t.Fatal("Item should have DraggableComponent")
	}
	if d.Column != components.ColumnLeft || d.ItemID != "cup" || d.Slot != 0 {
		t.Errorf("Unexpected draggable %+v", d)
	}

	d, _ = ecs.GetComponent[*components.DraggableComponent](em, right)
	if d.Column != components.ColumnRight || d.Slot != 3 {
		t.Errorf("Unexpected draggable %+v", d)
	}

	size, _ := ecs.GetComponent[*components.SizeComponent](em, left)
	if size.Width != 80 || size.Height != 60 {
		t.Errorf("Expected item size 80x60, got %.0fx%.0f", size.Width, size.Height)
	}

	style, _ := ecs.GetComponent[*components.StyleComponent](em, left)
	if style.Fixed || style.Opacity != 1 || style.Cursor != components.CursorGrab {
		t.Errorf("New item should have no overrides and a grab cursor, got %+v", style)
	}
}

func TestNewSprite_Placeholder(t *testing.T) {
	loader := &failingLoader{}

	sprite := newSprite(loader, "images/bag.png", placeholderBag, "")
	if sprite.Image != nil {
		t.Error("Failed load should leave Image nil")
	}
	if sprite.Label != "bag" {
		t.Errorf("Placeholder label should be the asset name, got %q", sprite.Label)
	}
	if loader.calls != 1 {
		t.Errorf("Expected 1 load call, got %d", loader.calls)
	}

	// 没有图片路径时不调用加载器
	sprite = newSprite(loader, "", placeholderItem, "cup")
	if loader.calls != 1 || sprite.Label != "cup" {
		t.Errorf("Empty path should not hit the loader, calls=%d label=%q", loader.calls, sprite.Label)
	}
}

func TestNewEffectEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	world := NewEffectEntity(em, nil, config.EffectConfig{ID: "ticket", DurationMs: 6000, RectConfig: config.RectConfig{X: 10, Y: 20, Width: 30, Height: 40}})
	screen := NewEffectEntity(em, nil, config.EffectConfig{ID: "happy", DurationMs: 6000, Screen: true, RectConfig: config.RectConfig{X: 5, Y: 6, Width: 30, Height: 40}})

	style, _ := ecs.GetComponent[*components.StyleComponent](em, world)
	if !style.Hidden || style.Fixed {
		t.Errorf("World effect should start hidden and not fixed, got %+v", style)
	}

	style, _ = ecs.GetComponent[*components.StyleComponent](em, screen)
	if !style.Fixed || style.Left != 5 || style.Top != 6 {
		t.Errorf("Screen effect should be fixed at (5, 6), got %+v", style)
	}

	effect, _ := ecs.GetComponent[*components.EffectComponent](em, world)
	if effect.Visible || effect.Duration.Milliseconds() != 6000 {
		t.Errorf("Unexpected effect %+v", effect)
	}
}

func TestNewTriggerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	volume := 0.3
	prop := config.PropConfig{ID: "poster", RectConfig: config.RectConfig{X: 100, Y: 200}}

	tests := []struct {
		name       string
		trigger    config.TriggerConfig
		hasTarget  bool
		wantPos    bool
		wantVolume float64
	}{
		{"默认音量", config.TriggerConfig{ID: "poster", Threshold: 150}, true, true, config.DefaultTriggerVolume},
		{"自定义音量", config.TriggerConfig{ID: "poster", Threshold: 150, Volume: &volume}, true, true, 0.3},
		{"目标缺失", config.TriggerConfig{ID: "ghost", Threshold: 150}, false, false, config.DefaultTriggerVolume},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewTriggerEntity(em, tt.trigger, i, prop, tt.hasTarget)

			pos, hasPos := ecs.GetComponent[*components.PositionComponent](em, id)
			if hasPos != tt.wantPos {
				t.Fatalf("Position present = %v, want %v", hasPos, tt.wantPos)
			}
			if hasPos && (pos.X != 100 || pos.Y != 200) {
				t.Errorf("Trigger should sit on the prop's top-left, got (%.0f, %.0f)", pos.X, pos.Y)
			}

			zone, _ := ecs.GetComponent[*components.TriggerZoneComponent](em, id)
			if zone.SoundVolume != tt.wantVolume || zone.Order != i || zone.Fired {
				t.Errorf("Unexpected zone %+v", zone)
			}
		})
	}
}
