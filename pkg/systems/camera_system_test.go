package systems

import (
	"testing"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
)

func TestCameraSystem_Follow(t *testing.T) {
	tests := []struct {
		name         string
		px, py       float64
		wantX, wantY float64
	}{
		{"出生点贴住左下角", 0, 1700, 0, 1200},
		{"场景中央", 750, 850, 400, 600},
		{"右上角", 1500, 0, 800, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			player := em.CreateEntity()
			ecs.AddComponent(em, player, &components.PositionComponent{X: tt.px, Y: tt.py})
			ecs.AddComponent(em, player, &components.SizeComponent{Width: 100, Height: 100})

			cs := NewCameraSystem(em, player, 1600, 1800)
			cs.Update(800, 600)

			if x, y := cs.Position(); x != tt.wantX || y != tt.wantY {
				t.Errorf("Expected camera (%.0f, %.0f), got (%.0f, %.0f)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestCameraSystem_SceneSmallerThanView(t *testing.T) {
	em := ecs.NewEntityManager()
	player := em.CreateEntity()
	ecs.AddComponent(em, player, &components.PositionComponent{X: 100, Y: 100})
	ecs.AddComponent(em, player, &components.SizeComponent{Width: 50, Height: 50})

	cs := NewCameraSystem(em, player, 400, 300)
	cs.Update(800, 600)

	// 场景居中：摄像机位于负坐标
	if x, y := cs.Position(); x != -200 || y != -150 {
		t.Errorf("Expected (-200, -150), got (%.0f, %.0f)", x, y)
	}
}

func TestCameraSystem_MissingTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em, 0, 1600, 1800)
	cs.Update(800, 600)

	if x, y := cs.Position(); x != 0 || y != 0 {
		t.Errorf("Camera should stay put without a target, got (%.0f, %.0f)", x, y)
	}
}
