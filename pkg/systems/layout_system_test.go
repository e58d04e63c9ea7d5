package systems

import (
	"testing"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
)

func positionOf(em *ecs.EntityManager, id ecs.EntityID) (float64, float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return pos.X, pos.Y
}

func TestLayoutSystem_Update(t *testing.T) {
	// 左列：cup, book；右列：hat
	f := newCollectFixture("cup", "hat", "book")

	if x, y, _, _ := f.bagRect(); x != 500 || y != 325 {
		t.Errorf("Bag should be centered at (500, 325), got (%.0f, %.0f)", x, y)
	}

	tests := []struct {
		name         string
		item         ecs.EntityID
		wantX, wantY float64
	}{
		// 两个物品 + 一个间距 = 210，整列中心与背包中心 400 对齐
		{"左列第一个", f.items[0], 360, 295},
		{"左列第二个", f.items[2], 360, 405},
		{"右列唯一", f.items[1], 740, 350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if x, y := positionOf(f.em, tt.item); x != tt.wantX || y != tt.wantY {
				t.Errorf("Expected (%.0f, %.0f), got (%.0f, %.0f)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestLayoutSystem_DraggedItemLeavesFlow(t *testing.T) {
	f := newCollectFixture("cup", "hat", "book")
	cup, book := f.items[0], f.items[2]

	f.drag.BeginDrag(cup, 410, 345)
	f.layout.Update()

	if x, y := positionOf(f.em, book); x != 360 || y != 350 {
		t.Errorf("Remaining item should take the column center, got (%.0f, %.0f)", x, y)
	}

	f.drag.EndDrag(410, 345)
	f.layout.Update()

	if _, y := positionOf(f.em, cup); y != 295 {
		t.Errorf("Returned item should get its slot back, got y=%.0f", y)
	}
	if _, y := positionOf(f.em, book); y != 405 {
		t.Errorf("Second item should move back down, got y=%.0f", y)
	}
}

func TestLayoutSystem_SmallViewport(t *testing.T) {
	f := newCollectFixture("cup")
	f.layout.SetViewport(220, 160)
	f.layout.Update()

	if x, y, _, _ := f.bagRect(); x != 10 || y != 5 {
		t.Errorf("Expected bag at (10, 5), got (%.0f, %.0f)", x, y)
	}
	// 左列放不下时贴住窗口左边
	if x, _ := positionOf(f.em, f.items[0]); x != 0 {
		t.Errorf("Left column should clamp to 0, got %.0f", x)
	}
}
