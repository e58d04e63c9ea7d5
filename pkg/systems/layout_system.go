package systems

import (
	"math"
	"slices"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/ecs"
)

// LayoutSystem 收集场景的流式布局
//
// 背包居中；物品按列（左/右）和原始顺序竖直排列在背包两侧，
// 整列相对背包垂直居中。固定位置的物品（拖拽中）不参与布局，
// 其余物品会补上它的位置；物品退回后重新回到原来的顺序。
type LayoutSystem struct {
	entityManager *ecs.EntityManager
	dropZone      ecs.EntityID
	layout        config.ItemLayout

	width, height float64
}

// NewLayoutSystem 创建布局系统
func NewLayoutSystem(em *ecs.EntityManager, dropZone ecs.EntityID, layout config.ItemLayout) *LayoutSystem {
	return &LayoutSystem{
		entityManager: em,
		dropZone:      dropZone,
		layout:        layout,
	}
}

// SetViewport 设置视口尺寸
func (s *LayoutSystem) SetViewport(width, height float64) {
	s.width, s.height = width, height
}

// Update 重新计算背包和物品的布局位置
func (s *LayoutSystem) Update() {
	bagPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.dropZone)
	if !ok {
		return
	}
	bagSize, ok := ecs.GetComponent[*components.SizeComponent](s.entityManager, s.dropZone)
	if !ok {
		return
	}

	bagPos.X = math.Max(0, (s.width-bagSize.Width)/2)
	bagPos.Y = math.Max(0, (s.height-bagSize.Height)/2)
	centerY := bagPos.Y + bagSize.Height/2

	columns := map[int][]ecs.EntityID{}
	for _, id := range ecs.GetEntitiesWith3[*components.DraggableComponent, *components.PositionComponent, *components.StyleComponent](s.entityManager) {
		style, _ := ecs.GetComponent[*components.StyleComponent](s.entityManager, id)
		if style.Fixed || style.Hidden {
			continue
		}
		d, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
		columns[d.Column] = append(columns[d.Column], id)
	}

	m := s.layout.Margin
	leftX := math.Max(0, bagPos.X-m-s.layout.ItemWidth)
	rightX := bagPos.X + bagSize.Width + m

	s.placeColumn(columns[components.ColumnLeft], leftX, centerY)
	s.placeColumn(columns[components.ColumnRight], rightX, centerY)
}

func (s *LayoutSystem) placeColumn(ids []ecs.EntityID, x, centerY float64) {
	if len(ids) == 0 {
		return
	}

	slices.SortFunc(ids, func(a, b ecs.EntityID) int {
		da, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, a)
		db, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, b)
		return da.Slot - db.Slot
	})

	n := float64(len(ids))
	total := n*s.layout.ItemHeight + (n-1)*s.layout.Gap
	y := math.Max(0, centerY-total/2)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if size, ok := ecs.GetComponent[*components.SizeComponent](s.entityManager, id); ok {
			size.Width, size.Height = s.layout.ItemWidth, s.layout.ItemHeight
		}
		pos.X, pos.Y = x, y
		y += s.layout.ItemHeight + s.layout.Gap
	}
}
