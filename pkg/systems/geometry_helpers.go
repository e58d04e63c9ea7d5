package systems

import (
	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/decker502/bagwalk/pkg/utils"
)

// entityRect 返回实体当前显示的矩形
// 有固定位置覆盖样式时使用覆盖位置，否则使用布局位置
func entityRect(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	size, ok := ecs.GetComponent[*components.SizeComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}

	x, y := pos.X, pos.Y
	if style, ok := ecs.GetComponent[*components.StyleComponent](em, id); ok && style.Fixed {
		x, y = style.Left, style.Top
	}
	return utils.NewRect(x, y, size.Width, size.Height), true
}

// layoutRect 返回实体的布局矩形，忽略覆盖样式
func layoutRect(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	size, ok := ecs.GetComponent[*components.SizeComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return utils.NewRect(pos.X, pos.Y, size.Width, size.Height), true
}
