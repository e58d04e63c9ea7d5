package systems

import (
	"log"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/decker502/bagwalk/pkg/game"
	"github.com/decker502/bagwalk/pkg/utils"
)

// DropResult 一次拖拽结束的结果
type DropResult int

const (
	// DropNone 没有进行中的拖拽，EndDrag 被忽略
	DropNone DropResult = iota
	// DropInside 放入背包，物品被移除
	DropInside
	// DropReturned 放在背包外，物品回到布局位置
	DropReturned
)

// DragSystem 拖放控制器
//
// 状态：空闲 -> 拖拽中 -> (放入 | 退回) -> 空闲
// 鼠标和触摸都通过 utils.PointerEvent 驱动同一个状态机。
// 所有入口在状态不符时都是空操作。
type DragSystem struct {
	entityManager *ecs.EntityManager
	session       *game.DragSession
	dropZone      ecs.EntityID
	sound         game.SoundPlayer
	pickupSound   string

	viewportWidth  float64
	viewportHeight float64

	onDropped func(item ecs.EntityID)
}

// NewDragSystem 创建拖放控制器
//
// 参数：
//   - em: 实体管理器
//   - session: 场景会话中的拖拽状态
//   - dropZone: 背包实体（需要 Position/Size/DropZone 组件）
//   - sound: 声音接口，可为 nil
//   - pickupSound: 拿起物品时重新播放的共享音效
func NewDragSystem(em *ecs.EntityManager, session *game.DragSession, dropZone ecs.EntityID, sound game.SoundPlayer, pickupSound string) *DragSystem {
	return &DragSystem{
		entityManager: em,
		session:       session,
		dropZone:      dropZone,
		sound:         sound,
		pickupSound:   pickupSound,
	}
}

// SetViewport 设置视口尺寸，拖拽中的物品不能超出视口
func (s *DragSystem) SetViewport(width, height float64) {
	s.viewportWidth = width
	s.viewportHeight = height
}

// SetOnDropped 设置物品放入背包后的回调（在物品被标记删除之后调用）
func (s *DragSystem) SetOnDropped(fn func(item ecs.EntityID)) {
	s.onDropped = fn
}

// IsDragging 是否有进行中的拖拽
func (s *DragSystem) IsDragging() bool {
	return s.session.Active
}

// HandlePointer 把一个指针事件分发到对应的状态机入口
func (s *DragSystem) HandlePointer(ev utils.PointerEvent) {
	switch ev.Type {
	case utils.PointerDown:
		if item, ok := s.ItemAt(ev.X, ev.Y); ok {
			s.BeginDrag(item, ev.X, ev.Y)
		}
	case utils.PointerMove:
		s.UpdateDrag(ev.X, ev.Y)
	case utils.PointerUp:
		s.EndDrag(ev.X, ev.Y)
	}
}

// BeginDrag 开始拖拽物品
//
// 只在空闲时有效；拖拽中再次调用返回 false 且不改变状态。
// 记录按下点相对物品左上角的偏移，把物品"抬起"（半透明、置顶、固定在当前位置），
// 并从头播放拾取音效。
//
// 返回：
//   - bool: 是否开始了拖拽
func (s *DragSystem) BeginDrag(item ecs.EntityID, pointerX, pointerY float64) bool {
	if s.session.Active {
		return false
	}
	if !ecs.HasComponent[*components.DraggableComponent](s.entityManager, item) {
		return false
	}
	style, ok := ecs.GetComponent[*components.StyleComponent](s.entityManager, item)
	if !ok {
		return false
	}
	rect, ok := entityRect(s.entityManager, item)
	if !ok {
		return false
	}

	s.session.Begin(item, pointerX-rect.X, pointerY-rect.Y)

	style.Fixed = true
	style.Left = rect.X
	style.Top = rect.Y
	style.Opacity = components.LiftedOpacity
	style.ZIndex = components.LiftedZIndex
	style.Cursor = components.CursorGrabbing

	if s.sound != nil && s.pickupSound != "" {
		s.sound.RestartSound(s.pickupSound)
	}

	log.Printf("[DragSystem] 开始拖拽实体 %d，偏移 (%.0f, %.0f)", item, s.session.OffsetX, s.session.OffsetY)
	return true
}

// UpdateDrag 移动拖拽中的物品
//
// 新位置 = 指针位置 - 偏移，两个轴都限制在 [0, 视口尺寸 - 物品尺寸]。
// 没有拖拽时为空操作。
//
// 返回：
//   - bool: 是否移动了物品
func (s *DragSystem) UpdateDrag(pointerX, pointerY float64) bool {
	if !s.session.Active {
		return false
	}

	style, ok := ecs.GetComponent[*components.StyleComponent](s.entityManager, s.session.Item)
	if !ok {
		// 物品已经不存在
		s.session.Clear()
		return false
	}
	size, ok := ecs.GetComponent[*components.SizeComponent](s.entityManager, s.session.Item)
	if !ok {
		s.session.Clear()
		return false
	}

	style.Left = utils.ClampPosition(pointerX-s.session.OffsetX, s.viewportWidth-size.Width)
	style.Top = utils.ClampPosition(pointerY-s.session.OffsetY, s.viewportHeight-size.Height)
	return true
}

// EndDrag 结束拖拽
//
// 释放点在背包矩形（向外扩展容差）内时移除物品并通知收集进度；
// 否则清除全部覆盖样式，物品回到布局位置。两种情况都回到空闲状态。
//
// 返回：
//   - DropResult: 放入、退回，或没有进行中的拖拽
func (s *DragSystem) EndDrag(pointerX, pointerY float64) DropResult {
	if !s.session.Active {
		return DropNone
	}

	item := s.session.Item
	s.session.Clear()

	if !s.entityManager.IsAlive(item) {
		return DropNone
	}

	if s.InDropZone(pointerX, pointerY) {
		s.entityManager.DestroyEntity(item)
		log.Printf("[DragSystem] 实体 %d 放入背包 (%.0f, %.0f)", item, pointerX, pointerY)
		if s.onDropped != nil {
			s.onDropped(item)
		}
		return DropInside
	}

	if style, ok := ecs.GetComponent[*components.StyleComponent](s.entityManager, item); ok {
		style.Reset(components.CursorGrab)
	}
	log.Printf("[DragSystem] 实体 %d 退回原位", item)
	return DropReturned
}

// CancelDrag 放弃进行中的拖拽，物品回到布局位置（暂停、切换场景时调用）
func (s *DragSystem) CancelDrag() {
	if !s.session.Active {
		return
	}
	item := s.session.Item
	s.session.Clear()

	if style, ok := ecs.GetComponent[*components.StyleComponent](s.entityManager, item); ok {
		style.Reset(components.CursorGrab)
	}
	log.Printf("[DragSystem] 取消拖拽实体 %d", item)
}

// InDropZone 点是否在背包的有效区域内（边界包含）
// 背包不存在时总是返回 false
func (s *DragSystem) InDropZone(x, y float64) bool {
	zone, ok := ecs.GetComponent[*components.DropZoneComponent](s.entityManager, s.dropZone)
	if !ok {
		return false
	}
	rect, ok := layoutRect(s.entityManager, s.dropZone)
	if !ok {
		return false
	}
	return utils.RectContains(rect, x, y, zone.Tolerance)
}

// ItemAt 返回指针下最上层的可拖拽物品
// 层级相同时后创建的物品在上面
func (s *DragSystem) ItemAt(x, y float64) (ecs.EntityID, bool) {
	var (
		found   ecs.EntityID
		foundZ  int
		hasItem bool
	)

	for _, id := range ecs.GetEntitiesWith2[*components.DraggableComponent, *components.StyleComponent](s.entityManager) {
		style, _ := ecs.GetComponent[*components.StyleComponent](s.entityManager, id)
		if style.Hidden {
			continue
		}
		rect, ok := entityRect(s.entityManager, id)
		if !ok || !utils.RectContains(rect, x, y, 0) {
			continue
		}
		// 实体按ID升序遍历，>= 让后创建的物品优先
		if !hasItem || style.ZIndex >= foundZ {
			found, foundZ, hasItem = id, style.ZIndex, true
		}
	}
	return found, hasItem
}

// CursorAt 返回指针位置应显示的光标样式
func (s *DragSystem) CursorAt(x, y float64) components.CursorStyle {
	if s.session.Active {
		return components.CursorGrabbing
	}
	item, ok := s.ItemAt(x, y)
	if !ok {
		return components.CursorDefault
	}
	style, _ := ecs.GetComponent[*components.StyleComponent](s.entityManager, item)
	return style.Cursor
}
