package systems

import (
	"log"
	"time"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/decker502/bagwalk/pkg/game"
)

// overlayZIndex 完成图的层级，高于背包，低于拖拽中的物品
const overlayZIndex = 10

// CollectionSystem 收集进度
//
// 每次物品放入背包后重新统计剩余物品；剩余为 0 时延迟一小段时间
// （等布局稳定）再显示完成图。完成图在一个会话中只出现一次。
type CollectionSystem struct {
	entityManager *ecs.EntityManager
	scheduler     *game.Scheduler
	dropZone      ecs.EntityID

	delay   time.Duration
	fade    time.Duration
	overlay components.SpriteComponent

	total     int
	collected int

	scheduled    bool
	completed    bool
	overlayID    ecs.EntityID
	onCompletion func()
}

// NewCollectionSystem 创建收集进度系统
//
// 参数：
//   - em: 实体管理器
//   - scheduler: 场景会话的调度器
//   - dropZone: 背包实体
//   - delay: 最后一个物品放入到显示完成图的延迟
//   - fade: 完成图动画时长
//   - overlay: 完成图的精灵
func NewCollectionSystem(em *ecs.EntityManager, scheduler *game.Scheduler, dropZone ecs.EntityID, delay, fade time.Duration, overlay components.SpriteComponent) *CollectionSystem {
	s := &CollectionSystem{
		entityManager: em,
		scheduler:     scheduler,
		dropZone:      dropZone,
		delay:         delay,
		fade:          fade,
		overlay:       overlay,
	}
	s.total = s.Remaining()
	return s
}

// SetOnCompletion 设置完成图出现时的回调
func (s *CollectionSystem) SetOnCompletion(fn func()) {
	s.onCompletion = fn
}

// Remaining 当前剩余（未收集）物品数量
func (s *CollectionSystem) Remaining() int {
	return len(ecs.GetEntitiesWith1[*components.DraggableComponent](s.entityManager))
}

// Collected 已收集的物品数量
func (s *CollectionSystem) Collected() int {
	return s.collected
}

// Total 场景开始时的物品数量
func (s *CollectionSystem) Total() int {
	return s.total
}

// IsComplete 完成图是否已经出现
func (s *CollectionSystem) IsComplete() bool {
	return s.completed
}

// Overlay 返回完成图实体，未出现时返回 0
func (s *CollectionSystem) Overlay() ecs.EntityID {
	return s.overlayID
}

// OnItemRemoved 物品放入背包后调用
// 剩余为 0 时安排显示完成图（只安排一次）
func (s *CollectionSystem) OnItemRemoved() {
	s.collected++
	remaining := s.Remaining()
	log.Printf("[CollectionSystem] 已收集 %d，剩余 %d", s.collected, remaining)

	if remaining > 0 || s.scheduled {
		return
	}
	s.scheduled = true
	s.scheduler.After(s.delay, func() {
		s.ShowCompletion()
	})
}

// ShowCompletion 显示完成图
//
// 记录背包此刻的矩形，隐藏背包，在同一位置创建同样大小的完成图。
// 重复调用只有第一次生效。背包不存在时只标记完成，不创建完成图。
//
// 返回：
//   - bool: 本次调用是否显示了完成图
func (s *CollectionSystem) ShowCompletion() bool {
	if s.completed {
		return false
	}
	s.completed = true

	rect, ok := layoutRect(s.entityManager, s.dropZone)
	if !ok {
		log.Printf("[CollectionSystem] Warning: 背包不存在，跳过完成图")
		return false
	}

	if style, ok := ecs.GetComponent[*components.StyleComponent](s.entityManager, s.dropZone); ok {
		style.Opacity = 0
		style.Hidden = true
	}

	em := s.entityManager
	s.overlayID = em.CreateEntity()
	ecs.AddComponent(em, s.overlayID, &components.PositionComponent{X: rect.X, Y: rect.Y})
	ecs.AddComponent(em, s.overlayID, &components.SizeComponent{Width: rect.W, Height: rect.H})
	sprite := s.overlay
	ecs.AddComponent(em, s.overlayID, &sprite)
	style := components.DefaultStyle(components.CursorDefault)
	style.ZIndex = overlayZIndex
	ecs.AddComponent(em, s.overlayID, &style)
	ecs.AddComponent(em, s.overlayID, &components.OverlayComponent{
		Target:   s.dropZone,
		Duration: s.fade.Seconds(),
	})

	log.Printf("[CollectionSystem] 全部收集完成，完成图 (%.0f, %.0f, %.0fx%.0f)", rect.X, rect.Y, rect.W, rect.H)
	if s.onCompletion != nil {
		s.onCompletion()
	}
	return true
}
