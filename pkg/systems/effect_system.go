package systems

import (
	"log"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/decker502/bagwalk/pkg/game"
)

// EffectSystem 触发效果的显示和自动隐藏
type EffectSystem struct {
	entityManager *ecs.EntityManager
	scheduler     *game.Scheduler
}

// NewEffectSystem 创建效果系统
func NewEffectSystem(em *ecs.EntityManager, scheduler *game.Scheduler) *EffectSystem {
	return &EffectSystem{
		entityManager: em,
		scheduler:     scheduler,
	}
}

// Find 按 ID 查找效果实体
func (s *EffectSystem) Find(effectID string) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.EffectComponent](s.entityManager) {
		effect, _ := ecs.GetComponent[*components.EffectComponent](s.entityManager, id)
		if effect.ID == effectID {
			return id, true
		}
	}
	return 0, false
}

// Show 显示效果，并在效果时长后自动隐藏
//
// 隐藏回调执行时效果实体可能已被删除，此时什么也不做。
//
// 返回：
//   - bool: 效果是否存在
func (s *EffectSystem) Show(effectID string) bool {
	id, ok := s.Find(effectID)
	if !ok {
		log.Printf("[EffectSystem] Warning: 效果 %q 不存在", effectID)
		return false
	}

	effect, _ := ecs.GetComponent[*components.EffectComponent](s.entityManager, id)
	s.setVisible(id, true)

	s.scheduler.After(effect.Duration, func() {
		s.setVisible(id, false)
	})
	log.Printf("[EffectSystem] 显示效果 %q，%v 后隐藏", effectID, effect.Duration)
	return true
}

// IsVisible 效果是否正在显示
func (s *EffectSystem) IsVisible(effectID string) bool {
	id, ok := s.Find(effectID)
	if !ok {
		return false
	}
	effect, _ := ecs.GetComponent[*components.EffectComponent](s.entityManager, id)
	return effect.Visible
}

func (s *EffectSystem) setVisible(id ecs.EntityID, visible bool) {
	effect, ok := ecs.GetComponent[*components.EffectComponent](s.entityManager, id)
	if !ok {
		return
	}
	effect.Visible = visible
	if style, ok := ecs.GetComponent[*components.StyleComponent](s.entityManager, id); ok {
		style.Hidden = !visible
	}
}
