package systems

import (
	"log"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/decker502/bagwalk/pkg/game"
	"github.com/decker502/bagwalk/pkg/utils"
)

// PickupSystem 道具拾取
// 玩家包围盒与道具包围盒严格重叠时拾取，设置道具提供的标志并隐藏道具
type PickupSystem struct {
	entityManager *ecs.EntityManager
	session       *game.SceneSession
	sound         game.SoundPlayer
	player        ecs.EntityID
}

// NewPickupSystem 创建拾取系统
func NewPickupSystem(em *ecs.EntityManager, session *game.SceneSession, sound game.SoundPlayer, player ecs.EntityID) *PickupSystem {
	return &PickupSystem{
		entityManager: em,
		session:       session,
		sound:         sound,
		player:        player,
	}
}

// Update 检测拾取
//
// 返回：
//   - []string: 本帧拾取的道具 ID
func (s *PickupSystem) Update() []string {
	playerRect, ok := layoutRect(s.entityManager, s.player)
	if !ok {
		return nil
	}

	var picked []string
	for _, id := range ecs.GetEntitiesWith1[*components.PickupComponent](s.entityManager) {
		pickup, _ := ecs.GetComponent[*components.PickupComponent](s.entityManager, id)
		if pickup.Collected {
			continue
		}
		rect, ok := layoutRect(s.entityManager, id)
		if !ok || !utils.RectsOverlap(playerRect, rect) {
			continue
		}

		pickup.Collected = true
		if style, ok := ecs.GetComponent[*components.StyleComponent](s.entityManager, id); ok {
			style.Hidden = true
		}
		s.session.SetFlag(pickup.Grants)
		if s.sound != nil && pickup.Sound != "" {
			s.sound.PlaySound(pickup.Sound, config.DefaultTriggerVolume)
		}

		log.Printf("[PickupSystem] 拾取道具 %q，设置标志 %q", pickup.ID, pickup.Grants)
		picked = append(picked, pickup.ID)
	}
	return picked
}
