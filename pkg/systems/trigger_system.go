package systems

import (
	"cmp"
	"log"
	"slices"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/decker502/bagwalk/pkg/game"
	"github.com/decker502/bagwalk/pkg/utils"
)

// TriggerSystem 一次性触发区域
//
// 每帧按 Order 升序检查所有未触发的区域：
//   - 有前置标志且标志未设置的区域跳过
//   - 没有位置的区域（场景物体缺失）跳过
//   - 玩家左上角与区域左上角在两个轴上的距离都小于阈值时触发
//
// 触发后闩锁永久置位，播放音效（失败忽略），显示效果并安排自动隐藏。
type TriggerSystem struct {
	entityManager *ecs.EntityManager
	session       *game.SceneSession
	sound         game.SoundPlayer
	effects       *EffectSystem
	player        ecs.EntityID
}

// NewTriggerSystem 创建触发系统
func NewTriggerSystem(em *ecs.EntityManager, session *game.SceneSession, sound game.SoundPlayer, effects *EffectSystem, player ecs.EntityID) *TriggerSystem {
	return &TriggerSystem{
		entityManager: em,
		session:       session,
		sound:         sound,
		effects:       effects,
		player:        player,
	}
}

// Update 检查所有触发区域
//
// 返回：
//   - []string: 本帧触发的区域 ID（按检测顺序）
func (s *TriggerSystem) Update() []string {
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.player)
	if !ok {
		return nil
	}

	var fired []string
	for _, id := range s.orderedZones() {
		zone, _ := ecs.GetComponent[*components.TriggerZoneComponent](s.entityManager, id)
		if zone.Fired || !s.session.HasFlag(zone.Requires) {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if !utils.WithinDistance(playerPos.X, playerPos.Y, pos.X, pos.Y, zone.Threshold) {
			continue
		}

		s.fire(zone)
		fired = append(fired, zone.ID)
	}
	return fired
}

func (s *TriggerSystem) fire(zone *components.TriggerZoneComponent) {
	zone.Fired = true
	log.Printf("[TriggerSystem] 触发 %q", zone.ID)

	if zone.Sound != "" && s.sound != nil {
		s.sound.PlaySound(zone.Sound, zone.SoundVolume)
	}
	if zone.EffectID != "" && s.effects != nil {
		s.effects.Show(zone.EffectID)
	}
}

// orderedZones 按 Order 升序返回触发区域，Order 相同按创建顺序
func (s *TriggerSystem) orderedZones() []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.TriggerZoneComponent](s.entityManager)
	slices.SortStableFunc(ids, func(a, b ecs.EntityID) int {
		za, _ := ecs.GetComponent[*components.TriggerZoneComponent](s.entityManager, a)
		zb, _ := ecs.GetComponent[*components.TriggerZoneComponent](s.entityManager, b)
		return cmp.Compare(za.Order, zb.Order)
	})
	return ids
}

// Fired 返回区域是否已触发，区域不存在时返回 false
func (s *TriggerSystem) Fired(triggerID string) bool {
	for _, id := range ecs.GetEntitiesWith1[*components.TriggerZoneComponent](s.entityManager) {
		zone, _ := ecs.GetComponent[*components.TriggerZoneComponent](s.entityManager, id)
		if zone.ID == triggerID {
			return zone.Fired
		}
	}
	return false
}
