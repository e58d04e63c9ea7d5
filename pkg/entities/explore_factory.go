package entities

import (
	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/ecs"
)

// 探索场景的绘制层级
const (
	zBackground = -100
	zProp       = 0
	zPickup     = 5
	zPlayer     = 10
	zEffect     = 50
)

// NewBackgroundEntity 创建铺满场景的背景实体
func NewBackgroundEntity(em *ecs.EntityManager, rm ImageLoader, imagePath string, width, height float64) ecs.EntityID {
	id := em.CreateEntity()
	style := components.DefaultStyle(components.CursorDefault)
	style.ZIndex = zBackground

	ecs.AddComponent(em, id, &components.PositionComponent{})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: width, Height: height})
	ecs.AddComponent(em, id, newSprite(rm, imagePath, placeholderScene, ""))
	ecs.AddComponent(em, id, &style)
	return id
}

// NewPlayerEntity 创建玩家实体，位于出生点
//
// 参数：
//   - em: 实体管理器
//   - rm: 图片加载器，可为 nil
//   - player: 玩家配置
//
// 返回：
//   - ecs.EntityID: 玩家实体ID
func NewPlayerEntity(em *ecs.EntityManager, rm ImageLoader, player config.PlayerConfig) ecs.EntityID {
	id := em.CreateEntity()
	style := components.DefaultStyle(components.CursorDefault)
	style.ZIndex = zPlayer

	ecs.AddComponent(em, id, &components.PositionComponent{X: player.SpawnX, Y: player.SpawnY})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: player.Width, Height: player.Height})
	ecs.AddComponent(em, id, newSprite(rm, player.Image, placeholderPlayer, "player"))
	ecs.AddComponent(em, id, &style)
	ecs.AddComponent(em, id, &components.PlayerComponent{Speed: player.Speed})
	return id
}

// NewPropEntity 创建场景物体（触发区域的锚点）
func NewPropEntity(em *ecs.EntityManager, rm ImageLoader, prop config.PropConfig) ecs.EntityID {
	id := em.CreateEntity()
	style := components.DefaultStyle(components.CursorDefault)
	style.ZIndex = zProp

	ecs.AddComponent(em, id, &components.PositionComponent{X: prop.X, Y: prop.Y})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: prop.Width, Height: prop.Height})
	ecs.AddComponent(em, id, newSprite(rm, prop.Image, placeholderProp, prop.ID))
	ecs.AddComponent(em, id, &style)
	return id
}

// NewPickupEntity 创建可拾取道具
func NewPickupEntity(em *ecs.EntityManager, rm ImageLoader, pickup config.PickupConfig) ecs.EntityID {
	id := em.CreateEntity()
	style := components.DefaultStyle(components.CursorDefault)
	style.ZIndex = zPickup

	ecs.AddComponent(em, id, &components.PositionComponent{X: pickup.X, Y: pickup.Y})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: pickup.Width, Height: pickup.Height})
	ecs.AddComponent(em, id, newSprite(rm, pickup.Image, placeholderPickup, pickup.ID))
	ecs.AddComponent(em, id, &style)
	ecs.AddComponent(em, id, &components.PickupComponent{
		ID:     pickup.ID,
		Grants: pickup.Grants,
		Sound:  pickup.Sound,
	})
	return id
}

// NewEffectEntity 创建效果实体，初始隐藏
// Screen 为 true 的效果固定在屏幕坐标上，不随摄像机移动
func NewEffectEntity(em *ecs.EntityManager, rm ImageLoader, effect config.EffectConfig) ecs.EntityID {
	id := em.CreateEntity()
	style := components.DefaultStyle(components.CursorDefault)
	style.ZIndex = zEffect
	style.Hidden = true
	if effect.Screen {
		style.Fixed = true
		style.Left = effect.X
		style.Top = effect.Y
	}

	ecs.AddComponent(em, id, &components.PositionComponent{X: effect.X, Y: effect.Y})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: effect.Width, Height: effect.Height})
	ecs.AddComponent(em, id, newSprite(rm, effect.Image, placeholderEffect, effect.ID))
	ecs.AddComponent(em, id, &style)
	ecs.AddComponent(em, id, &components.EffectComponent{
		ID:       effect.ID,
		Duration: effect.Duration(),
	})
	return id
}

// NewTriggerEntity 创建触发区域
//
// 区域的位置取自目标物体的左上角；目标物体不存在时不添加位置组件，
// 这个区域永远不会触发。
//
// 参数：
//   - em: 实体管理器
//   - trigger: 触发配置（默认值已填充）
//   - order: 检测顺序
//   - target: 目标物体配置，ok 为 false 表示物体缺失
//
// 返回：
//   - ecs.EntityID: 触发区域实体ID
func NewTriggerEntity(em *ecs.EntityManager, trigger config.TriggerConfig, order int, target config.PropConfig, ok bool) ecs.EntityID {
	volume := config.DefaultTriggerVolume
	if trigger.Volume != nil {
		volume = *trigger.Volume
	}

	id := em.CreateEntity()
	if ok {
		ecs.AddComponent(em, id, &components.PositionComponent{X: target.X, Y: target.Y})
	}
	ecs.AddComponent(em, id, &components.TriggerZoneComponent{
		ID:          trigger.ID,
		Order:       order,
		Threshold:   trigger.Threshold,
		Requires:    trigger.Requires,
		Sound:       trigger.Sound,
		SoundVolume: volume,
		EffectID:    trigger.Effect,
	})
	return id
}
