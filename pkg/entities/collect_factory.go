package entities

import (
	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/ecs"
)

// NewBagEntity 创建背包（放置区域）实体
// 位置由布局系统根据视口计算
//
// 参数：
//   - em: 实体管理器
//   - rm: 图片加载器，可为 nil
//   - bag: 背包配置
//
// 返回：
//   - ecs.EntityID: 背包实体ID
func NewBagEntity(em *ecs.EntityManager, rm ImageLoader, bag config.BagConfig) ecs.EntityID {
	id := em.CreateEntity()
	style := components.DefaultStyle(components.CursorDefault)

	ecs.AddComponent(em, id, &components.PositionComponent{})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: bag.Width, Height: bag.Height})
	ecs.AddComponent(em, id, newSprite(rm, bag.Image, placeholderBag, "bag"))
	ecs.AddComponent(em, id, &style)
	ecs.AddComponent(em, id, &components.DropZoneComponent{Tolerance: bag.Tolerance})
	return id
}

// NewItemEntity 创建可拖拽物品实体
//
// 参数：
//   - em: 实体管理器
//   - rm: 图片加载器，可为 nil
//   - item: 物品配置（Column 已规范化为 left/right）
//   - slot: 物品在配置中的顺序，布局和退回时按此排序
//   - layout: 物品尺寸
//
// 返回：
//   - ecs.EntityID: 物品实体ID
func NewItemEntity(em *ecs.EntityManager, rm ImageLoader, item config.ItemConfig, slot int, layout config.ItemLayout) ecs.EntityID {
	column := components.ColumnLeft
	if item.Column == "right" {
		column = components.ColumnRight
	}

	id := em.CreateEntity()
	style := components.DefaultStyle(components.CursorGrab)

	ecs.AddComponent(em, id, &components.PositionComponent{})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: layout.ItemWidth, Height: layout.ItemHeight})
	ecs.AddComponent(em, id, newSprite(rm, item.Image, placeholderItem, item.ID))
	ecs.AddComponent(em, id, &style)
	ecs.AddComponent(em, id, &components.DraggableComponent{
		ItemID: item.ID,
		Column: column,
		Slot:   slot,
	})
	return id
}

// NewCompletionSprite 创建完成图精灵，实体由收集系统在背包位置创建
func NewCompletionSprite(rm ImageLoader, imagePath string) components.SpriteComponent {
	return *newSprite(rm, imagePath, placeholderPickup, "")
}
