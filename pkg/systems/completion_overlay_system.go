package systems

import (
	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/decker502/bagwalk/pkg/utils"
)

// 完成图出现动画的起始缩放
const overlayStartScale = 0.5

// CompletionOverlaySystem 完成图的动画和位置同步
type CompletionOverlaySystem struct {
	entityManager *ecs.EntityManager
}

// NewCompletionOverlaySystem 创建完成图系统
func NewCompletionOverlaySystem(em *ecs.EntityManager) *CompletionOverlaySystem {
	return &CompletionOverlaySystem{entityManager: em}
}

// Update 推进出现动画
func (s *CompletionOverlaySystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.OverlayComponent](s.entityManager) {
		overlay, _ := ecs.GetComponent[*components.OverlayComponent](s.entityManager, id)
		if overlay.Elapsed < overlay.Duration {
			overlay.Elapsed += deltaTime
		}
	}
}

// Sync 把完成图的矩形同步为目标（背包）当前的布局矩形
// 视口尺寸变化、重新布局之后调用；目标已不存在时保持原位
func (s *CompletionOverlaySystem) Sync() {
	for _, id := range ecs.GetEntitiesWith3[*components.OverlayComponent, *components.PositionComponent, *components.SizeComponent](s.entityManager) {
		overlay, _ := ecs.GetComponent[*components.OverlayComponent](s.entityManager, id)
		rect, ok := layoutRect(s.entityManager, overlay.Target)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		size, _ := ecs.GetComponent[*components.SizeComponent](s.entityManager, id)
		pos.X, pos.Y = rect.X, rect.Y
		size.Width, size.Height = rect.W, rect.H
	}
}

// OverlayAppearance 返回完成图当前的缩放和透明度
// 缩放从 0.5 到 1，透明度从 0 到 1，均使用缓出曲线
func OverlayAppearance(overlay *components.OverlayComponent) (scale, alpha float64) {
	t := utils.EaseOutCubic(overlay.Progress())
	return utils.Lerp(overlayStartScale, 1, t), t
}
