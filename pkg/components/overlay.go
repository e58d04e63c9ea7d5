package components

import "github.com/decker502/bagwalk/pkg/ecs"

// OverlayComponent 完成图
//
// 始终覆盖在 Target（背包）的矩形上，
// 出现时在 Duration 内从 0.5 倍放大到原始大小并淡入。
type OverlayComponent struct {
	Target   ecs.EntityID
	Elapsed  float64 // 已播放时间(秒)
	Duration float64 // 动画总时长(秒)
}

// Progress 返回动画进度 0.0 - 1.0
func (o *OverlayComponent) Progress() float64 {
	if o.Duration <= 0 {
		return 1
	}
	p := o.Elapsed / o.Duration
	if p > 1 {
		return 1
	}
	return p
}
