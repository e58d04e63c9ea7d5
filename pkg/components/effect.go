package components

import "time"

// EffectComponent 触发区域显示的临时效果
// 显示后经过 Duration 自动隐藏；多个效果可以同时显示
type EffectComponent struct {
	ID       string
	Visible  bool
	Duration time.Duration
}
