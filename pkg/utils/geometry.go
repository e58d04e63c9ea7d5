// Package utils 提供通用工具函数
//
// geometry.go 提供交互引擎共用的几何判定：
//   - RectContains：点是否落在（带容差扩展的）矩形内，用于背包投放判定
//   - WithinDistance：按轴独立比较的接近判定，用于场景触发点
//   - RectsOverlap：严格的 AABB 重叠判定，用于道具拾取
//
// 所有坐标使用左上角为原点、Y 轴向下的屏幕/场景坐标。
package utils

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Rect 轴对齐矩形（左上角 + 尺寸）
type Rect struct {
	X, Y float64 // 左上角
	W, H float64 // 宽高
}

// NewRect 创建矩形
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right 返回右边界X坐标
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom 返回下边界Y坐标
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// BB 转换为 chipmunk 包围盒
// 屏幕坐标Y轴向下，因此 B 存放上边界、T 存放下边界，保持 B <= T
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.Right(), T: r.Bottom()}
}

// Expand 返回四周各扩展 margin 后的矩形
func (r Rect) Expand(margin float64) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, H: r.H + 2*margin}
}

// RectContains 判断点 (x, y) 是否位于矩形四周各扩展 tolerance 后的区域内
// 边界包含在内（left-tol <= x <= right+tol）
func RectContains(rect Rect, x, y, tolerance float64) bool {
	return rect.Expand(tolerance).BB().ContainsVect(cp.Vector{X: x, Y: y})
}

// WithinDistance 判断两点在X、Y两个轴上的距离是否都小于 threshold
//
// 注意：这不是欧氏距离。判定区域是以 b 为中心、边长 2*threshold 的正方形（开区间），
// 场景触发点的可达范围依赖这一语义，不要改成圆形判定。
func WithinDistance(ax, ay, bx, by, threshold float64) bool {
	return math.Abs(ax-bx) < threshold && math.Abs(ay-by) < threshold
}

// RectsOverlap 判断两个矩形是否严格重叠（仅边相接不算重叠）
func RectsOverlap(a, b Rect) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// ClampPosition 将坐标限制在 [0, max] 范围内
// max 小于 0 时（元素比容器大）结果为 0
func ClampPosition(v, max float64) float64 {
	return math.Max(0, math.Min(v, max))
}
