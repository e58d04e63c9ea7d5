package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现
// Image 为空时渲染系统用 Color 绘制占位矩形，并在其上绘制 Label
type SpriteComponent struct {
	Image *ebiten.Image
	Color color.RGBA // 占位颜色（图片缺失时使用）
	Label string     // 占位文字，一般是资源名
}
