package entities

import (
	"image/color"
	"log"
	"path"
	"strings"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageLoader 工厂函数加载图片用的接口
// *game.ResourceManager 实现了该接口；测试中可以传 nil，全部使用占位矩形
type ImageLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}

// 占位颜色（图片缺失时使用）
var (
	placeholderBag    = color.RGBA{R: 139, G: 94, B: 60, A: 255}
	placeholderItem   = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	placeholderPlayer = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	placeholderProp   = color.RGBA{R: 110, G: 140, B: 90, A: 255}
	placeholderPickup = color.RGBA{R: 230, G: 180, B: 40, A: 255}
	placeholderEffect = color.RGBA{R: 200, G: 90, B: 200, A: 255}
	placeholderScene  = color.RGBA{R: 40, G: 44, B: 52, A: 255}
)

// newSprite 加载图片并创建精灵组件
// 图片为空或加载失败时返回占位精灵，标签为资源名
func newSprite(rm ImageLoader, imagePath string, fallback color.RGBA, label string) *components.SpriteComponent {
	sprite := &components.SpriteComponent{
		Color: fallback,
		Label: label,
	}
	if imagePath == "" {
		return sprite
	}
	if label == "" {
		sprite.Label = strings.TrimSuffix(path.Base(imagePath), path.Ext(imagePath))
	}
	if rm == nil {
		return sprite
	}

	img, err := rm.LoadImage(imagePath)
	if err != nil {
		log.Printf("[entities] Warning: 图片 %s 加载失败，使用占位: %v", imagePath, err)
		return sprite
	}
	sprite.Image = img
	return sprite
}
