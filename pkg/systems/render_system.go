package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/decker502/bagwalk/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// placeholderTextColor 占位矩形上的文字颜色
var placeholderTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// RenderSystem 绘制所有带精灵的实体
//
// 渲染顺序按 ZIndex 升序，层级相同按实体 ID 升序。
//   - 固定位置（Fixed）的实体使用屏幕坐标，不受摄像机影响
//   - 其余实体使用布局/世界坐标，减去摄像机位置
//   - 图片缺失时绘制占位矩形和资源名
//   - 完成图按出现动画缩放和淡入
type RenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

// DrawOrder 返回本帧需要绘制的实体，按绘制顺序排列
// 隐藏或完全透明的实体不绘制
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	var ids []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith3[*components.PositionComponent, *components.SizeComponent, *components.SpriteComponent](s.entityManager) {
		if style, ok := ecs.GetComponent[*components.StyleComponent](s.entityManager, id); ok {
			if style.Hidden || style.Opacity <= 0 {
				continue
			}
		}
		ids = append(ids, id)
	}

	sort.SliceStable(ids, func(i, j int) bool {
		return s.zIndex(ids[i]) < s.zIndex(ids[j])
	})
	return ids
}

// ScreenRect 返回实体在屏幕上的矩形
//
// 参数：
//   - id: 实体ID
//   - cameraX, cameraY: 摄像机左上角的世界坐标
func (s *RenderSystem) ScreenRect(id ecs.EntityID, cameraX, cameraY float64) (utils.Rect, bool) {
	rect, ok := entityRect(s.entityManager, id)
	if !ok {
		return utils.Rect{}, false
	}
	if style, ok := ecs.GetComponent[*components.StyleComponent](s.entityManager, id); ok && style.Fixed {
		return rect, true
	}
	rect.X -= cameraX
	rect.Y -= cameraY
	return rect, true
}

// Draw 绘制所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image, cameraX, cameraY float64) {
	for _, id := range s.DrawOrder() {
		s.drawEntity(screen, id, cameraX, cameraY)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, cameraX, cameraY float64) {
	rect, ok := s.ScreenRect(id, cameraX, cameraY)
	if !ok || rect.W <= 0 || rect.H <= 0 {
		return
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

	alpha := 1.0
	if style, ok := ecs.GetComponent[*components.StyleComponent](s.entityManager, id); ok {
		alpha = style.Opacity
	}

	// 完成图：围绕中心缩放
	if overlay, ok := ecs.GetComponent[*components.OverlayComponent](s.entityManager, id); ok {
		scale, a := OverlayAppearance(overlay)
		cx, cy := rect.X+rect.W/2, rect.Y+rect.H/2
		rect = utils.NewRect(cx-rect.W*scale/2, cy-rect.H*scale/2, rect.W*scale, rect.H*scale)
		alpha *= a
	}

	if sprite.Image == nil {
		s.drawPlaceholder(screen, rect, sprite, alpha)
		return
	}

	// 等比缩放放进矩形并居中
	bounds := sprite.Image.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	scale := min(rect.W/iw, rect.H/ih)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(rect.X+(rect.W-iw*scale)/2, rect.Y+(rect.H-ih*scale)/2)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite.Image, op)
}

func (s *RenderSystem) drawPlaceholder(screen *ebiten.Image, rect utils.Rect, sprite *components.SpriteComponent, alpha float64) {
	fill := sprite.Color
	if fill.A == 0 {
		fill = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	}
	fill = scaleAlpha(fill, alpha)
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), fill, false)

	if sprite.Label == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(rect.X+4, rect.Y+4)
	op.ColorScale.ScaleWithColor(placeholderTextColor)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, sprite.Label, s.face, op)
}

func (s *RenderSystem) zIndex(id ecs.EntityID) int {
	if style, ok := ecs.GetComponent[*components.StyleComponent](s.entityManager, id); ok {
		return style.ZIndex
	}
	return 0
}

// scaleAlpha 按透明度缩放预乘颜色
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
