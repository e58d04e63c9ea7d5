package scenes

import (
	"image/color"

	"github.com/decker502/bagwalk/pkg/modules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawHUDText 在屏幕左上角附近绘制一行带阴影的文字
func drawHUDText(screen *ebiten.Image, face text.Face, str string, x, y float64) {
	shadow := &text.DrawOptions{}
	shadow.GeoM.Translate(x+1, y+1)
	shadow.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, str, face, shadow)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(modules.TextColor)
	text.Draw(screen, str, face, op)
}
