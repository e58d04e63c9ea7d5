package modules

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// 界面配色
var (
	panelColor       = color.NRGBA{R: 0x10, G: 0x12, B: 0x18, A: 210}
	buttonIdleColor  = color.NRGBA{R: 0x3a, G: 0x3f, B: 0x4b, A: 255}
	buttonHoverColor = color.NRGBA{R: 0x4f, G: 0x56, B: 0x66, A: 255}
	buttonPressColor = color.NRGBA{R: 0x29, G: 0x2d, B: 0x36, A: 255}

	// TextColor 界面文字颜色
	TextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// HintColor 提示文字颜色
	HintColor = color.NRGBA{R: 0xb0, G: 0xb4, B: 0xbe, A: 0xff}
)

// UIFace 返回界面使用的字体（ebiten 内置的 7x13 点阵字体，不需要加载字体文件）
func UIFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// NewButton 创建一个纯色按钮
func NewButton(label string, face text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(buttonIdleColor),
			Hover:   imageui.NewNineSliceColor(buttonHoverColor),
			Pressed: imageui.NewNineSliceColor(buttonPressColor),
		}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: TextColor}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 36),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// NewLabel 创建居中文字
func NewLabel(str string, face text.Face, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(str, &face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

// NewCenteredPanel 创建居中的竖直面板和承载它的根容器
func NewCenteredPanel(minWidth, minHeight int) (root, panel *widget.Container) {
	panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 32, Right: 32}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, minHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	root = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return root, panel
}
