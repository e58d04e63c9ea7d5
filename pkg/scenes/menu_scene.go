package scenes

import (
	"image/color"

	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/modules"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
)

var menuBackground = color.RGBA{R: 24, G: 26, B: 33, A: 255}

// MenuScene 主菜单：选择收集场景或探索场景
type MenuScene struct {
	deps Deps
	ui   *ebitenui.UI
}

// NewMenuScene 创建主菜单
func NewMenuScene(deps Deps) *MenuScene {
	s := &MenuScene{deps: deps}
	face := modules.UIFace()

	root, panel := modules.NewCenteredPanel(320, 220)
	panel.AddChild(modules.NewLabel("Bag & Walk", face, modules.TextColor))
	panel.AddChild(modules.NewButton("Pack the bag", face, func() { s.open(config.SceneCollect) }))
	panel.AddChild(modules.NewButton("Explore the room", face, func() { s.open(config.SceneExplore) }))
	panel.AddChild(modules.NewLabel("F11 fullscreen  M mute", face, modules.HintColor))

	s.ui = &ebitenui.UI{Container: root}
	return s
}

// open 切换到指定场景，失败时留在菜单
func (s *MenuScene) open(sceneID string) {
	if s.deps.Scenes == nil {
		return
	}
	if err := s.deps.Scenes.LoadScene(sceneID); err != nil {
		logSceneError(err)
	}
}

// Update 更新菜单
func (s *MenuScene) Update(deltaTime float64) {
	s.ui.Update()
}

// Draw 绘制菜单
func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackground)
	s.ui.Draw(screen)
}
