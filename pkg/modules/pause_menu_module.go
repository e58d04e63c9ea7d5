package modules

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
)

// PauseMenuModule 暂停菜单模块
// 收集场景和探索场景共用：Esc 打开/关闭，打开时场景停止更新
type PauseMenuModule struct {
	ui     *ebitenui.UI
	active bool

	onContinue func()
	onMainMenu func()
}

// PauseMenuCallbacks 暂停菜单回调函数集合
type PauseMenuCallbacks struct {
	OnContinue func() // 关闭菜单后调用（可选）
	OnMainMenu func() // "Main menu" 按钮回调
}

// NewPauseMenuModule 创建暂停菜单模块
//
// 参数：
//   - title: 面板标题
//   - callbacks: 按钮回调
//
// 返回：
//   - *PauseMenuModule: 模块实例，初始未激活
func NewPauseMenuModule(title string, callbacks PauseMenuCallbacks) *PauseMenuModule {
	m := &PauseMenuModule{
		onContinue: callbacks.OnContinue,
		onMainMenu: callbacks.OnMainMenu,
	}
	face := UIFace()

	root, panel := NewCenteredPanel(300, 180)
	panel.AddChild(NewLabel(title, face, TextColor))
	panel.AddChild(NewButton("Resume", face, m.Hide))
	panel.AddChild(NewButton("Main menu", face, m.mainMenu))
	panel.AddChild(NewLabel("Esc to resume", face, HintColor))

	m.ui = &ebitenui.UI{Container: root}
	return m
}

// IsActive 菜单是否打开
func (m *PauseMenuModule) IsActive() bool {
	return m.active
}

// Show 打开菜单
func (m *PauseMenuModule) Show() {
	if m.active {
		return
	}
	m.active = true
	log.Printf("[PauseMenuModule] 暂停")
}

// Hide 关闭菜单并通知场景继续
func (m *PauseMenuModule) Hide() {
	if !m.active {
		return
	}
	m.active = false
	log.Printf("[PauseMenuModule] 继续")
	if m.onContinue != nil {
		m.onContinue()
	}
}

// Toggle 切换菜单
func (m *PauseMenuModule) Toggle() {
	if m.active {
		m.Hide()
	} else {
		m.Show()
	}
}

func (m *PauseMenuModule) mainMenu() {
	m.active = false
	if m.onMainMenu != nil {
		m.onMainMenu()
	}
}

// Update 菜单打开时处理界面输入
func (m *PauseMenuModule) Update() {
	if m.active {
		m.ui.Update()
	}
}

// Draw 菜单打开时绘制
func (m *PauseMenuModule) Draw(screen *ebiten.Image) {
	if m.active {
		m.ui.Draw(screen)
	}
}
