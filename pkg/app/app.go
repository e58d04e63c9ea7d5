// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，桌面端（main.go）和移动端（mobile/）共用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/embedded"
	"github.com/decker502/bagwalk/pkg/game"
	"github.com/decker502/bagwalk/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName 存储目录和窗口标题使用的名称
const AppName = "bagwalk"

// sampleRate 音频上下文采样率
const sampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Scene 启动场景（menu / collect / explore）
	Scene string
	// Watch 监听配置覆盖目录，场景配置修改后自动重新加载当前场景
	Watch bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	watcher         *config.Watcher
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("embedded resources not initialized")
	}

	audioContext := audio.NewContext(sampleRate)
	resourceManager := game.NewResourceManager(audioContext)

	// 设置存储，打开失败时降级为仅内存设置
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: AppName}); err != nil {
		log.Printf("[App] Warning: 无法打开存储: %v", err)
	} else {
		gdataManager = m
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized (volume %.2f)", audioManager.GetSoundVolume())

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(scenes.Deps{
		Resources: resourceManager,
		Sound:     audioManager,
		Scenes:    sceneManager,
	}))

	startScene := cfg.Scene
	if startScene == "" {
		startScene = config.SceneMenu
	}
	if err := sceneManager.LoadScene(startScene); err != nil {
		return nil, fmt.Errorf("场景加载失败: %w", err)
	}

	a := &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
	}

	if cfg.Watch {
		a.startWatcher()
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

// startWatcher 监听覆盖目录下的场景配置
func (a *App) startWatcher() {
	dir := embedded.OverridePath("data/scenes")
	if dir == "" {
		log.Printf("[App] Warning: 未设置配置覆盖目录，热重载不可用")
		return
	}

	w, err := config.NewWatcher(dir)
	if err != nil {
		log.Printf("[App] Warning: 无法监听 %s: %v", dir, err)
		return
	}
	a.watcher = w
	log.Printf("[App] 监听配置目录: %s", dir)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		a.saveSettings()
	}

	// M 切换静音
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.settingsManager.ToggleSound()
		if !enabled {
			a.audioManager.StopAll()
		}
		log.Printf("[App] 音效: %v", enabled)
		a.saveSettings()
	}

	a.reloadChangedScenes()

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// reloadChangedScenes 当前场景的配置被修改时重新加载
func (a *App) reloadChangedScenes() {
	if a.watcher == nil {
		return
	}
	for _, path := range a.watcher.Drain() {
		if config.SceneIDFromPath(path) != a.sceneManager.CurrentSceneID() {
			continue
		}
		if err := a.sceneManager.Reload(); err != nil {
			// 配置写到一半或有错误时保留旧场景
			log.Printf("[App] Warning: 重新加载 %s 失败: %v", path, err)
			continue
		}
		log.Printf("[App] 已重新加载场景 %s", a.sceneManager.CurrentSceneID())
	}
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: 保存设置失败: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时用黑色填充边缘
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸等于窗口尺寸，场景按视口重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close 停止配置监听和所有声音
func (a *App) Close() error {
	a.audioManager.StopAll()
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}
