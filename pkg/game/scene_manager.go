package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据场景ID创建场景，避免 game 包依赖具体场景实现
type SceneFactory func(sceneID string) (Scene, error)

// SceneManager manages which scene is active.
// Only the current scene's Update and Draw are called.
type SceneManager struct {
	currentScene   Scene
	currentSceneID string
	sceneFactory   SceneFactory

	// 最近一次的视口尺寸，新场景切入时补发给它
	width, height int
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
// 旧场景实现了 Exiter 时先调用 OnExit；新场景实现了 Resizable 时立即收到当前视口尺寸。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if exiter, ok := sm.currentScene.(Exiter); ok && sm.currentScene != scene {
		exiter.OnExit()
	}
	sm.currentScene = scene

	if resizable, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		resizable.OnResize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentSceneID 返回通过 LoadScene 加载的当前场景ID
func (sm *SceneManager) CurrentSceneID() string {
	return sm.currentSceneID
}

// LoadScene 通过工厂创建并切换到指定场景
//
// 参数：
//   - sceneID: 场景ID，如 "menu", "collect", "explore"
//
// 返回：
//   - error: 工厂未设置或创建失败时返回错误，当前场景保持不变
func (sm *SceneManager) LoadScene(sceneID string) error {
	log.Printf("[SceneManager] 加载场景: %s", sceneID)

	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	newScene, err := sm.sceneFactory(sceneID)
	if err != nil {
		return fmt.Errorf("failed to create scene %q: %w", sceneID, err)
	}
	if newScene == nil {
		return fmt.Errorf("scene factory returned nil for %q", sceneID)
	}

	sm.SwitchTo(newScene)
	sm.currentSceneID = sceneID
	log.Printf("[SceneManager] 成功切换到场景: %s", sceneID)
	return nil
}

// Reload 重新创建当前场景（配置热重载时使用）
// 重建失败时保留旧场景并返回错误
func (sm *SceneManager) Reload() error {
	if sm.currentSceneID == "" {
		return nil
	}
	return sm.LoadScene(sm.currentSceneID)
}

// Resize 记录新的视口尺寸并转发给当前场景
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height

	if resizable, ok := sm.currentScene.(Resizable); ok {
		resizable.OnResize(width, height)
	}
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
