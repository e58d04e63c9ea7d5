package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the game (scene picker, collect, explore).
// Each scene owns its own ECS world and session state.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现它以接收视口尺寸变化
//
// 触发时机：
//   - 窗口尺寸变化（Layout 收到新的外部尺寸）
//   - 场景刚被切换为当前场景（传入最近一次的视口尺寸）
type Resizable interface {
	OnResize(width, height int)
}

// Exiter 是一个可选接口，场景在被切走时收到 OnExit
// 场景应在这里停止声音、释放会话状态
type Exiter interface {
	OnExit()
}
