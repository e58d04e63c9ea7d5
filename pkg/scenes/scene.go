package scenes

import (
	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/entities"
	"github.com/decker502/bagwalk/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// Deps 场景共享的依赖
type Deps struct {
	Resources *game.ResourceManager // 可为 nil，所有图片使用占位图形
	Sound     game.SoundPlayer      // 可为 nil，静音
	Scenes    *game.SceneManager
}

// images 返回图片加载器，Resources 为 nil 时返回 nil 接口
func (d Deps) images() entities.ImageLoader {
	if d.Resources == nil {
		return nil
	}
	return d.Resources
}

// backToMenu 返回主菜单，失败时只记录日志
func (d Deps) backToMenu() {
	if d.Scenes == nil {
		return
	}
	if err := d.Scenes.LoadScene(config.SceneMenu); err != nil {
		logSceneError(err)
	}
}
