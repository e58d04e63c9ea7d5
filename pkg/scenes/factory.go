package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/game"
)

// NewSceneFactory 创建场景工厂
//
// 收集场景和探索场景每次创建时重新读取配置，
// 配置覆盖目录中的修改在下一次加载时生效。
func NewSceneFactory(deps Deps) game.SceneFactory {
	return func(sceneID string) (game.Scene, error) {
		switch sceneID {
		case config.SceneMenu:
			return NewMenuScene(deps), nil

		case config.SceneCollect:
			cfg, err := config.LoadCollectConfig(config.ScenePath(sceneID))
			if err != nil {
				return nil, err
			}
			deps.preloadSounds([]string{cfg.PickupSound})
			return NewCollectScene(deps, cfg), nil

		case config.SceneExplore:
			cfg, err := config.LoadExploreConfig(config.ScenePath(sceneID))
			if err != nil {
				return nil, err
			}
			for _, missing := range cfg.MissingReferences() {
				log.Printf("[ExploreScene] Warning: %s", missing)
			}
			deps.preloadSounds(cfg.SoundPaths())
			return NewExploreScene(deps, cfg), nil
		}
		return nil, fmt.Errorf("unknown scene %q", sceneID)
	}
}

// soundPreloader 可以提前解码音效的声音实现（AudioManager）
type soundPreloader interface {
	PreloadSounds(paths []string)
}

// preloadSounds 在场景创建前解码音效，声音实现不支持时跳过
func (d Deps) preloadSounds(paths []string) {
	if p, ok := d.Sound.(soundPreloader); ok {
		p.PreloadSounds(paths)
	}
}

func logSceneError(err error) {
	log.Printf("[Scenes] Error: %v", err)
}
