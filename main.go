package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/bagwalk/pkg/app"
	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 环境变量（和 .env）提供默认值，命令行参数优先
	env := config.LoadEnv()

	sceneFlag := flag.String("scene", env.Scene, "启动场景: menu, collect, explore")
	verboseFlag := flag.Bool("verbose", env.Verbose, "输出详细日志")
	configFlag := flag.String("config", env.ConfigDir, "配置覆盖目录（其中的 scenes/*.yaml 优先于内置配置）")
	assetsFlag := flag.String("assets", env.AssetsDir, "图片和音效目录")
	watchFlag := flag.Bool("watch", env.Watch, "监听配置覆盖目录并自动重新加载场景")
	flag.Parse()

	embedded.Init(dataFS, os.DirFS(*assetsFlag))
	embedded.SetDataOverrideDir(*configFlag)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verboseFlag,
		Scene:   *sceneFlag,
		Watch:   *watchFlag,
	})
	if err != nil {
		// 非 verbose 模式下 NewApp 会丢弃日志，这里恢复输出以便看到错误
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowTitle("Bag & Walk")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
