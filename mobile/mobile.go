//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，
// 触摸输入与桌面端的鼠标共用同一套拖放逻辑。
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	cp -r data assets mobile/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.bagwalk -o build/android/bagwalk.aar ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/bagwalk/pkg/app"
	"github.com/decker502/bagwalk/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明，资源目录里的文件去掉 "assets/" 前缀访问
	assets, err := assetsSub()
	if err != nil {
		log.Fatalf("资源初始化失败: %v", err)
	}
	embedded.Init(dataFS, assets)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
