//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译，
// 构建前需要把根目录的 data/ 和 assets/ 复制到此目录。
package mobile

import (
	"embed"
	"io/fs"
)

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/scenes
var dataFS embed.FS

func assetsSub() (fs.FS, error) {
	return fs.Sub(assetsFS, "assets")
}
