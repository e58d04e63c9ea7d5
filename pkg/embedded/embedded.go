// Package embedded 提供游戏资源的统一访问接口
//
// 资源分两类，按路径前缀区分：
//   - "data/": 场景配置，嵌入在二进制中（根目录 embed.go），可被磁盘上的覆盖目录替换
//   - "assets/": 图片和音效，由启动参数指定的文件系统提供（一般是 os.DirFS）
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	dataPrefix   = "data/"
	assetsPrefix = "assets/"
)

var (
	dataFS      fs.FS
	assetsFS    fs.FS
	overrideDir string
	initialized bool
)

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 设置数据和资源文件系统
// 两者的根目录分别对应 "data/" 和 "assets/" 前缀之上的一层，
// 即 dataFS 中应能打开 "data/scenes/collect.yaml"，assetsFS 中应能打开 "images/bag.png"。
// assets 为 nil 时所有资源读取都会失败（渲染使用占位图形）。
func Init(data fs.FS, assets fs.FS) {
	dataFS = data
	assetsFS = assets
	initialized = true
}

// SetDataOverrideDir 设置配置覆盖目录
// 目录中存在同名文件时（相对 "data/" 的路径），优先读取磁盘文件。空字符串表示不覆盖。
func SetDataOverrideDir(dir string) {
	overrideDir = dir
}

// DataOverrideDir 返回当前配置覆盖目录
func DataOverrideDir() string {
	return overrideDir
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一路径分隔符并去掉 "./" 前缀
func normalize(p string) string {
	p = filepath.ToSlash(p)
	return strings.TrimPrefix(p, "./")
}

// resolve 根据路径前缀选择文件系统，返回该文件系统中的路径
func resolve(p string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", errNotInitialized
	}

	p = normalize(p)
	switch {
	case strings.HasPrefix(p, dataPrefix):
		if overrideDir != "" {
			rel := strings.TrimPrefix(p, dataPrefix)
			if info, err := os.Stat(filepath.Join(overrideDir, filepath.FromSlash(rel))); err == nil && !info.IsDir() {
				return os.DirFS(overrideDir), rel, nil
			}
		}
		if dataFS == nil {
			return nil, "", fmt.Errorf("no data filesystem for %s", p)
		}
		return dataFS, p, nil
	case strings.HasPrefix(p, assetsPrefix):
		if assetsFS == nil {
			return nil, "", fmt.Errorf("no assets filesystem for %s", p)
		}
		return assetsFS, strings.TrimPrefix(p, assetsPrefix), nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", p)
}

// Open 打开资源文件
// 路径必须以 "assets/" 或 "data/" 开头
func Open(p string) (fs.File, error) {
	fsys, name, err := resolve(p)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取资源文件内容
// 路径必须以 "assets/" 或 "data/" 开头
func ReadFile(p string) ([]byte, error) {
	fsys, name, err := resolve(p)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查资源文件是否存在
func Exists(p string) bool {
	file, err := Open(p)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配嵌入的配置文件
// 只支持 "data/" 前缀，不查找覆盖目录
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	pattern = normalize(pattern)
	if !strings.HasPrefix(pattern, dataPrefix) {
		return nil, fmt.Errorf("glob only supports 'data/' paths: %s", pattern)
	}
	if dataFS == nil {
		return nil, nil
	}
	return fs.Glob(dataFS, pattern)
}

// OverridePath 返回配置文件在覆盖目录中的磁盘路径（用于热重载监听）
// 没有设置覆盖目录或路径不是 "data/" 开头时返回空字符串
func OverridePath(p string) string {
	p = normalize(p)
	if overrideDir == "" || !strings.HasPrefix(p, dataPrefix) {
		return ""
	}
	return filepath.Join(overrideDir, filepath.FromSlash(path.Clean(strings.TrimPrefix(p, dataPrefix))))
}
