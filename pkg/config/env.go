package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// 环境变量名
const (
	EnvScene     = "BAGWALK_SCENE"
	EnvConfigDir = "BAGWALK_CONFIG_DIR"
	EnvAssetsDir = "BAGWALK_ASSETS_DIR"
	EnvVerbose   = "BAGWALK_VERBOSE"
	EnvWatch     = "BAGWALK_WATCH"
)

// EnvConfig 从环境变量（和可选的 .env 文件）读取的启动配置
// 命令行参数优先于这里的值
type EnvConfig struct {
	Scene     string // 启动场景，默认 "menu"
	ConfigDir string // 配置覆盖目录，空表示只用嵌入配置
	AssetsDir string // 图片和音效目录，默认 "assets"
	Verbose   bool
	Watch     bool // 监听配置覆盖目录并热重载
}

// LoadEnv 加载 .env 文件（不存在时忽略）并读取环境变量
//
// 参数：
//   - files: 要加载的 .env 文件，为空时加载当前目录的 ".env"
//
// 返回：
//   - EnvConfig: 启动配置
func LoadEnv(files ...string) EnvConfig {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] Warning: Failed to load .env: %v", err)
	}

	return EnvConfig{
		Scene:     getEnv(EnvScene, SceneMenu),
		ConfigDir: getEnv(EnvConfigDir, ""),
		AssetsDir: getEnv(EnvAssetsDir, "assets"),
		Verbose:   getEnvBool(EnvVerbose, false),
		Watch:     getEnvBool(EnvWatch, false),
	}
}

// getEnv 获取环境变量，不存在时返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool 获取布尔环境变量
func getEnvBool(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
