// validate_scenes 检查场景配置文件
//
// 用法：
//
//	go run ./cmd/validate_scenes -root . -assets assets
//
// 依次解析 data/scenes 下的每个 YAML 文件，报告校验错误、
// 引用不存在的 prop/效果，以及缺失的图片和音效文件。
// 有任何错误时以状态码 1 退出；缺失资源只是警告（运行时使用占位图形）。
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/embedded"
)

func main() {
	root := flag.String("root", ".", "项目根目录（包含 data/scenes）")
	assets := flag.String("assets", "assets", "资源目录")
	strict := flag.Bool("strict", false, "缺失资源也视为错误")
	flag.Parse()

	embedded.Init(os.DirFS(*root), os.DirFS(*assets))

	files, err := embedded.Glob("data/scenes/*.yaml")
	if err != nil {
		fmt.Printf("❌ 查找场景配置失败: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("❌ %s 下没有场景配置\n", filepath.Join(*root, "data", "scenes"))
		os.Exit(1)
	}

	failures := 0
	for _, file := range files {
		errs, warnings := validate(file)
		if len(errs) == 0 {
			fmt.Printf("✅ %s\n", file)
		}
		for _, e := range errs {
			fmt.Printf("❌ %s: %s\n", file, e)
		}
		for _, w := range warnings {
			fmt.Printf("⚠️  %s: %s\n", file, w)
		}
		failures += len(errs)
		if *strict {
			failures += len(warnings)
		}
	}

	if failures > 0 {
		fmt.Printf("❌ 共 %d 个问题\n", failures)
		os.Exit(1)
	}
}

// validate 校验单个场景文件，返回错误和警告
func validate(file string) (errs []string, warnings []string) {
	var assetPaths []string

	switch id := config.SceneIDFromPath(file); id {
	case config.SceneCollect:
		cfg, err := config.LoadCollectConfig(file)
		if err != nil {
			return []string{err.Error()}, nil
		}
		assetPaths = cfg.AssetPaths()

	case config.SceneExplore:
		cfg, err := config.LoadExploreConfig(file)
		if err != nil {
			return []string{err.Error()}, nil
		}
		warnings = append(warnings, cfg.MissingReferences()...)
		assetPaths = cfg.AssetPaths()

	default:
		return nil, []string{fmt.Sprintf("unknown scene id %q, file skipped", id)}
	}

	for _, p := range assetPaths {
		if !embedded.Exists(p) {
			warnings = append(warnings, fmt.Sprintf("missing asset %s", p))
		}
	}
	return errs, warnings
}
