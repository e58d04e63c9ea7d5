package config

// AssetPaths 返回收集场景引用的全部资源路径（去重，保持出现顺序）
func (c *CollectSceneConfig) AssetPaths() []string {
	paths := []string{c.Background, c.PickupSound, c.CompletionImage, c.Bag.Image}
	for _, item := range c.Items {
		paths = append(paths, item.Image)
	}
	return uniquePaths(paths)
}

// AssetPaths 返回探索场景引用的全部资源路径（去重，保持出现顺序）
func (cfg *ExploreSceneConfig) AssetPaths() []string {
	paths := []string{cfg.Background, cfg.Player.Image}
	for _, p := range cfg.Props {
		paths = append(paths, p.Image)
	}
	for _, p := range cfg.Pickups {
		paths = append(paths, p.Image, p.Sound)
	}
	for _, e := range cfg.Effects {
		paths = append(paths, e.Image)
	}
	for _, tr := range cfg.Triggers {
		paths = append(paths, tr.Sound)
	}
	return uniquePaths(paths)
}

// SoundPaths 返回探索场景中需要预加载的音效
func (cfg *ExploreSceneConfig) SoundPaths() []string {
	var paths []string
	for _, p := range cfg.Pickups {
		paths = append(paths, p.Sound)
	}
	for _, tr := range cfg.Triggers {
		paths = append(paths, tr.Sound)
	}
	return uniquePaths(paths)
}

func uniquePaths(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, p)
	}
	return result
}
