package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/decker502/bagwalk/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 场景ID
const (
	SceneMenu    = "menu"
	SceneCollect = "collect"
	SceneExplore = "explore"
)

// 默认值
const (
	DefaultDropTolerance     = 50.0
	DefaultCompletionDelayMs = 100
	DefaultCompletionFadeMs  = 800
	DefaultPlayerSpeed       = 10.0
	DefaultTriggerThreshold  = 150.0
	DefaultTriggerVolume     = 0.7
)

// ScenePath 返回场景配置文件的资源路径
func ScenePath(sceneID string) string {
	return "data/scenes/" + sceneID + ".yaml"
}

// RectConfig 矩形区域（像素）
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ============================================================================
// 收集场景
// ============================================================================

// CollectSceneConfig 收集场景配置
// 物品分布在背包左右两列，全部拖入背包后显示完成图
type CollectSceneConfig struct {
	ID                string       `yaml:"id"`
	Title             string       `yaml:"title"`
	Background        string       `yaml:"background"`        // 背景图片路径（可选）
	PickupSound       string       `yaml:"pickupSound"`       // 拿起物品时的共享音效
	CompletionImage   string       `yaml:"completionImage"`   // 完成图
	CompletionDelayMs int          `yaml:"completionDelayMs"` // 最后一个物品放入后显示完成图的延迟，默认 100
	CompletionFadeMs  int          `yaml:"completionFadeMs"`  // 完成图淡入放大动画时长，默认 800
	Bag               BagConfig    `yaml:"bag"`
	Layout            ItemLayout   `yaml:"layout"`
	Items             []ItemConfig `yaml:"items"`
}

// BagConfig 背包（拖放目标）配置
// 背包始终居中显示
type BagConfig struct {
	Image     string  `yaml:"image"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Tolerance float64 `yaml:"tolerance"` // 有效区域向外扩展的像素，默认 50
}

// ItemLayout 物品的流式布局参数
type ItemLayout struct {
	ItemWidth  float64 `yaml:"itemWidth"`
	ItemHeight float64 `yaml:"itemHeight"`
	Gap        float64 `yaml:"gap"`    // 同列物品之间的间距
	Margin     float64 `yaml:"margin"` // 列与背包、列与窗口边缘的间距
}

// ItemConfig 单个可拖拽物品
type ItemConfig struct {
	ID     string `yaml:"id"`
	Image  string `yaml:"image"`
	Column string `yaml:"column"` // "left" 或 "right"
}

// CompletionDelay 返回完成图延迟
func (c *CollectSceneConfig) CompletionDelay() time.Duration {
	return time.Duration(c.CompletionDelayMs) * time.Millisecond
}

// CompletionFade 返回完成图动画时长
func (c *CollectSceneConfig) CompletionFade() time.Duration {
	return time.Duration(c.CompletionFadeMs) * time.Millisecond
}

// LoadCollectConfig 加载收集场景配置
//
// 参数：
//   - path: 资源路径，如 "data/scenes/collect.yaml"（优先读取覆盖目录）
//
// 返回：
//   - *CollectSceneConfig: 已填充默认值并通过校验的配置
//   - error: 读取、解析或校验失败
func LoadCollectConfig(path string) (*CollectSceneConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file %s: %w", path, err)
	}
	return ParseCollectConfig(data, path)
}

// ParseCollectConfig 从 YAML 数据解析收集场景配置
// source 只用于错误信息
func ParseCollectConfig(data []byte, source string) (*CollectSceneConfig, error) {
	var cfg CollectSceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML from %s: %w", source, err)
	}

	applyCollectDefaults(&cfg)

	if err := validateCollectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid scene config in %s: %w", source, err)
	}
	return &cfg, nil
}

func applyCollectDefaults(cfg *CollectSceneConfig) {
	if cfg.ID == "" {
		cfg.ID = SceneCollect
	}
	if cfg.Bag.Tolerance == 0 {
		cfg.Bag.Tolerance = DefaultDropTolerance
	}
	if cfg.CompletionDelayMs == 0 {
		cfg.CompletionDelayMs = DefaultCompletionDelayMs
	}
	if cfg.CompletionFadeMs == 0 {
		cfg.CompletionFadeMs = DefaultCompletionFadeMs
	}
	if cfg.Layout.ItemWidth == 0 {
		cfg.Layout.ItemWidth = 100
	}
	if cfg.Layout.ItemHeight == 0 {
		cfg.Layout.ItemHeight = 100
	}
	for i := range cfg.Items {
		cfg.Items[i].Column = strings.ToLower(strings.TrimSpace(cfg.Items[i].Column))
		if cfg.Items[i].Column == "" {
			cfg.Items[i].Column = "left"
		}
	}
}

func validateCollectConfig(cfg *CollectSceneConfig) error {
	if cfg.Bag.Width <= 0 || cfg.Bag.Height <= 0 {
		return fmt.Errorf("bag size must be positive, got %.0fx%.0f", cfg.Bag.Width, cfg.Bag.Height)
	}
	if cfg.Bag.Tolerance < 0 {
		return fmt.Errorf("bag tolerance cannot be negative, got %.0f", cfg.Bag.Tolerance)
	}
	if cfg.CompletionDelayMs < 0 || cfg.CompletionFadeMs < 0 {
		return fmt.Errorf("completion timings cannot be negative")
	}
	if cfg.Layout.Gap < 0 || cfg.Layout.Margin < 0 {
		return fmt.Errorf("layout gap and margin cannot be negative")
	}
	if len(cfg.Items) == 0 {
		return fmt.Errorf("at least one item is required")
	}

	seen := make(map[string]bool, len(cfg.Items))
	for i, item := range cfg.Items {
		if item.ID == "" {
			return fmt.Errorf("item %d: id is required", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("item %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = true

		if item.Column != "left" && item.Column != "right" {
			return fmt.Errorf("item %q: column must be one of: left, right, got %q", item.ID, item.Column)
		}
	}
	return nil
}

// ============================================================================
// 探索场景
// ============================================================================

// ExploreSceneConfig 探索场景配置
//
// 场景中的对象分为三类：
//   - props: 固定的场景物体（触发区域的位置来源）
//   - pickups: 可拾取道具，与玩家包围盒重叠时拾取并设置标志
//   - triggers: 一次性触发区域，按列表顺序检测
type ExploreSceneConfig struct {
	ID          string          `yaml:"id"`
	Title       string          `yaml:"title"`
	Background  string          `yaml:"background"`
	Width       float64         `yaml:"width"`  // 场景宽度（像素）
	Height      float64         `yaml:"height"` // 场景高度（像素）
	Player      PlayerConfig    `yaml:"player"`
	KeyBindings KeyBindings     `yaml:"keyBindings"`
	Props       []PropConfig    `yaml:"props"`
	Pickups     []PickupConfig  `yaml:"pickups"`
	Effects     []EffectConfig  `yaml:"effects"`
	Triggers    []TriggerConfig `yaml:"triggers"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`
	Speed  float64 `yaml:"speed"` // 每帧像素，默认 10
}

// KeyBindings 方向键绑定
// 每个方向可以绑定多个按键名称（布局相关的名称，如 "w" 和 "ц"）
type KeyBindings struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// DefaultKeyBindings 返回默认绑定：拉丁布局 WASD 和对应的西里尔布局按键
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:    []string{"w", "ц"},
		Down:  []string{"s", "ы"},
		Left:  []string{"a", "ф"},
		Right: []string{"d", "в"},
	}
}

// PropConfig 固定场景物体
type PropConfig struct {
	ID         string `yaml:"id"`
	Image      string `yaml:"image"`
	RectConfig `yaml:",inline"`
}

// PickupConfig 可拾取道具
type PickupConfig struct {
	ID         string `yaml:"id"`
	Image      string `yaml:"image"`
	Grants     string `yaml:"grants"` // 拾取后设置的标志，默认与 ID 相同
	Sound      string `yaml:"sound"`
	RectConfig `yaml:",inline"`
}

// EffectConfig 触发后显示的效果图
// Screen 为 true 时坐标是屏幕坐标（不随摄像机移动）
type EffectConfig struct {
	ID         string `yaml:"id"`
	Image      string `yaml:"image"`
	DurationMs int    `yaml:"durationMs"`
	Screen     bool   `yaml:"screen"`
	RectConfig `yaml:",inline"`
}

// Duration 返回效果持续时间
func (e EffectConfig) Duration() time.Duration {
	return time.Duration(e.DurationMs) * time.Millisecond
}

// TriggerConfig 一次性触发区域
// 位置取自 Target 指定的 prop 的左上角
type TriggerConfig struct {
	ID        string   `yaml:"id"`
	Target    string   `yaml:"target"`    // prop ID，默认与 ID 相同
	Threshold float64  `yaml:"threshold"` // 每个轴上的距离阈值，默认 150
	Requires  string   `yaml:"requires"`  // 前置标志（可选）
	Sound     string   `yaml:"sound"`     // 触发音效（可选）
	Volume    *float64 `yaml:"volume"`    // 音效音量，默认 0.7
	Effect    string   `yaml:"effect"`    // 效果 ID（可选）
}

// LoadExploreConfig 加载探索场景配置
//
// 参数：
//   - path: 资源路径，如 "data/scenes/explore.yaml"
//
// 返回：
//   - *ExploreSceneConfig: 已填充默认值并通过校验的配置
//   - error: 读取、解析或校验失败
func LoadExploreConfig(path string) (*ExploreSceneConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file %s: %w", path, err)
	}
	return ParseExploreConfig(data, path)
}

// ParseExploreConfig 从 YAML 数据解析探索场景配置
func ParseExploreConfig(data []byte, source string) (*ExploreSceneConfig, error) {
	var cfg ExploreSceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML from %s: %w", source, err)
	}

	applyExploreDefaults(&cfg)

	if err := validateExploreConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid scene config in %s: %w", source, err)
	}
	return &cfg, nil
}

func applyExploreDefaults(cfg *ExploreSceneConfig) {
	if cfg.ID == "" {
		cfg.ID = SceneExplore
	}
	if cfg.Player.Speed == 0 {
		cfg.Player.Speed = DefaultPlayerSpeed
	}

	defaults := DefaultKeyBindings()
	cfg.KeyBindings.Up = normalizeKeys(cfg.KeyBindings.Up, defaults.Up)
	cfg.KeyBindings.Down = normalizeKeys(cfg.KeyBindings.Down, defaults.Down)
	cfg.KeyBindings.Left = normalizeKeys(cfg.KeyBindings.Left, defaults.Left)
	cfg.KeyBindings.Right = normalizeKeys(cfg.KeyBindings.Right, defaults.Right)

	for i := range cfg.Pickups {
		if cfg.Pickups[i].Grants == "" {
			cfg.Pickups[i].Grants = cfg.Pickups[i].ID
		}
	}
	for i := range cfg.Triggers {
		tr := &cfg.Triggers[i]
		if tr.Target == "" {
			tr.Target = tr.ID
		}
		if tr.Threshold == 0 {
			tr.Threshold = DefaultTriggerThreshold
		}
		if tr.Volume == nil {
			v := DefaultTriggerVolume
			tr.Volume = &v
		}
	}
}

// normalizeKeys 按键名称统一小写，空列表使用默认绑定
func normalizeKeys(keys, fallback []string) []string {
	if len(keys) == 0 {
		keys = fallback
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func validateExploreConfig(cfg *ExploreSceneConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("scene size must be positive, got %.0fx%.0f", cfg.Width, cfg.Height)
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %.0fx%.0f", cfg.Player.Width, cfg.Player.Height)
	}
	if cfg.Player.Speed < 0 {
		return fmt.Errorf("player speed cannot be negative, got %.1f", cfg.Player.Speed)
	}

	// 同类对象的 ID 必须唯一，不同类之间可以重名（如道具和标志同名）
	ids := make(map[string]bool)
	checkID := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s id is required", kind)
		}
		if ids[kind+":"+id] {
			return fmt.Errorf("duplicate %s id %q", kind, id)
		}
		ids[kind+":"+id] = true
		return nil
	}

	for _, p := range cfg.Props {
		if err := checkID("prop", p.ID); err != nil {
			return err
		}
	}

	flags := make(map[string]bool)
	for _, p := range cfg.Pickups {
		if err := checkID("pickup", p.ID); err != nil {
			return err
		}
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("pickup %q: size must be positive", p.ID)
		}
		flags[p.Grants] = true
	}

	for _, e := range cfg.Effects {
		if err := checkID("effect", e.ID); err != nil {
			return err
		}
		if e.DurationMs <= 0 {
			return fmt.Errorf("effect %q: durationMs must be positive, got %d", e.ID, e.DurationMs)
		}
	}

	for _, tr := range cfg.Triggers {
		if err := checkID("trigger", tr.ID); err != nil {
			return err
		}
		if tr.Threshold < 0 {
			return fmt.Errorf("trigger %q: threshold cannot be negative", tr.ID)
		}
		if *tr.Volume < 0 || *tr.Volume > 1 {
			return fmt.Errorf("trigger %q: volume must be between 0 and 1, got %.2f", tr.ID, *tr.Volume)
		}
		// 前置标志必须由某个道具提供，否则这个触发区域永远不会触发
		if tr.Requires != "" && !flags[tr.Requires] {
			return fmt.Errorf("trigger %q requires unknown flag %q", tr.ID, tr.Requires)
		}
	}
	return nil
}

// MissingReferences 返回引用了不存在的 prop 或效果的触发区域描述
// 这些触发区域仍然有效：缺少 prop 时跳过检测，缺少效果时只播放声音
func (cfg *ExploreSceneConfig) MissingReferences() []string {
	var missing []string
	for _, tr := range cfg.Triggers {
		if _, ok := cfg.PropByID(tr.Target); !ok {
			missing = append(missing, fmt.Sprintf("trigger %q: prop %q not found", tr.ID, tr.Target))
		}
		if tr.Effect == "" {
			continue
		}
		if _, ok := cfg.EffectByID(tr.Effect); !ok {
			missing = append(missing, fmt.Sprintf("trigger %q: effect %q not found", tr.ID, tr.Effect))
		}
	}
	return missing
}

// EffectByID 查找效果，不存在时返回 false
func (cfg *ExploreSceneConfig) EffectByID(id string) (EffectConfig, bool) {
	for _, e := range cfg.Effects {
		if e.ID == id {
			return e, true
		}
	}
	return EffectConfig{}, false
}

// PropByID 查找 prop，不存在时返回 false
func (cfg *ExploreSceneConfig) PropByID(id string) (PropConfig, bool) {
	for _, p := range cfg.Props {
		if p.ID == id {
			return p, true
		}
	}
	return PropConfig{}, false
}
