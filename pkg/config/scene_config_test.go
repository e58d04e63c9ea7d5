package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/bagwalk/pkg/embedded"
)

const validCollectYAML = `
title: "Собери рюкзак"
pickupSound: assets/sounds/pickup.mp3
bag:
  image: assets/images/bag.png
  width: 300
  height: 280
items:
  - id: book
    image: assets/images/book.png
    column: left
  - id: pen
    column: RIGHT
  - id: apple
`

const validExploreYAML = `
width: 2000
height: 2000
player:
  width: 100
  height: 120
  spawnX: 0
  spawnY: 1700
props:
  - {id: graymouse, x: 900, y: 1600, width: 80, height: 60}
  - {id: poster, x: 300, y: 400, width: 120, height: 160}
pickups:
  - {id: pinkmouse, x: 400, y: 1700, width: 60, height: 40}
effects:
  - {id: mouses, durationMs: 7000, screen: true, x: 100, y: 100, width: 400, height: 300}
triggers:
  - id: graymouse
    threshold: 100
    requires: pinkmouse
    sound: assets/sounds/mouse_sound.mp3
    effect: mouses
  - id: poster
    volume: 0.3
`

func TestParseCollectConfig(t *testing.T) {
	cfg, err := ParseCollectConfig([]byte(validCollectYAML), "test")
	if err != nil {
		t.Fatalf("ParseCollectConfig() failed: %v", err)
	}

	if cfg.ID != SceneCollect {
		t.Errorf("Expected default ID %q, got %q", SceneCollect, cfg.ID)
	}
	if cfg.Bag.Tolerance != DefaultDropTolerance {
		t.Errorf("Expected default tolerance 50, got %v", cfg.Bag.Tolerance)
	}
	if cfg.CompletionDelay().Milliseconds() != 100 {
		t.Errorf("Expected 100ms completion delay, got %v", cfg.CompletionDelay())
	}
	if cfg.CompletionFade().Milliseconds() != 800 {
		t.Errorf("Expected 800ms fade, got %v", cfg.CompletionFade())
	}

	wantColumns := []string{"left", "right", "left"}
	for i, item := range cfg.Items {
		if item.Column != wantColumns[i] {
			t.Errorf("Item %q column = %q, want %q", item.ID, item.Column, wantColumns[i])
		}
	}
}

func TestParseCollectConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "背包尺寸缺失",
			yaml:    "items: [{id: a}]",
			wantErr: "bag size must be positive",
		},
		{
			name:    "没有物品",
			yaml:    "bag: {width: 10, height: 10}",
			wantErr: "at least one item is required",
		},
		{
			name:    "重复物品",
			yaml:    "bag: {width: 10, height: 10}\nitems: [{id: a}, {id: a}]",
			wantErr: `duplicate id "a"`,
		},
		{
			name:    "非法列",
			yaml:    "bag: {width: 10, height: 10}\nitems: [{id: a, column: middle}]",
			wantErr: "column must be one of",
		},
		{
			name:    "非法YAML",
			yaml:    "bag: [",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCollectConfig([]byte(tt.yaml), "test")
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseExploreConfig(t *testing.T) {
	cfg, err := ParseExploreConfig([]byte(validExploreYAML), "test")
	if err != nil {
		t.Fatalf("ParseExploreConfig() failed: %v", err)
	}

	if cfg.Player.Speed != DefaultPlayerSpeed {
		t.Errorf("Expected default speed 10, got %v", cfg.Player.Speed)
	}
	if cfg.Player.SpawnY != 1700 {
		t.Errorf("Expected spawnY 1700, got %v", cfg.Player.SpawnY)
	}
	if got := cfg.KeyBindings.Up; len(got) != 2 || got[0] != "w" || got[1] != "ц" {
		t.Errorf("Expected default up bindings [w ц], got %v", got)
	}
	if cfg.Pickups[0].Grants != "pinkmouse" {
		t.Errorf("Pickup grants should default to its ID, got %q", cfg.Pickups[0].Grants)
	}

	gray := cfg.Triggers[0]
	if gray.Target != "graymouse" || gray.Threshold != 100 || *gray.Volume != DefaultTriggerVolume {
		t.Errorf("Unexpected graymouse trigger: %+v (volume %v)", gray, *gray.Volume)
	}
	poster := cfg.Triggers[1]
	if poster.Threshold != DefaultTriggerThreshold || *poster.Volume != 0.3 {
		t.Errorf("Unexpected poster trigger: %+v (volume %v)", poster, *poster.Volume)
	}

	if e, ok := cfg.EffectByID("mouses"); !ok || e.Duration().Milliseconds() != 7000 || !e.Screen {
		t.Errorf("Unexpected mouses effect: %+v", e)
	}
	if missing := cfg.MissingReferences(); len(missing) != 0 {
		t.Errorf("Expected no missing references, got %v", missing)
	}
}

func TestParseExploreConfigKeyBindings(t *testing.T) {
	yaml := `
width: 100
height: 100
player: {width: 10, height: 10}
keyBindings:
  up: ["W", " Ц "]
  left: [arrowleft]
`
	cfg, err := ParseExploreConfig([]byte(yaml), "test")
	if err != nil {
		t.Fatalf("ParseExploreConfig() failed: %v", err)
	}
	if got := cfg.KeyBindings.Up; len(got) != 2 || got[0] != "w" || got[1] != "ц" {
		t.Errorf("Bindings should be lowercased and trimmed, got %v", got)
	}
	if got := cfg.KeyBindings.Left; len(got) != 1 || got[0] != "arrowleft" {
		t.Errorf("Custom bindings should replace defaults, got %v", got)
	}
	if got := cfg.KeyBindings.Right; len(got) != 2 || got[0] != "d" {
		t.Errorf("Missing direction should get defaults, got %v", got)
	}
}

func TestParseExploreConfigErrors(t *testing.T) {
	base := "width: 100\nheight: 100\nplayer: {width: 10, height: 10}\n"

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"场景尺寸缺失", "player: {width: 10, height: 10}", "scene size must be positive"},
		{"玩家尺寸缺失", "width: 100\nheight: 100", "player size must be positive"},
		{"未知前置标志", base + "triggers: [{id: gray, requires: cheese}]", `trigger "gray" requires unknown flag "cheese"`},
		{"重复触发区域", base + "triggers: [{id: a}, {id: a}]", `duplicate trigger id "a"`},
		{"效果时长非法", base + "effects: [{id: e}]", "durationMs must be positive"},
		{"音量越界", base + "triggers: [{id: a, volume: 1.5}]", "volume must be between 0 and 1"},
		{"道具尺寸非法", base + "pickups: [{id: p}]", "size must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExploreConfig([]byte(tt.yaml), "test")
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMissingReferences(t *testing.T) {
	yaml := `
width: 100
height: 100
player: {width: 10, height: 10}
triggers:
  - {id: ghost, effect: boo}
`
	cfg, err := ParseExploreConfig([]byte(yaml), "test")
	if err != nil {
		t.Fatalf("Missing props and effects should not be fatal: %v", err)
	}
	if missing := cfg.MissingReferences(); len(missing) != 2 {
		t.Errorf("Expected missing prop and effect, got %v", missing)
	}
}

func TestLoadSceneConfigFromEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/scenes/collect.yaml": {Data: []byte(validCollectYAML)},
		"data/scenes/explore.yaml": {Data: []byte(validExploreYAML)},
	}, nil)

	if _, err := LoadCollectConfig(ScenePath(SceneCollect)); err != nil {
		t.Errorf("LoadCollectConfig() failed: %v", err)
	}
	if _, err := LoadExploreConfig(ScenePath(SceneExplore)); err != nil {
		t.Errorf("LoadExploreConfig() failed: %v", err)
	}
	if _, err := LoadExploreConfig(ScenePath("missing")); err == nil {
		t.Error("Expected error for missing scene file")
	}
}

func TestAssetPaths(t *testing.T) {
	collect, err := ParseCollectConfig([]byte(validCollectYAML), "collect.yaml")
	if err != nil {
		t.Fatalf("ParseCollectConfig failed: %v", err)
	}
	want := []string{"assets/sounds/pickup.mp3", "assets/images/bag.png", "assets/images/book.png"}
	got := collect.AssetPaths()
	if len(got) != len(want) {
		t.Fatalf("collect AssetPaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("collect AssetPaths()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	explore, err := ParseExploreConfig([]byte(validExploreYAML), "explore.yaml")
	if err != nil {
		t.Fatalf("ParseExploreConfig failed: %v", err)
	}
	sounds := explore.SoundPaths()
	if len(sounds) != 1 || sounds[0] != "assets/sounds/mouse_sound.mp3" {
		t.Errorf("SoundPaths() = %v, want [assets/sounds/mouse_sound.mp3]", sounds)
	}
	if !containsPath(explore.AssetPaths(), "assets/sounds/mouse_sound.mp3") {
		t.Errorf("AssetPaths() should include trigger sounds, got %v", explore.AssetPaths())
	}
}

func TestUniquePaths(t *testing.T) {
	got := uniquePaths([]string{"a", "", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("uniquePaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("uniquePaths()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func containsPath(paths []string, p string) bool {
	for _, candidate := range paths {
		if candidate == p {
			return true
		}
	}
	return false
}
