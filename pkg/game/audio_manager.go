package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundPlayer 场景使用的声音接口
//
// 所有方法都是"尽力而为"：失败只记录日志，返回 false，不会中断游戏循环。
type SoundPlayer interface {
	// PlaySound 播放一次音效，多次调用会叠加播放
	// volume 为该音效自身的音量 (0.0 ~ 1.0)，与全局音量相乘
	PlaySound(path string, volume float64) bool

	// RestartSound 从头播放一个共享音效
	// 同一路径只有一个播放器，重复调用会打断上一次并从 0 开始，而不是叠加
	RestartSound(path string) bool
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理所有音效的播放
//   - 应用 SettingsManager 中的音量和开关
//   - 维护共享音效（拾取音）的播放器
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager         // 可为 nil，使用默认设置
	sharedPlayers   map[string]*audio.Player // 共享音效播放器（路径 -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		sharedPlayers:   make(map[string]*audio.Player),
	}
}

// PlaySound 播放一次音效
//
// 参数：
//   - path: 音效资源路径（如 "assets/sounds/urur.mp3"）
//   - volume: 音效自身音量 (0.0 ~ 1.0)
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(path string, volume float64) bool {
	if path == "" || !am.soundEnabled() {
		return false
	}

	player, err := am.resourceManager.NewSoundPlayer(path)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to play sound %s: %v", path, err)
		return false
	}

	player.SetVolume(clampVolume(volume) * am.masterVolume())
	player.Play()
	return true
}

// RestartSound 从头播放共享音效
//
// 参数：
//   - path: 音效资源路径（如 "assets/sounds/pickup.mp3"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) RestartSound(path string) bool {
	if path == "" || !am.soundEnabled() {
		return false
	}

	player, exists := am.sharedPlayers[path]
	if !exists {
		var err error
		player, err = am.resourceManager.NewSoundPlayer(path)
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", path, err)
			return false
		}
		am.sharedPlayers[path] = player
	}

	player.SetVolume(am.masterVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", path, err)
	}
	player.Play()
	return true
}

// StopAll 暂停所有共享音效（场景切换、静音时调用）
func (am *AudioManager) StopAll() {
	for _, player := range am.sharedPlayers {
		player.Pause()
	}
}

// SetSoundVolume 设置全局音效音量，立即应用到共享播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.sharedPlayers {
		player.SetVolume(am.masterVolume())
	}
}

// GetSoundVolume 获取当前全局音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.masterVolume()
}

// PreloadSounds 预加载音效，避免首次播放时解码卡顿
func (am *AudioManager) PreloadSounds(paths []string) {
	loaded := 0
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := am.resourceManager.LoadSoundPCM(path); err != nil {
			log.Printf("[AudioManager] Warning: Failed to preload sound %s: %v", path, err)
			continue
		}
		loaded++
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(paths))
}

func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

func (am *AudioManager) masterVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}
