package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"path/filepath"
	"strings"

	"github.com/decker502/bagwalk/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager is responsible for loading and caching images and sounds.
//
// Paths are resource paths understood by pkg/embedded, e.g.
// "assets/images/bag.png" or "assets/sounds/pickup.mp3".
//
// Sounds are decoded once into PCM at the audio context's sample rate, so
// every PlaySound can create a fresh player over the same bytes. That lets
// trigger sounds overlap while the shared pickup sound is rewound instead.
//
// Failed loads are remembered; a missing file is reported once and never
// read again for the lifetime of the manager.
//
// Thread Safety Note:
// Not thread-safe. Only call from the game loop goroutine.
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image
	pcmCache     map[string][]byte
	failed       map[string]error
	audioContext *audio.Context // nil 时所有声音加载都失败（测试、无声卡环境）
}

// NewResourceManager creates a ResourceManager.
//
// Parameters:
//   - audioContext: the global audio context (48000 Hz); may be nil.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		pcmCache:     make(map[string][]byte),
		failed:       make(map[string]error),
		audioContext: audioContext,
	}
}

// LoadImage loads an image and caches it.
//
// Returns:
//   - the loaded ebiten.Image
//   - an error if the file cannot be opened or decoded (remembered for later calls)
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if img, exists := rm.imageCache[path]; exists {
		return img, nil
	}
	if err, failed := rm.failed[path]; failed {
		return nil, err
	}

	img, err := rm.decodeImage(path)
	if err != nil {
		rm.failed[path] = err
		return nil, err
	}

	rm.imageCache[path] = img
	return img, nil
}

func (rm *ResourceManager) decodeImage(path string) (*ebiten.Image, error) {
	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(decoded), nil
}

// GetImage returns a cached image or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSoundPCM loads a sound file and decodes it into 16-bit stereo PCM at
// the audio context's sample rate.
// Supported formats: .mp3, .ogg, .wav
func (rm *ResourceManager) LoadSoundPCM(path string) ([]byte, error) {
	if pcm, exists := rm.pcmCache[path]; exists {
		return pcm, nil
	}
	if err, failed := rm.failed[path]; failed {
		return nil, err
	}

	pcm, err := rm.decodeSound(path)
	if err != nil {
		rm.failed[path] = err
		return nil, err
	}

	rm.pcmCache[path] = pcm
	return pcm, nil
}

func (rm *ResourceManager) decodeSound(path string) ([]byte, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file %s: %w", path, err)
	}

	reader := bytes.NewReader(data)
	sampleRate := rm.audioContext.SampleRate()

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 %s: %w", path, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	return pcm, nil
}

// NewSoundPlayer creates a new, not yet started player for a sound.
// Each call returns an independent player.
func (rm *ResourceManager) NewSoundPlayer(path string) (*audio.Player, error) {
	pcm, err := rm.LoadSoundPCM(path)
	if err != nil {
		return nil, err
	}
	return rm.audioContext.NewPlayerFromBytes(pcm), nil
}
