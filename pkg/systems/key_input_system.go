package systems

import (
	"strings"

	"github.com/decker502/bagwalk/pkg/config"
	"github.com/decker502/bagwalk/pkg/utils"
)

// Direction 移动方向
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String 返回方向名称
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// KeyInputSystem 记录当前按住的按键
//
// 按键以布局名称（小写）记录；每个方向可以有多个绑定，
// 任一绑定按住时该方向视为按住。
type KeyInputSystem struct {
	held     map[string]bool
	bindings map[Direction][]string
}

// NewKeyInputSystem 根据绑定创建输入状态
func NewKeyInputSystem(bindings config.KeyBindings) *KeyInputSystem {
	lower := func(keys []string) []string {
		out := make([]string, len(keys))
		for i, k := range keys {
			out[i] = strings.ToLower(k)
		}
		return out
	}
	return &KeyInputSystem{
		held: make(map[string]bool),
		bindings: map[Direction][]string{
			DirUp:    lower(bindings.Up),
			DirDown:  lower(bindings.Down),
			DirLeft:  lower(bindings.Left),
			DirRight: lower(bindings.Right),
		},
	}
}

// KeyDown 记录按键按下
func (s *KeyInputSystem) KeyDown(name string) {
	s.held[strings.ToLower(name)] = true
}

// KeyUp 记录按键抬起
func (s *KeyInputSystem) KeyUp(name string) {
	s.held[strings.ToLower(name)] = false
}

// HandleKeyEvent 处理键盘适配器产生的事件
func (s *KeyInputSystem) HandleKeyEvent(ev utils.KeyEvent) {
	if ev.Pressed {
		s.KeyDown(ev.Name)
	} else {
		s.KeyUp(ev.Name)
	}
}

// IsHeld 方向是否按住
func (s *KeyInputSystem) IsHeld(dir Direction) bool {
	for _, key := range s.bindings[dir] {
		if s.held[key] {
			return true
		}
	}
	return false
}

// Reset 松开所有按键（暂停、窗口失去焦点时调用）
func (s *KeyInputSystem) Reset() {
	clear(s.held)
}
