package utils

import (
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyEvent 键盘按下/抬起事件
// Name 是按键在当前键盘布局下的名称（如俄文布局下 W 键为 "ц"）
type KeyEvent struct {
	Name    string
	Pressed bool
}

// KeyTracker 将 ebiten 的物理按键转换为带布局名称的按下/抬起事件
//
// 按下时记录名称，抬起时使用同一个名称，
// 避免按住期间切换输入法导致抬起事件对不上。
type KeyTracker struct {
	names map[ebiten.Key]string
}

// NewKeyTracker 创建键盘跟踪器
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{names: make(map[ebiten.Key]string)}
}

// Poll 返回本帧的按键事件，先按下后抬起
// 只能在 ebiten 游戏循环内调用
func (kt *KeyTracker) Poll() []KeyEvent {
	var events []KeyEvent
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		name := KeyLayoutName(k)
		kt.names[k] = name
		events = append(events, KeyEvent{Name: name, Pressed: true})
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		name, ok := kt.names[k]
		if !ok {
			name = KeyLayoutName(k)
		}
		delete(kt.names, k)
		events = append(events, KeyEvent{Name: name, Pressed: false})
	}
	return events
}

// HeldNames 返回当前按住的按键名称（按名称排序，去重）
// 暂停期间 Poll 仍会更新记录，恢复时用它重建按键状态
func (kt *KeyTracker) HeldNames() []string {
	names := make([]string, 0, len(kt.names))
	for _, name := range kt.names {
		names = append(names, name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// KeyLayoutName 返回按键在当前布局下的名称
// 平台不支持布局名称时退回到物理键名（小写）
func KeyLayoutName(k ebiten.Key) string {
	if name := ebiten.KeyName(k); name != "" {
		return name
	}
	return strings.ToLower(k.String())
}
