package game

import (
	"slices"

	"github.com/decker502/bagwalk/pkg/ecs"
)

// DragSession 当前进行中的拖拽
// 同一时间最多一个；Active 为 true 时不能开始新的拖拽
type DragSession struct {
	Item    ecs.EntityID
	OffsetX float64 // 按下点相对物品左上角的偏移
	OffsetY float64
	Active  bool
}

// Begin 开始一次拖拽
func (d *DragSession) Begin(item ecs.EntityID, offsetX, offsetY float64) {
	d.Item = item
	d.OffsetX = offsetX
	d.OffsetY = offsetY
	d.Active = true
}

// Clear 结束拖拽，回到空闲状态
func (d *DragSession) Clear() {
	*d = DragSession{}
}

// SceneSession 单个场景的运行期状态
//
// 场景创建时新建，场景被切走时整个丢弃：
//   - Drag: 拖拽会话
//   - flags: 拾取道具设置的前置标志
//   - Scheduler: 延时回调（完成图、效果自动隐藏）
type SceneSession struct {
	Drag      DragSession
	Scheduler *Scheduler
	flags     map[string]bool
}

// NewSceneSession 创建空会话
func NewSceneSession() *SceneSession {
	return &SceneSession{
		Scheduler: NewScheduler(),
		flags:     make(map[string]bool),
	}
}

// SetFlag 设置标志，标志一旦设置不会清除
func (s *SceneSession) SetFlag(name string) {
	if name == "" {
		return
	}
	s.flags[name] = true
}

// HasFlag 检查标志是否已设置
// 空名称视为"无前置条件"，总是返回 true
func (s *SceneSession) HasFlag(name string) bool {
	if name == "" {
		return true
	}
	return s.flags[name]
}

// Flags 返回已设置的标志（升序，用于 HUD 和日志）
func (s *SceneSession) Flags() []string {
	names := make([]string, 0, len(s.flags))
	for name := range s.flags {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
