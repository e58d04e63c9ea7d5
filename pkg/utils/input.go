package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ============================================================================
// 指针输入 - 统一鼠标和触摸
// ============================================================================
//
// 拖拽控制器只关心"按下 / 移动 / 抬起"三种事件和一个坐标，
// 不区分输入来源。PointerTracker 把每帧的鼠标和触摸状态转换为这三种事件：
//   - 触摸优先于鼠标，只跟踪第一个按下的触摸点
//   - 触摸抬起时 ebiten 已经拿不到该触摸点的位置，使用最后一次记录的位置
//   - 跟踪期间忽略其他触摸点和鼠标

// PointerEventType 指针事件类型
type PointerEventType int

const (
	// PointerDown 指针按下（鼠标左键按下 / 触摸开始）
	PointerDown PointerEventType = iota
	// PointerMove 指针按住移动
	PointerMove
	// PointerUp 指针抬起（鼠标左键释放 / 触摸结束）
	PointerUp
)

// String 返回事件类型名称（用于日志）
func (t PointerEventType) String() string {
	switch t {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return "unknown"
}

// PointerEvent 单个指针事件
type PointerEvent struct {
	Type    PointerEventType
	X, Y    float64 // 屏幕坐标
	IsTouch bool    // 是否来自触摸输入
}

// TouchPoint 某一帧中的一个触摸点
type TouchPoint struct {
	ID   ebiten.TouchID
	X, Y int
}

// PointerSample 某一帧的原始指针状态
type PointerSample struct {
	MousePressed   bool
	MouseX, MouseY int
	Touches        []TouchPoint
}

// SamplePointer 读取当前帧的鼠标和触摸状态
// 只能在 ebiten 游戏循环内调用
func SamplePointer() PointerSample {
	sample := PointerSample{
		MousePressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	sample.MouseX, sample.MouseY = ebiten.CursorPosition()

	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		sample.Touches = append(sample.Touches, TouchPoint{ID: id, X: x, Y: y})
	}
	return sample
}

// PointerTracker 指针跟踪器
// 每帧调用一次 Update，返回本帧产生的事件
type PointerTracker struct {
	active  bool
	isTouch bool
	touchID ebiten.TouchID
	lastX   int
	lastY   int

	prevMousePressed bool
	prevTouches      map[ebiten.TouchID]struct{}

	hoverX, hoverY int
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{
		touchID:     -1,
		prevTouches: make(map[ebiten.TouchID]struct{}),
	}
}

// Poll 读取 ebiten 输入并返回本帧事件
func (pt *PointerTracker) Poll() []PointerEvent {
	return pt.Update(SamplePointer())
}

// Update 根据一帧的原始状态推进跟踪器
func (pt *PointerTracker) Update(s PointerSample) []PointerEvent {
	var events []PointerEvent

	mouseJustPressed := s.MousePressed && !pt.prevMousePressed
	var newTouch *TouchPoint
	for i := range s.Touches {
		if _, seen := pt.prevTouches[s.Touches[i].ID]; !seen {
			newTouch = &s.Touches[i]
			break
		}
	}

	switch {
	case pt.active && pt.isTouch:
		if tp, ok := findTouch(s.Touches, pt.touchID); ok {
			if tp.X != pt.lastX || tp.Y != pt.lastY {
				pt.lastX, pt.lastY = tp.X, tp.Y
				events = append(events, pt.event(PointerMove))
			}
		} else {
			events = append(events, pt.event(PointerUp))
			pt.reset()
		}

	case pt.active:
		if s.MousePressed {
			if s.MouseX != pt.lastX || s.MouseY != pt.lastY {
				pt.lastX, pt.lastY = s.MouseX, s.MouseY
				events = append(events, pt.event(PointerMove))
			}
		} else {
			pt.lastX, pt.lastY = s.MouseX, s.MouseY
			events = append(events, pt.event(PointerUp))
			pt.reset()
		}

	case newTouch != nil:
		pt.active = true
		pt.isTouch = true
		pt.touchID = newTouch.ID
		pt.lastX, pt.lastY = newTouch.X, newTouch.Y
		events = append(events, pt.event(PointerDown))

	case mouseJustPressed:
		pt.active = true
		pt.isTouch = false
		pt.lastX, pt.lastY = s.MouseX, s.MouseY
		events = append(events, pt.event(PointerDown))
	}

	// 悬停位置：跟踪中用跟踪点，否则用鼠标
	if pt.active {
		pt.hoverX, pt.hoverY = pt.lastX, pt.lastY
	} else {
		pt.hoverX, pt.hoverY = s.MouseX, s.MouseY
	}

	pt.prevMousePressed = s.MousePressed
	clear(pt.prevTouches)
	for _, tp := range s.Touches {
		pt.prevTouches[tp.ID] = struct{}{}
	}

	return events
}

// IsActive 是否正在跟踪一次按下
func (pt *PointerTracker) IsActive() bool {
	return pt.active
}

// HoverPosition 返回当前指针位置（用于光标样式）
func (pt *PointerTracker) HoverPosition() (float64, float64) {
	return float64(pt.hoverX), float64(pt.hoverY)
}

// Reset 放弃当前跟踪（暂停、切换场景时调用）
func (pt *PointerTracker) Reset() {
	pt.reset()
}

func (pt *PointerTracker) reset() {
	pt.active = false
	pt.isTouch = false
	pt.touchID = -1
}

func (pt *PointerTracker) event(t PointerEventType) PointerEvent {
	return PointerEvent{
		Type:    t,
		X:       float64(pt.lastX),
		Y:       float64(pt.lastY),
		IsTouch: pt.isTouch,
	}
}

func findTouch(touches []TouchPoint, id ebiten.TouchID) (TouchPoint, bool) {
	for _, tp := range touches {
		if tp.ID == id {
			return tp, true
		}
	}
	return TouchPoint{}, false
}
