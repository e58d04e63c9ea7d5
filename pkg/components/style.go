package components

// CursorStyle 悬停在实体上时的光标样式
type CursorStyle int

const (
	// CursorDefault 默认箭头
	CursorDefault CursorStyle = iota
	// CursorGrab 可以抓取
	CursorGrab
	// CursorGrabbing 正在拖拽
	CursorGrabbing
)

// 拖拽时的"抬起"样式
const (
	LiftedOpacity = 0.7
	LiftedZIndex  = 1000
)

// StyleComponent 实体的临时覆盖样式
//
// Fixed 为 true 时，实体绘制在 (Left, Top) 的屏幕坐标上，
// 不再参与流式布局；清除覆盖样式后回到 PositionComponent 的布局位置。
type StyleComponent struct {
	Fixed   bool
	Left    float64
	Top     float64
	Opacity float64 // 0.0 - 1.0
	ZIndex  int
	Cursor  CursorStyle
	Hidden  bool
}

// DefaultStyle 返回没有任何覆盖的样式
func DefaultStyle(cursor CursorStyle) StyleComponent {
	return StyleComponent{
		Opacity: 1.0,
		Cursor:  cursor,
	}
}

// Reset 清除全部覆盖样式，保留光标样式
func (s *StyleComponent) Reset(cursor CursorStyle) {
	*s = DefaultStyle(cursor)
}
