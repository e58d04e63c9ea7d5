package components

// TriggerZoneComponent 一次性触发区域
//
// 玩家左上角与区域左上角在两个轴上的距离都小于 Threshold 时触发，
// 触发后 Fired 永久为 true。
// Requires 非空时，只有会话中设置了同名标志后才会参与检测。
type TriggerZoneComponent struct {
	ID          string
	Order       int     // 检测顺序，升序
	Threshold   float64 // 每个轴上的距离阈值(像素)
	Requires    string  // 前置标志，空表示无前置
	Fired       bool
	Sound       string  // 触发音效路径，可为空
	SoundVolume float64 // 0.0 - 1.0
	EffectID    string  // 触发时显示的效果 ID，可为空
}

// PickupComponent 可拾取道具
// 与玩家包围盒重叠时被拾取，设置 Grants 指定的标志
type PickupComponent struct {
	ID        string
	Grants    string
	Collected bool
	Sound     string
}
