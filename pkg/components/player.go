package components

// PlayerComponent 标记由方向键控制的玩家实体
type PlayerComponent struct {
	Speed float64 // 每帧移动的像素
}
