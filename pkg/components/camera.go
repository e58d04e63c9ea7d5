package components

import "github.com/decker502/bagwalk/pkg/ecs"

// CameraComponent 跟随玩家的摄像机
// X, Y 是视口左上角在世界中的坐标
type CameraComponent struct {
	X, Y   float64
	Target ecs.EntityID // 跟随的实体，0 表示不跟随
}
