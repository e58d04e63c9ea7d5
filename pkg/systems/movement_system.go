package systems

import (
	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
	"github.com/decker502/bagwalk/pkg/utils"
)

// MovementSystem 玩家移动
// 每帧按按住的方向移动 Speed 像素，斜向移动不归一化，然后限制在场景范围内
type MovementSystem struct {
	entityManager *ecs.EntityManager
	input         *KeyInputSystem
	sceneWidth    float64
	sceneHeight   float64
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, input *KeyInputSystem, sceneWidth, sceneHeight float64) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		input:         input,
		sceneWidth:    sceneWidth,
		sceneHeight:   sceneHeight,
	}
}

// Step 移动所有玩家实体一帧
func (s *MovementSystem) Step() {
	for _, id := range ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.SizeComponent](s.entityManager) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		size, _ := ecs.GetComponent[*components.SizeComponent](s.entityManager, id)

		if s.input.IsHeld(DirUp) {
			pos.Y -= player.Speed
		}
		if s.input.IsHeld(DirDown) {
			pos.Y += player.Speed
		}
		if s.input.IsHeld(DirLeft) {
			pos.X -= player.Speed
		}
		if s.input.IsHeld(DirRight) {
			pos.X += player.Speed
		}

		pos.X = utils.ClampPosition(pos.X, s.sceneWidth-size.Width)
		pos.Y = utils.ClampPosition(pos.Y, s.sceneHeight-size.Height)
	}
}
