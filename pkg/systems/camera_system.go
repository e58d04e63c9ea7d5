package systems

import (
	"math"

	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
)

// CameraSystem 摄像机跟随
// 让目标实体尽量处于视口中央，摄像机不会移出场景边界；
// 场景比视口小时场景居中显示。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
	sceneWidth    float64
	sceneHeight   float64
}

// NewCameraSystem 创建摄像机系统和摄像机实体
func NewCameraSystem(em *ecs.EntityManager, target ecs.EntityID, sceneWidth, sceneHeight float64) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		sceneWidth:    sceneWidth,
		sceneHeight:   sceneHeight,
	}
	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{Target: target})
	return cs
}

// Update 根据视口尺寸更新摄像机位置
func (cs *CameraSystem) Update(viewWidth, viewHeight float64) {
	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}

	rect, ok := layoutRect(cs.entityManager, camera.Target)
	if !ok {
		return
	}

	camera.X = followAxis(rect.X+rect.W/2, viewWidth, cs.sceneWidth)
	camera.Y = followAxis(rect.Y+rect.H/2, viewHeight, cs.sceneHeight)
}

// Position 返回摄像机左上角的世界坐标
func (cs *CameraSystem) Position() (float64, float64) {
	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return 0, 0
	}
	return camera.X, camera.Y
}

// followAxis 计算单个轴上的摄像机位置
func followAxis(center, view, scene float64) float64 {
	if scene <= view {
		return (scene - view) / 2
	}
	return math.Max(0, math.Min(center-view/2, scene-view))
}
