package scenes

import (
	"github.com/decker502/bagwalk/pkg/components"
	"github.com/decker502/bagwalk/pkg/ecs"
)

func playerPosition(s *ExploreScene) (float64, float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.player)
	return pos.X, pos.Y
}
