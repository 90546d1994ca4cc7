package systems

import (
	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var movingQuery = donburi.NewQuery(filter.Contains(components.Transform, components.GridTransform))

// UpdateGridTransforms derives every moving entity's cell from its position.
func UpdateGridTransforms(ecs *ecs.ECS) {
	movingQuery.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		components.GridTransform.Get(e).Pos = cfg.Grid.ToCell(pos)
	})
}
