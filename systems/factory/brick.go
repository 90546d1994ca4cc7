package factory

import (
	"github.com/dakitten2358/loderunner/archetypes"
	"github.com/dakitten2358/loderunner/components"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBrick spawns a burnable brick bound to cell.
func CreateBrick(ecs *ecs.ECS, cell grid.Pos) *donburi.Entry {
	brick := archetypes.Brick.Spawn(ecs)
	components.GridTransform.SetValue(brick, components.GridTransformData{Pos: cell})
	components.Burnable.SetValue(brick, components.BurnableData{State: components.NotBurning})
	return brick
}

func CreateSolidBrick(ecs *ecs.ECS, cell grid.Pos) *donburi.Entry {
	brick := archetypes.SolidBrick.Spawn(ecs)
	components.GridTransform.SetValue(brick, components.GridTransformData{Pos: cell})
	return brick
}

// CreateFalseBrick spawns a brick that is drawn but can be walked and fallen
// through.
func CreateFalseBrick(ecs *ecs.ECS, cell grid.Pos) *donburi.Entry {
	brick := archetypes.FalseBrick.Spawn(ecs)
	components.GridTransform.SetValue(brick, components.GridTransformData{Pos: cell})
	return brick
}
