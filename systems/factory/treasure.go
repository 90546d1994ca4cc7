package factory

import (
	"github.com/dakitten2358/loderunner/archetypes"
	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTreasure(ecs *ecs.ECS, cell grid.Pos) *donburi.Entry {
	treasure := archetypes.Treasure.Spawn(ecs)
	components.Transform.SetValue(treasure, components.TransformData{Position: cfg.Grid.ToWorld(cell)})
	components.GridTransform.SetValue(treasure, components.GridTransformData{Pos: cell})
	components.Overlaps.SetValue(treasure, components.OverlapsData{
		Width:  cfg.Treasure.OverlapWidth,
		Height: cfg.Treasure.OverlapHeight,
		Active: true,
	})
	return treasure
}
