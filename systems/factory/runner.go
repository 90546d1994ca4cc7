package factory

import (
	"github.com/dakitten2358/loderunner/archetypes"
	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRunner spawns a runner centered on cell. Local runners are driven by
// the viewer's keyboard.
func CreateRunner(ecs *ecs.ECS, cell grid.Pos, local bool) *donburi.Entry {
	var runner *donburi.Entry
	if local {
		runner = archetypes.Runner.Spawn(ecs, tags.LocalPlayer)
	} else {
		runner = archetypes.Runner.Spawn(ecs)
	}
	spawnCharacter(ecs, runner, cell, cfg.Runner, tags.ResolvRunner)
	return runner
}

func spawnCharacter(ecs *ecs.ECS, e *donburi.Entry, cell grid.Pos, c cfg.CharacterConfig, kind string) {
	pos := cfg.Grid.ToWorld(cell)
	components.Transform.SetValue(e, components.TransformData{Position: pos})
	components.GridTransform.SetValue(e, components.GridTransformData{Pos: cell})
	components.Movement.SetValue(e, components.MovementData{
		HorizontalSpeed: c.HorizontalSpeed,
		ClimbSpeed:      c.ClimbSpeed,
	})
	components.Overlaps.SetValue(e, components.OverlapsData{
		Width:  c.OverlapWidth,
		Height: c.OverlapHeight,
		Active: true,
	})

	obj := resolv.NewObject(pos.X-c.OverlapWidth/2, pos.Y-c.OverlapHeight/2, c.OverlapWidth, c.OverlapHeight)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvCharacter, kind)
	obj.Data = e
	addToSpace(ecs, obj)
}
