package factory

import (
	"github.com/dakitten2358/loderunner/archetypes"
	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateGuard(ecs *ecs.ECS, cell grid.Pos) *donburi.Entry {
	guard := archetypes.Guard.Spawn(ecs)
	spawnCharacter(ecs, guard, cell, cfg.Guard, tags.ResolvGuard)
	components.Guard.SetValue(guard, components.GuardData{Carrying: donburi.Null})
	return guard
}
