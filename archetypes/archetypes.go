package archetypes

import (
	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Runner = newArchetype(
		components.Runner,
		components.Transform,
		components.GridTransform,
		components.Movement,
		components.Intent,
		components.Overlaps,
		components.Object,
	)
	Guard = newArchetype(
		components.Guard,
		components.PathFollower,
		components.Transform,
		components.GridTransform,
		components.Movement,
		components.Intent,
		components.Overlaps,
		components.Object,
	)
	Brick = newArchetype(
		tags.Brick,
		components.Burnable,
		components.GridTransform,
	)
	SolidBrick = newArchetype(
		tags.SolidBrick,
		components.GridTransform,
	)
	FalseBrick = newArchetype(
		tags.FalseBrick,
		components.GridTransform,
	)
	Treasure = newArchetype(
		tags.Treasure,
		components.Transform,
		components.GridTransform,
		components.Overlaps,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
