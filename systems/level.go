package systems

import (
	"github.com/dakitten2358/loderunner/components"
	"github.com/yohamta/donburi/ecs"
)

// levelOf returns the simulation context, or nil before a level is spawned.
func levelOf(ecs *ecs.ECS) *components.LevelData {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(levelEntry)
}
