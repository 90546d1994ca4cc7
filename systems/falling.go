package systems

import (
	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var fallingQuery = donburi.NewQuery(filter.And(
	filter.Contains(components.Movement, components.Transform, components.GridTransform, components.Falling),
	filter.Not(filter.Contains(components.Killed)),
))

// UpdateFalling moves falling characters down at a fixed speed until they
// rest on a blocker or ladder, or catch a rope other than the one they fell
// from. A guard that drops into a burnt-out brick is wedged there: it is
// stunned and its cell reads as a blocker until it respawns.
func UpdateFalling(ecs *ecs.ECS) {
	level := levelOf(ecs)
	if level == nil {
		return
	}

	fallingQuery.Each(ecs.World, func(e *donburi.Entry) {
		fall(ecs.World, level, e)
	})
}

func fall(w donburi.World, level *components.LevelData, e *donburi.Entry) {
	dt := level.DeltaTime
	speed := cfg.Movement.FallSpeed
	movement := components.Movement.Get(e)
	transform := components.Transform.Get(e)
	cell := components.GridTransform.Get(e).Pos
	if e.HasComponent(components.Intent) {
		consumeIntent(components.Intent.Get(e))
	}

	tiles := level.Grid.Around(cell)
	old := transform.Position
	pos := old

	inHole := e.HasComponent(components.Guard) && holdsBurnable(w, tiles.On)
	landing := tiles.Below.Kind == grid.Blocker || tiles.Below.Kind == grid.Ladder ||
		(tiles.On.Kind == grid.Rope && tiles.On.Pos != movement.FallStart) ||
		inHole

	step := dt * speed
	if landing {
		blockY := cfg.Grid.ToWorld(tiles.Below.Pos).Y
		touching, gap := gamemath.RangesTouch(blockY, pos.Y, cfg.Grid.TileHeight)
		if touching {
			step = 0
			level.Defer(func() {
				if e.Valid() && e.HasComponent(components.Falling) {
					donburi.Remove[components.FallingState](e, components.Falling)
				}
			})

			if inHole {
				level.Grid.SetOverride(cell, grid.Blocker)
				level.Defer(func() {
					if e.Valid() && !e.HasComponent(components.Stunned) {
						donburi.Add(e, components.Stunned, &components.StunnedState{})
					}
				})
				components.GuardStunnedEvent.Publish(w, components.GuardStunned{
					Guard: e.Entity(),
					Cell:  cell,
				})
			}
		} else {
			step = min(gap, step)
		}
	}

	pos.Y -= step
	pos.X = gamemath.DriftTowards(cfg.Grid.Snap(pos).X, pos.X, dt*speed)

	movement.Velocity = math2.NewVec2(pos.X-old.X, pos.Y-old.Y)
	transform.Position = pos
}

// holdsBurnable reports whether the tile is bound to a brick entity.
func holdsBurnable(w donburi.World, t grid.Tile) bool {
	if !t.HasEntity() || !w.Valid(t.Entity) {
		return false
	}
	return w.Entry(t.Entity).HasComponent(components.Burnable)
}
