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

var walkerQuery = donburi.NewQuery(filter.And(
	filter.Contains(components.Movement, components.Transform, components.GridTransform, components.Intent),
	filter.Not(filter.Or(
		filter.Contains(components.Falling),
		filter.Contains(components.Killed),
		filter.Contains(components.Stunned),
	)),
))

// UpdateMovement resolves each grounded character's intent against the tiles
// around it. Rules are tried in priority order; the horizontal rule only runs
// when none of the vertical ones moved the character.
func UpdateMovement(ecs *ecs.ECS) {
	level := levelOf(ecs)
	if level == nil {
		return
	}

	walkerQuery.Each(ecs.World, func(e *donburi.Entry) {
		move(level, e)
	})
}

func move(level *components.LevelData, e *donburi.Entry) {
	dt := level.DeltaTime
	movement := components.Movement.Get(e)
	transform := components.Transform.Get(e)
	cell := components.GridTransform.Get(e).Pos
	dir := consumeIntent(components.Intent.Get(e))

	tiles := level.Grid.Around(cell)
	old := transform.Position
	pos := old

	switch {
	case shouldStartFalling(tiles) || wantsToDropFromRope(dir, tiles):
		startFalling(level, e, movement, cell, gamemath.Sign(movement.Velocity.X))

	case dropsThroughLadderTop(dir, tiles):
		startFalling(level, e, movement, tiles.Above.Pos, 0)

	// finishing the climb onto the top of a ladder
	case dir.Y > 0 && isOpen(tiles.On) && tiles.Below.Kind == grid.Ladder:
		blockY := cfg.Grid.ToWorld(tiles.Above.Pos).Y
		step := min(gamemath.DistanceToContact(blockY, pos.Y, cfg.Grid.TileHeight), dt*movement.ClimbSpeed)
		pos.Y += step

	case dir.Y > 0 && tiles.On.Kind == grid.Ladder:
		step := dt * movement.ClimbSpeed
		if tiles.Above.Kind == grid.Blocker {
			blockY := cfg.Grid.ToWorld(tiles.Above.Pos).Y
			step = min(gamemath.DistanceToContact(blockY, pos.Y, cfg.Grid.TileHeight), step)
		}
		if step != 0 {
			pos.Y += step
			pos.X = gamemath.DriftTowards(cfg.Grid.Snap(pos).X, pos.X, dt*movement.HorizontalSpeed)
		}

	case dir.Y < 0 && (tiles.On.Kind == grid.Ladder || (isOpen(tiles.On) && tiles.Below.Kind == grid.Ladder)):
		step := dt * movement.ClimbSpeed
		if tiles.Below.Kind == grid.Blocker {
			blockY := cfg.Grid.ToWorld(tiles.Below.Pos).Y
			step = min(gamemath.DistanceToContact(blockY, pos.Y, cfg.Grid.TileHeight), step)
		}
		if step != 0 {
			pos.Y -= step
			pos.X = gamemath.DriftTowards(cfg.Grid.Snap(pos).X, pos.X, dt*movement.HorizontalSpeed)
		}
	}

	if pos == old && dir.X != 0 {
		side := tiles.Left
		if dir.X > 0 {
			side = tiles.Right
		}

		step := dt * movement.HorizontalSpeed
		if side.Kind == grid.Blocker {
			blockX := cfg.Grid.ToWorld(side.Pos).X
			step = min(gamemath.DistanceToContact(blockX, pos.X, cfg.Grid.TileWidth), step)
		}
		pos.X += step * dir.X

		if tiles.On.Kind != grid.Ladder {
			pos.Y = gamemath.DriftTowards(cfg.Grid.Snap(pos).Y, pos.Y, dt*movement.HorizontalSpeed)
		}
	}

	movement.Velocity = math2.NewVec2(pos.X-old.X, pos.Y-old.Y)
	transform.Position = pos
}

// consumeIntent returns the net direction of an intent and clears its
// directional flags.
func consumeIntent(intent *components.IntentData) math2.Vec2 {
	dir := math2.NewVec2(intent.Horizontal(), intent.Vertical())
	intent.Left, intent.Right, intent.Up, intent.Down = false, false, false, false
	return dir
}

func startFalling(level *components.LevelData, e *donburi.Entry, movement *components.MovementData, from grid.Pos, drift float64) {
	movement.FallStart = from
	movement.FallDrift = drift
	level.Defer(func() {
		if e.Valid() && !e.HasComponent(components.Falling) {
			donburi.Add(e, components.Falling, &components.FallingState{})
		}
	})
}

func isOpen(t grid.Tile) bool {
	return t.Kind == grid.None || t.Kind == grid.Rope
}

func shouldStartFalling(tiles grid.TilesAround) bool {
	switch {
	case tiles.On.Kind == grid.Ladder:
		return false
	case tiles.Below.Kind == grid.None && tiles.On.Kind != grid.Rope:
		return true
	case tiles.On.Kind == grid.None && tiles.Below.Kind == grid.Rope:
		return true
	}
	return false
}

func wantsToDropFromRope(dir math2.Vec2, tiles grid.TilesAround) bool {
	return dir.Y < 0 && tiles.On.Kind == grid.Rope && (tiles.Below.Kind == grid.None || tiles.Below.Kind == grid.Rope)
}

func dropsThroughLadderTop(dir math2.Vec2, tiles grid.TilesAround) bool {
	return dir.Y < 0 && isOpen(tiles.On) && tiles.Above.Kind == grid.Ladder
}
