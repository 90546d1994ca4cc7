package systems

import (
	"math"

	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var guardQuery = donburi.NewQuery(filter.And(
	filter.Contains(components.Guard, components.PathFollower, components.Intent, components.Transform, components.GridTransform),
	filter.Not(filter.Or(
		filter.Contains(components.Killed),
		filter.Contains(components.Stunned),
	)),
))

// UpdateGuardAI plans a route to the nearest runner every RepathInterval (or
// when the route runs out) and otherwise steers along it. A planning tick
// does not steer. When no route exists the guard holds position and tries
// again next tick.
func UpdateGuardAI(ecs *ecs.ECS) {
	level := levelOf(ecs)
	if level == nil {
		return
	}

	guardQuery.Each(ecs.World, func(e *donburi.Entry) {
		ai := components.PathFollower.Get(e)
		cell := components.GridTransform.Get(e).Pos
		ai.RepathCooldown -= level.DeltaTime

		if len(ai.Waypoints) == 0 || ai.RepathCooldown <= 0 {
			target, ok := nearestRunner(ecs.World, cell)
			if !ok {
				ai.Waypoints = ai.Waypoints[:0]
				return
			}
			path, err := RefreshNavMesh(level).FindPath(cell, target)
			if err != nil {
				ai.Waypoints = ai.Waypoints[:0]
				return
			}
			ai.Waypoints = path
			ai.RepathCooldown = cfg.GuardAI.RepathInterval
			return
		}

		pos := components.Transform.Get(e).Position
		next := cfg.Grid.ToWorld(ai.Waypoints[0])
		if math.Hypot(next.X-pos.X, next.Y-pos.Y) < cfg.GuardAI.WaypointEpsilon {
			ai.Waypoints = ai.Waypoints[1:]
		}
		if len(ai.Waypoints) == 0 {
			return
		}

		steer(components.Intent.Get(e), pos, cfg.Grid.ToWorld(ai.Waypoints[0]))
	})
}

// steer sets the single directional flag that closes the larger axis gap to
// target. Horizontal wins ties.
func steer(intent *components.IntentData, pos, target math2.Vec2) {
	dx, dy := target.X-pos.X, target.Y-pos.Y
	if math.Abs(dx) >= math.Abs(dy) {
		switch {
		case dx < 0:
			intent.Left = true
		case dx > 0:
			intent.Right = true
		}
		return
	}
	switch {
	case dy > 0:
		intent.Up = true
	case dy < 0:
		intent.Down = true
	}
}
