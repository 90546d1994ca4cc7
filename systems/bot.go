package systems

import (
	"math"
	"sort"

	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/nav"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var botQuery = donburi.NewQuery(filter.And(
	filter.Contains(components.Runner, components.Bot, components.Intent, components.Transform, components.GridTransform),
	filter.Not(filter.Or(
		filter.Contains(components.Killed),
		filter.Contains(components.Falling),
	)),
))

// UpdateBots generates intents for autopiloted runners. Bots share the
// guards' navmesh and steering and never dig.
func UpdateBots(ecs *ecs.ECS) {
	level := levelOf(ecs)
	if level == nil {
		return
	}

	botQuery.Each(ecs.World, func(e *donburi.Entry) {
		bot := components.Bot.Get(e)
		cell := components.GridTransform.Get(e).Pos
		bot.RepathCooldown -= level.DeltaTime

		if len(bot.Waypoints) == 0 || bot.RepathCooldown <= 0 {
			planBot(ecs.World, level, bot, cell)
			return
		}

		pos := components.Transform.Get(e).Position
		next := cfg.Grid.ToWorld(bot.Waypoints[0])
		if math.Hypot(next.X-pos.X, next.Y-pos.Y) < cfg.GuardAI.WaypointEpsilon {
			bot.Waypoints = bot.Waypoints[1:]
		}
		if len(bot.Waypoints) == 0 {
			return
		}
		steer(components.Intent.Get(e), pos, cfg.Grid.ToWorld(bot.Waypoints[0]))
	})
}

func planBot(w donburi.World, level *components.LevelData, bot *components.BotData, from grid.Pos) {
	bot.Waypoints = bot.Waypoints[:0]
	bot.RepathCooldown = cfg.GuardAI.RepathInterval

	var goals []grid.Pos
	if level.ExitOpen {
		bot.AIState = components.BotStateEscape
		goals = exitGoals(level)
	} else {
		bot.AIState = components.BotStateCollect
		goals = treasureGoals(w)
	}

	mesh := RefreshNavMesh(level)
	for _, goal := range byDistance(from, goals) {
		path, err := mesh.FindPath(from, goal)
		if err != nil {
			continue
		}
		bot.Goal = goal
		bot.Waypoints = path
		return
	}
	bot.AIState = components.BotStateIdle
}

func treasureGoals(w donburi.World) []grid.Pos {
	var goals []grid.Pos
	treasureQuery.Each(w, func(t *donburi.Entry) {
		if components.Overlaps.Get(t).Active {
			goals = append(goals, components.GridTransform.Get(t).Pos)
		}
	})
	return goals
}

// exitGoals are the reachable top-row cells, preferring the revealed ladders.
func exitGoals(level *components.LevelData) []grid.Pos {
	top := level.Grid.Height() - 1
	var goals []grid.Pos
	for _, p := range level.HiddenExit {
		if p.Y == top {
			goals = append(goals, p)
		}
	}
	if len(goals) > 0 {
		return goals
	}
	for x := 0; x < level.Grid.Width(); x++ {
		p := grid.Pos{X: x, Y: top}
		if level.Grid.At(p).Kind != grid.Blocker {
			goals = append(goals, p)
		}
	}
	return goals
}

// byDistance orders goals nearest first. Ties keep their input order.
func byDistance(from grid.Pos, goals []grid.Pos) []grid.Pos {
	out := append([]grid.Pos(nil), goals...)
	sort.SliceStable(out, func(i, j int) bool {
		return nav.Distance(from, out[i]) < nav.Distance(from, out[j])
	})
	return out
}
