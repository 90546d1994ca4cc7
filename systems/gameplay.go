package systems

import (
	"log"

	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	treasureQuery = donburi.NewQuery(filter.Contains(tags.Treasure, components.Overlaps, components.GridTransform))
	hunterQuery   = donburi.NewQuery(filter.And(
		filter.Contains(components.Guard, components.Overlaps),
		filter.Not(filter.Or(
			filter.Contains(components.Killed),
			filter.Contains(components.Stunned),
		)),
	))
	carrierQuery  = donburi.NewQuery(filter.Contains(components.Guard, components.Stunned, components.GridTransform))
	respawnQuery  = donburi.NewQuery(filter.Contains(components.Guard, components.Killed, components.Transform, components.GridTransform))
	finisherQuery = donburi.NewQuery(filter.And(
		filter.Contains(components.Runner, components.GridTransform),
		filter.Not(filter.Contains(components.Killed)),
	))
)

func isLive(e *donburi.Entry) bool {
	return e.Valid() && !e.HasComponent(components.Killed)
}

// UpdatePickups hands each overlapped treasure to a runner (collected for
// good) or to a guard with empty hands (carried until it is stunned).
// Runners take precedence.
func UpdatePickups(ecs *ecs.ECS) {
	level := levelOf(ecs)
	if level == nil {
		return
	}

	var collected []*donburi.Entry
	treasureQuery.Each(ecs.World, func(t *donburi.Entry) {
		overlaps := components.Overlaps.Get(t)
		if !overlaps.Active {
			return
		}

		var carrier *donburi.Entry
		for _, other := range overlaps.Entities {
			if !ecs.World.Valid(other) {
				continue
			}
			entry := ecs.World.Entry(other)
			if !isLive(entry) {
				continue
			}
			if entry.HasComponent(components.Runner) {
				cell := components.GridTransform.Get(t).Pos
				runner := components.Runner.Get(entry)
				runner.Collected++
				level.Collected++
				level.Grid.ClearEntity(cell)
				collected = append(collected, t)
				components.TreasureCollectedEvent.Publish(ecs.World, components.TreasureCollected{
					Runner:    other,
					Cell:      cell,
					Collected: level.Collected,
					Remaining: max(level.Grid.TreasureCount()-level.Collected, 0),
				})
				return
			}
			if carrier == nil && entry.HasComponent(components.Guard) &&
				!entry.HasComponent(components.Stunned) &&
				components.Guard.Get(entry).Carrying == donburi.Null {
				carrier = entry
			}
		}

		if carrier != nil {
			components.Guard.Get(carrier).Carrying = t.Entity()
			overlaps.Active = false
			level.Grid.ClearEntity(components.GridTransform.Get(t).Pos)
		}
	})

	for _, t := range collected {
		ecs.World.Remove(t.Entity())
	}
}

// UpdateTreasureDrops makes a stunned guard let go of its treasure, which
// lands in the cell above the hole.
func UpdateTreasureDrops(ecs *ecs.ECS) {
	level := levelOf(ecs)
	if level == nil {
		return
	}

	carrierQuery.Each(ecs.World, func(e *donburi.Entry) {
		guard := components.Guard.Get(e)
		if guard.Carrying == donburi.Null {
			return
		}
		dropTreasure(ecs.World, level, guard, components.GridTransform.Get(e).Pos.Add(grid.Up))
	})
}

func dropTreasure(w donburi.World, level *components.LevelData, guard *components.GuardData, cell grid.Pos) {
	carried := guard.Carrying
	guard.Carrying = donburi.Null
	if !w.Valid(carried) {
		return
	}

	t := w.Entry(carried)
	components.Transform.Get(t).Position = cfg.Grid.ToWorld(cell)
	components.GridTransform.Get(t).Pos = cell
	components.Overlaps.Get(t).Active = true
	level.Grid.SetEntity(cell, carried)
}

// UpdateGuardKills kills every runner touched by an active guard.
func UpdateGuardKills(ecs *ecs.ECS) {
	type kill struct {
		runner *donburi.Entry
		guard  donburi.Entity
	}
	var kills []kill

	hunterQuery.Each(ecs.World, func(g *donburi.Entry) {
		overlaps := components.Overlaps.Get(g)
		if !overlaps.Active {
			return
		}
		for _, other := range overlaps.Entities {
			if !ecs.World.Valid(other) {
				continue
			}
			entry := ecs.World.Entry(other)
			if isLive(entry) && entry.HasComponent(components.Runner) {
				kills = append(kills, kill{runner: entry, guard: g.Entity()})
			}
		}
	})

	for _, k := range kills {
		if !isLive(k.runner) {
			continue
		}
		donburi.Add(k.runner, components.Killed, &components.KilledState{})
		components.RunnerKilledEvent.Publish(ecs.World, components.RunnerKilled{
			Runner: k.runner.Entity(),
			By:     k.guard,
			Cell:   components.GridTransform.Get(k.runner).Pos,
		})
	}
}

// UpdateGuardRespawn takes killed guards out of play, moves them to a
// respawn cell and returns them after RespawnDelay.
func UpdateGuardRespawn(ecs *ecs.ECS) {
	level := levelOf(ecs)
	if level == nil {
		return
	}

	var revived []*donburi.Entry
	var removeTags []*donburi.Entry
	respawnQuery.Each(ecs.World, func(e *donburi.Entry) {
		guard := components.Guard.Get(e)
		if guard.Respawning {
			guard.RespawnTimer -= level.DeltaTime
			if guard.RespawnTimer <= 0 {
				revived = append(revived, e)
			}
			return
		}

		cell := components.GridTransform.Get(e).Pos
		level.Grid.ResetOverride(cell)
		if guard.Carrying != donburi.Null {
			dropTreasure(ecs.World, level, guard, cell.Add(grid.Up))
		}

		spawn, ok := level.Grid.RandomRespawn()
		if !ok {
			log.Printf("[gameplay] warning: no respawn cell for guard %v", e.Entity())
			spawn = cell
		}
		components.Transform.Get(e).Position = cfg.Grid.ToWorld(spawn)
		components.GridTransform.Get(e).Pos = spawn
		if e.HasComponent(components.Overlaps) {
			components.Overlaps.Get(e).Active = false
		}
		if e.HasComponent(components.PathFollower) {
			ai := components.PathFollower.Get(e)
			ai.Waypoints = ai.Waypoints[:0]
			ai.RepathCooldown = 0
		}

		guard.Respawning = true
		guard.RespawnTimer = cfg.GuardAI.RespawnDelay
		removeTags = append(removeTags, e)
	})

	for _, e := range removeTags {
		if e.HasComponent(components.Stunned) {
			donburi.Remove[components.StunnedState](e, components.Stunned)
		}
		if e.HasComponent(components.Falling) {
			donburi.Remove[components.FallingState](e, components.Falling)
		}
	}

	for _, e := range revived {
		guard := components.Guard.Get(e)
		guard.Respawning = false
		guard.RespawnTimer = 0
		if e.HasComponent(components.Overlaps) {
			components.Overlaps.Get(e).Active = true
		}
		donburi.Remove[components.KilledState](e, components.Killed)
	}
}

// UpdateExitLadders reveals the hidden ladders once every treasure has been
// collected, then completes the level when a runner reaches the top row.
func UpdateExitLadders(ecs *ecs.ECS) {
	level := levelOf(ecs)
	if level == nil || level.Complete {
		return
	}

	if !level.ExitOpen {
		if level.Collected < level.Grid.TreasureCount() {
			return
		}
		for _, p := range level.HiddenExit {
			level.Grid.Set(p, grid.Ladder)
		}
		level.ExitOpen = true
		components.ExitRevealedEvent.Publish(ecs.World, components.ExitRevealed{
			Cells: append([]grid.Pos(nil), level.HiddenExit...),
		})
	}

	top := level.Grid.Height() - 1
	finisherQuery.Each(ecs.World, func(e *donburi.Entry) {
		if level.Complete || components.GridTransform.Get(e).Pos.Y < top {
			return
		}
		level.Complete = true
		components.LevelCompleteEvent.Publish(ecs.World, components.LevelComplete{
			Runner: e.Entity(),
			Tick:   level.Tick,
		})
	})
}
