package systems

import (
	"log"

	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var diggerQuery = donburi.NewQuery(filter.Contains(components.Runner, components.Intent, components.GridTransform))

var burnableQuery = donburi.NewQuery(filter.Contains(components.Burnable, components.GridTransform))

// UpdateBurnTriggers starts a burn under the runner's left or right side when
// the runner asks to dig and the brick there is idle. The tile beside the
// runner on that side must not be a blocker. Dig requests last one tick:
// they are cleared for every runner, including falling and killed ones.
func UpdateBurnTriggers(ecs *ecs.ECS) {
	level := levelOf(ecs)
	if level == nil {
		return
	}

	diggerQuery.Each(ecs.World, func(e *donburi.Entry) {
		intent := components.Intent.Get(e)
		digLeft, digRight := intent.DigLeft, intent.DigRight
		intent.DigLeft, intent.DigRight = false, false
		if e.HasComponent(components.Falling) || e.HasComponent(components.Killed) {
			return
		}

		tiles := level.Grid.Around(components.GridTransform.Get(e).Pos)
		switch {
		case digLeft && tiles.Left.Kind != grid.Blocker && StartBurn(ecs.World, tiles.BelowLeft):
		case digRight && tiles.Right.Kind != grid.Blocker && StartBurn(ecs.World, tiles.BelowRight):
		}
	})
}

// StartBurn begins the burn cycle of the brick bound to t. It reports false
// when the tile holds no brick or the brick is already mid-cycle.
func StartBurn(w donburi.World, t grid.Tile) bool {
	if !holdsBurnable(w, t) {
		return false
	}
	entry := w.Entry(t.Entity)
	burnable := components.Burnable.Get(entry)
	if burnable.State != components.NotBurning {
		return false
	}

	burnable.Elapsed = 0
	setBurnState(w, entry, burnable, t.Pos, components.StartingBurn)
	return true
}

// UpdateBurnables advances every brick's burn cycle. Elapsed runs from the
// trigger; the cell reads None from Burnt until the brick is restored, at
// which point anything standing in it is killed.
func UpdateBurnables(ecs *ecs.ECS) {
	level := levelOf(ecs)
	if level == nil {
		return
	}

	var restored []grid.Pos
	burnableQuery.Each(ecs.World, func(e *donburi.Entry) {
		burnable := components.Burnable.Get(e)
		cell := components.GridTransform.Get(e).Pos
		burnable.Elapsed += level.DeltaTime

		switch burnable.State {
		case components.StartingBurn:
			setBurnState(ecs.World, e, burnable, cell, components.Burning)
		case components.Burning:
			if burnable.Elapsed > cfg.Burn.BurntAfter {
				setBurnState(ecs.World, e, burnable, cell, components.Burnt)
				level.Grid.Set(cell, grid.None)
			}
		case components.Burnt:
			level.Grid.Set(cell, grid.None)
			if burnable.Elapsed > cfg.Burn.RebuildingAfter {
				setBurnState(ecs.World, e, burnable, cell, components.Rebuilding)
			}
		case components.Rebuilding:
			if burnable.Elapsed > cfg.Burn.RestoredAfter {
				setBurnState(ecs.World, e, burnable, cell, components.NotBurning)
				level.Grid.Set(cell, grid.Blocker)
				restored = append(restored, cell)
			}
		default:
			burnable.Elapsed = 0
		}
	})

	for _, cell := range restored {
		killInCell(ecs, cell)
	}
}

func setBurnState(w donburi.World, e *donburi.Entry, burnable *components.BurnableData, cell grid.Pos, to components.BurnState) {
	from := burnable.State
	burnable.State = to
	components.BurnTransitionEvent.Publish(w, components.BurnTransition{
		Entity: e.Entity(),
		Cell:   cell,
		From:   from,
		To:     to,
	})
}

// killInCell tags every active character whose overlap box intersects the
// cell. The level Space narrows the candidates; the exact test uses the
// overlap extents.
func killInCell(ecs *ecs.ECS, cell grid.Pos) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	center := cfg.Grid.ToWorld(cell)
	w, h := cfg.Grid.TileWidth, cfg.Grid.TileHeight
	footprint := resolv.NewObject(center.X-w/2, center.Y-h/2, w, h)
	space.Add(footprint)
	defer space.Remove(footprint)

	check := footprint.Check(0, 0, tags.ResolvCharacter)
	if check == nil {
		return
	}

	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || entry.HasComponent(components.Killed) {
			continue
		}
		if !entry.HasComponent(components.Overlaps) || !components.Overlaps.Get(entry).Active {
			continue
		}

		overlaps := components.Overlaps.Get(entry)
		pos := components.Transform.Get(entry).Position
		dx, dy := pos.X-center.X, pos.Y-center.Y
		if abs(dx) >= (w+overlaps.Width)/2 || abs(dy) >= (h+overlaps.Height)/2 {
			continue
		}

		donburi.Add(entry, components.Killed, &components.KilledState{})
		log.Printf("[burn] brick at %v closed on entity %v", cell, entry.Entity())
		if entry.HasComponent(components.Runner) {
			components.RunnerKilledEvent.Publish(ecs.World, components.RunnerKilled{
				Runner: entry.Entity(),
				By:     donburi.Null,
				Cell:   cell,
			})
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
