package systems

import (
	"testing"

	"github.com/dakitten2358/loderunner/components"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func brickAt(tl *testLevel, p grid.Pos) *donburi.Entry {
	return tl.ecs.World.Entry(tl.level.Grid.At(p).Entity)
}

func TestStartBurnRejectsNonBricksAndBusyBricks(t *testing.T) {
	tl := newTestLevel(t,
		"    ",
		" &  ",
		"#@$ ",
	)
	g := tl.level.Grid

	assert.False(t, StartBurn(tl.ecs.World, g.At(grid.Pos{X: 1, Y: 0})), "solid brick")
	assert.False(t, StartBurn(tl.ecs.World, g.At(grid.Pos{X: 3, Y: 0})), "empty cell")
	assert.False(t, StartBurn(tl.ecs.World, g.At(grid.Pos{X: 2, Y: 0})), "treasure")

	require.True(t, StartBurn(tl.ecs.World, g.At(grid.Pos{X: 0, Y: 0})))
	assert.Equal(t, components.StartingBurn, components.Burnable.Get(brickAt(tl, grid.Pos{X: 0, Y: 0})).State)
	assert.False(t, StartBurn(tl.ecs.World, g.At(grid.Pos{X: 0, Y: 0})), "already burning")
}

func TestBurnCycleTiming(t *testing.T) {
	tl := newTestLevel(t,
		"   ",
		" & ",
		"###",
	)
	p := grid.Pos{X: 0, Y: 0}
	brick := brickAt(tl, p)
	burnable := components.Burnable.Get(brick)
	require.True(t, StartBurn(tl.ecs.World, tl.level.Grid.At(p)))

	// quarter-second ticks keep the thresholds exact
	tl.level.DeltaTime = 0.25
	want := map[int]components.BurnState{
		1:  components.Burning,
		2:  components.Burning,
		3:  components.Burnt,
		18: components.Burnt,
		19: components.Rebuilding,
		20: components.Rebuilding,
		21: components.NotBurning,
	}
	for tick := 1; tick <= 21; tick++ {
		UpdateBurnables(tl.ecs)
		if tick == 1 {
			// the trigger tick already counts toward the burn
			assert.InDelta(t, 0.25, burnable.Elapsed, 1e-9)
		}
		if state, ok := want[tick]; ok {
			assert.Equal(t, state, burnable.State, "tick %d", tick)
		}
		switch {
		case tick < 3:
			assert.Equal(t, grid.Blocker, tl.level.Grid.At(p).Kind, "tick %d", tick)
		case tick < 21:
			assert.Equal(t, grid.None, tl.level.Grid.At(p).Kind, "tick %d", tick)
		default:
			assert.Equal(t, grid.Blocker, tl.level.Grid.At(p).Kind, "tick %d", tick)
		}
	}

	UpdateBurnables(tl.ecs)
	assert.Equal(t, components.NotBurning, burnable.State)
	assert.Zero(t, burnable.Elapsed)
}

func TestBurnTransitionsArePublished(t *testing.T) {
	tl := newTestLevel(t,
		"   ",
		" & ",
		"###",
	)
	var got []components.BurnTransition
	components.BurnTransitionEvent.Subscribe(tl.ecs.World, func(_ donburi.World, ev components.BurnTransition) {
		got = append(got, ev)
	})

	p := grid.Pos{X: 2, Y: 0}
	require.True(t, StartBurn(tl.ecs.World, tl.level.Grid.At(p)))
	tl.level.DeltaTime = 1
	for i := 0; i < 6; i++ {
		UpdateBurnables(tl.ecs)
	}
	events.ProcessAllEvents(tl.ecs.World)

	require.Len(t, got, 5)
	assert.Equal(t, components.NotBurning, got[0].From)
	assert.Equal(t, components.StartingBurn, got[0].To)
	assert.Equal(t, components.Rebuilding, got[4].From)
	assert.Equal(t, components.NotBurning, got[4].To)
	for _, ev := range got {
		assert.Equal(t, p, ev.Cell)
	}
}

func TestDigNeedsOpenSide(t *testing.T) {
	tl := newTestLevel(t,
		"    ",
		" &# ",
		"####",
	)
	r := tl.runner()

	tl.press(r, components.IntentData{DigRight: true})
	tl.step(1)
	assert.Equal(t, components.NotBurning, components.Burnable.Get(brickAt(tl, grid.Pos{X: 2, Y: 0})).State)
	assert.False(t, components.Intent.Get(r).DigRight)

	tl.press(r, components.IntentData{DigLeft: true})
	tl.step(1)
	assert.Equal(t, components.Burning, components.Burnable.Get(brickAt(tl, grid.Pos{X: 0, Y: 0})).State)
}

func TestFallingRunnerCannotDig(t *testing.T) {
	tl := newTestLevel(t,
		" &  ",
		"    ",
		"####",
	)
	r := tl.runner()
	tl.step(1)
	require.True(t, r.HasComponent(components.Falling))

	tl.press(r, components.IntentData{DigRight: true})
	UpdateBurnTriggers(tl.ecs)
	assert.Equal(t, components.NotBurning, components.Burnable.Get(brickAt(tl, grid.Pos{X: 2, Y: 0})).State)
	assert.False(t, components.Intent.Get(r).DigRight)
}

func TestDigDuringFallIsDroppedOnLanding(t *testing.T) {
	tl := newTestLevel(t,
		" &  ",
		"    ",
		"####",
	)
	r := tl.runner()
	tl.step(1)
	require.True(t, r.HasComponent(components.Falling))

	tl.press(r, components.IntentData{DigRight: true})
	for i := 0; i < 120 && r.HasComponent(components.Falling); i++ {
		tl.step(1)
	}
	require.False(t, r.HasComponent(components.Falling))
	tl.step(2)

	assert.Equal(t, grid.Pos{X: 1, Y: 1}, cell(r))
	assert.False(t, components.Intent.Get(r).DigRight)
	for x := 0; x < 4; x++ {
		assert.Equal(t, components.NotBurning, components.Burnable.Get(brickAt(tl, grid.Pos{X: x, Y: 0})).State, "brick %d", x)
	}
}

func TestGuardWedgedInHoleIsKilledOnRestore(t *testing.T) {
	tl := newTestLevel(t,
		"     ",
		"  0 $",
		"#####",
	)
	g := tl.guard()
	hole := grid.Pos{X: 2, Y: 0}

	// hand the guard the treasure as if it had walked over it
	treasure := tl.level.Grid.At(grid.Pos{X: 4, Y: 1}).Entity
	components.Guard.Get(g).Carrying = treasure
	components.Overlaps.Get(tl.ecs.World.Entry(treasure)).Active = false
	tl.level.Grid.ClearEntity(grid.Pos{X: 4, Y: 1})

	var stunned []components.GuardStunned
	components.GuardStunnedEvent.Subscribe(tl.ecs.World, func(_ donburi.World, ev components.GuardStunned) {
		stunned = append(stunned, ev)
	})

	require.True(t, StartBurn(tl.ecs.World, tl.level.Grid.At(hole)))
	for i := 0; i < 60 && !g.HasComponent(components.Stunned); i++ {
		tl.step(1)
	}

	require.True(t, g.HasComponent(components.Stunned))
	assert.Equal(t, hole, cell(g))
	require.Len(t, stunned, 1)
	assert.Equal(t, hole, stunned[0].Cell)
	assert.True(t, tl.level.Grid.HasOverride(hole))
	assert.Equal(t, grid.Blocker, tl.level.Grid.At(hole).Kind)

	// the treasure pops out above the hole
	assert.Equal(t, donburi.Null, components.Guard.Get(g).Carrying)
	above := grid.Pos{X: 2, Y: 1}
	assert.Equal(t, treasure, tl.level.Grid.At(above).Entity)
	assert.True(t, components.Overlaps.Get(tl.ecs.World.Entry(treasure)).Active)

	for i := 0; i < 400 && !g.HasComponent(components.Killed); i++ {
		tl.step(1)
	}
	require.True(t, g.HasComponent(components.Killed))
	assert.False(t, g.HasComponent(components.Stunned))
	assert.False(t, tl.level.Grid.HasOverride(hole))
	assert.Equal(t, tl.level.Grid.Height()-1, cell(g).Y, "moved to a respawn cell")
	assert.False(t, components.Overlaps.Get(g).Active)

	for i := 0; i < 130; i++ {
		tl.step(1)
	}
	assert.False(t, g.HasComponent(components.Killed))
	assert.True(t, components.Overlaps.Get(g).Active)
}
