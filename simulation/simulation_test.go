package simulation

import (
	"testing"

	"github.com/dakitten2358/loderunner/components"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 60

func newSim(t *testing.T, rows ...string) *Simulation {
	t.Helper()
	doc := leveldata.ParseRows(rows)
	doc.Name = t.Name()
	sim, err := New(doc, Options{Seed: 1})
	require.NoError(t, err)
	return sim
}

func TestNewRejectsEmptyLevel(t *testing.T) {
	_, err := New(&leveldata.Document{Name: "empty"}, Options{})
	assert.ErrorIs(t, err, leveldata.ErrMissingDimensions)
}

func TestNewRejectsBadPipeline(t *testing.T) {
	doc := leveldata.ParseRows([]string{"&", "#"})
	_, err := New(doc, Options{Stages: []Stage{
		{Name: "a", Run: noop, After: []string{"a"}},
	}})
	assert.ErrorIs(t, err, ErrStageCycle)
}

func TestSetIntentRejectsUnknownEntity(t *testing.T) {
	sim := newSim(t, " & ", "###")
	assert.Error(t, sim.SetIntent(donburi.Null, components.IntentData{Right: true}))
}

func TestRunnerCollectsTreasureAndEscapes(t *testing.T) {
	sim := newSim(t,
		"    S",
		"    S",
		"& $ S",
		"#####",
	)
	require.Len(t, sim.Runners(), 1)
	runner := sim.Runners()[0]

	var collected []components.TreasureCollected
	var revealed []components.ExitRevealed
	var complete []components.LevelComplete
	sim.OnTreasureCollected(func(ev components.TreasureCollected) { collected = append(collected, ev) })
	sim.OnExitRevealed(func(ev components.ExitRevealed) { revealed = append(revealed, ev) })
	sim.OnLevelComplete(func(ev components.LevelComplete) { complete = append(complete, ev) })

	for i := 0; i < 600 && !sim.Complete(); i++ {
		cell, ok := sim.Cell(runner)
		require.True(t, ok)
		if cell.X < 4 {
			require.NoError(t, sim.SetIntent(runner, components.IntentData{Right: true}))
		} else {
			require.NoError(t, sim.SetIntent(runner, components.IntentData{Up: true}))
		}
		sim.Step(dt)
	}

	require.True(t, sim.Complete())
	require.Len(t, collected, 1)
	assert.Equal(t, grid.Pos{X: 2, Y: 1}, collected[0].Cell)
	assert.Equal(t, 0, collected[0].Remaining)

	require.Len(t, revealed, 1)
	assert.ElementsMatch(t, []grid.Pos{{X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}}, revealed[0].Cells)
	assert.Equal(t, grid.Ladder, sim.Grid().At(grid.Pos{X: 4, Y: 2}).Kind)

	require.Len(t, complete, 1)
	assert.Equal(t, runner, complete[0].Runner)
	assert.Equal(t, sim.Tick(), complete[0].Tick)
}

func TestRunnerTrappedByRestoredBrick(t *testing.T) {
	sim := newSim(t,
		"    ",
		" &  ",
		"####",
	)
	runner := sim.Runners()[0]

	var transitions []components.BurnState
	var killed []components.RunnerKilled
	sim.OnBurnTransition(func(ev components.BurnTransition) {
		assert.Equal(t, grid.Pos{X: 2, Y: 0}, ev.Cell)
		transitions = append(transitions, ev.To)
	})
	sim.OnRunnerKilled(func(ev components.RunnerKilled) { killed = append(killed, ev) })

	require.NoError(t, sim.SetIntent(runner, components.IntentData{DigRight: true}))
	for i := 0; i < 40; i++ {
		sim.Step(dt)
	}
	assert.Equal(t, grid.None, sim.Grid().At(grid.Pos{X: 2, Y: 0}).Kind)

	for i := 0; i < 120; i++ {
		if cell, _ := sim.Cell(runner); cell.Y == 0 {
			break
		}
		require.NoError(t, sim.SetIntent(runner, components.IntentData{Right: true}))
		sim.Step(dt)
	}
	for i := 0; i < 400 && len(killed) == 0; i++ {
		sim.Step(dt)
	}

	require.Len(t, killed, 1)
	assert.Equal(t, runner, killed[0].Runner)
	assert.Equal(t, donburi.Null, killed[0].By)
	assert.Equal(t, grid.Pos{X: 2, Y: 0}, killed[0].Cell)
	assert.Equal(t, []components.BurnState{
		components.StartingBurn,
		components.Burning,
		components.Burnt,
		components.Rebuilding,
		components.NotBurning,
	}, transitions)
	assert.Equal(t, grid.Blocker, sim.Grid().At(grid.Pos{X: 2, Y: 0}).Kind)
}

func TestStepAdvancesTick(t *testing.T) {
	sim := newSim(t, "&", "#")
	sim.Step(dt)
	sim.Step(dt)
	assert.Equal(t, uint64(2), sim.Tick())
	assert.Equal(t, dt, sim.Level().DeltaTime)
	assert.Len(t, sim.StageNames(), len(DefaultStages()))
}
