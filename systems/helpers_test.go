package systems

import (
	"testing"

	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/shared/leveldata"
	"github.com/dakitten2358/loderunner/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

const dt = 1.0 / 60

var pipeline = []ecs.System{
	UpdateGuardAI,
	UpdateBots,
	UpdateBurnTriggers,
	UpdateMovement,
	UpdateFalling,
	ApplyCommands,
	UpdateGridTransforms,
	UpdateObjects,
	UpdateOverlaps,
	UpdateBurnables,
	UpdatePickups,
	UpdateGuardKills,
	UpdateTreasureDrops,
	UpdateGuardRespawn,
	UpdateExitLadders,
}

type testLevel struct {
	ecs   *ecs.ECS
	level *components.LevelData
}

func newTestLevel(t *testing.T, rows ...string) *testLevel {
	t.Helper()
	return newTestLevelWith(t, factory.LevelOptions{Seed: 1}, rows...)
}

func newTestLevelWith(t *testing.T, opts factory.LevelOptions, rows ...string) *testLevel {
	t.Helper()
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())
	entry, err := factory.CreateLevel(e, leveldata.ParseRows(rows), opts)
	require.NoError(t, err)
	return &testLevel{ecs: e, level: components.Level.Get(entry)}
}

func (tl *testLevel) step(n int) {
	for i := 0; i < n; i++ {
		tl.level.DeltaTime = dt
		tl.level.Tick++
		for _, s := range pipeline {
			s(tl.ecs)
		}
		events.ProcessAllEvents(tl.ecs.World)
	}
}

func (tl *testLevel) runner() *donburi.Entry {
	e, _ := components.Runner.First(tl.ecs.World)
	return e
}

func (tl *testLevel) guard() *donburi.Entry {
	e, _ := components.Guard.First(tl.ecs.World)
	return e
}

// place teleports a character onto the center of cell.
func (tl *testLevel) place(e *donburi.Entry, cell grid.Pos) {
	components.Transform.Get(e).Position = cfg.Grid.ToWorld(cell)
	components.GridTransform.Get(e).Pos = cell
}

func (tl *testLevel) press(e *donburi.Entry, intent components.IntentData) {
	*components.Intent.Get(e) = intent
}

func pos(e *donburi.Entry) (float64, float64) {
	p := components.Transform.Get(e).Position
	return p.X, p.Y
}

func cell(e *donburi.Entry) grid.Pos {
	return components.GridTransform.Get(e).Pos
}
