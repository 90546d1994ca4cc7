package factory

import (
	"testing"

	"github.com/dakitten2358/loderunner/components"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/shared/leveldata"
	"github.com/dakitten2358/loderunner/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateLevel(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	doc := leveldata.ParseRows([]string{
		"   S ",
		"&-H$0",
		"#@#X#",
	})
	doc.Name = "sample"

	entry, err := CreateLevel(e, doc, LevelOptions{Seed: 3, LocalRunner: true})
	require.NoError(t, err)
	level := components.Level.Get(entry)

	assert.Equal(t, "sample", level.Name)
	assert.Equal(t, 1, level.Grid.TreasureCount())
	assert.Equal(t, []grid.Pos{{X: 3, Y: 2}}, level.HiddenExit)
	require.NotNil(t, level.NavMesh)

	g := level.Grid
	assert.Equal(t, grid.Blocker, g.At(grid.Pos{X: 0, Y: 0}).Kind)
	assert.Equal(t, grid.Blocker, g.At(grid.Pos{X: 1, Y: 0}).Kind)
	assert.Equal(t, grid.None, g.At(grid.Pos{X: 3, Y: 0}).Kind, "false brick")
	assert.Equal(t, grid.Rope, g.At(grid.Pos{X: 1, Y: 1}).Kind)
	assert.Equal(t, grid.Ladder, g.At(grid.Pos{X: 2, Y: 1}).Kind)

	brick := e.World.Entry(g.At(grid.Pos{X: 0, Y: 0}).Entity)
	assert.True(t, brick.HasComponent(components.Burnable))
	solid := e.World.Entry(g.At(grid.Pos{X: 1, Y: 0}).Entity)
	assert.True(t, solid.HasComponent(tags.SolidBrick))
	assert.False(t, solid.HasComponent(components.Burnable))
	treasure := e.World.Entry(g.At(grid.Pos{X: 3, Y: 1}).Entity)
	assert.True(t, treasure.HasComponent(tags.Treasure))
	assert.False(t, g.At(grid.Pos{X: 3, Y: 0}).HasEntity())

	runner, ok := components.Runner.First(e.World)
	require.True(t, ok)
	assert.True(t, runner.HasComponent(tags.LocalPlayer))
	assert.Equal(t, grid.Pos{X: 0, Y: 1}, components.GridTransform.Get(runner).Pos)
	data, ok := components.Object.Get(runner).Data.(*donburi.Entry)
	require.True(t, ok)
	assert.Equal(t, runner.Entity(), data.Entity())
	assert.True(t, components.Object.Get(runner).HasTags(tags.ResolvRunner))

	guard, ok := components.Guard.First(e.World)
	require.True(t, ok)
	assert.Equal(t, grid.Pos{X: 4, Y: 1}, components.GridTransform.Get(guard).Pos)
	assert.Equal(t, donburi.Null, components.Guard.Get(guard).Carrying)
}

func TestCreateLevelMissingDimensions(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	_, err := CreateLevel(e, &leveldata.Document{Name: "broken"}, LevelOptions{})
	assert.ErrorIs(t, err, leveldata.ErrMissingDimensions)
}
