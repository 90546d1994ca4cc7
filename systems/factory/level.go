package factory

import (
	"fmt"
	"log"

	"github.com/dakitten2358/loderunner/archetypes"
	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/nav"
	"github.com/dakitten2358/loderunner/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelOptions controls how a level document is spawned.
type LevelOptions struct {
	Seed int64
	// LocalRunner marks the first runner as keyboard driven.
	LocalRunner bool
	// Autopilot puts every runner that is not keyboard driven under bot
	// control.
	Autopilot bool
}

// CreateLevel builds the grid from doc, then spawns the collision space and
// one entity per tagged cell. Bricks and treasure are bound to their cells.
func CreateLevel(ecs *ecs.ECS, doc *leveldata.Document, opts LevelOptions) (*donburi.Entry, error) {
	g, err := grid.FromDocument(doc, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	tw, th := cfg.Grid.TileWidth, cfg.Grid.TileHeight
	CreateSpace(ecs,
		int(float64(g.Width())*tw),
		int(float64(g.Height()+1)*th),
		int(tw), int(th),
	)

	level := archetypes.Level.Spawn(ecs)
	levelData := &components.LevelData{
		Name: doc.Name,
		Grid: g,
	}

	local := opts.LocalRunner
	for _, c := range doc.Cells {
		cell := grid.Pos{X: c.X, Y: c.Y}
		if !g.InBounds(cell) {
			continue
		}

		switch c.Type {
		case leveldata.Brick:
			g.SetEntity(cell, CreateBrick(ecs, cell).Entity())
		case leveldata.SolidBrick:
			g.SetEntity(cell, CreateSolidBrick(ecs, cell).Entity())
		case leveldata.FalseBrick:
			CreateFalseBrick(ecs, cell)
		case leveldata.Treasure:
			g.SetEntity(cell, CreateTreasure(ecs, cell).Entity())
		case leveldata.HiddenLadder:
			levelData.HiddenExit = append(levelData.HiddenExit, cell)
		case leveldata.GuardSpawn:
			CreateGuard(ecs, cell)
		case leveldata.PlayerSpawn:
			runner := CreateRunner(ecs, cell, local)
			if opts.Autopilot && !local {
				donburi.Add(runner, components.Bot, &components.BotData{})
			}
			local = false
		}
	}

	levelData.NavMesh = nav.Build(g, nav.Options{RequireFooting: cfg.Nav.RequireFooting})
	components.Level.Set(level, levelData)

	log.Printf("[level] spawned %q: %dx%d, %d treasure, %d navmesh nodes",
		doc.Name, g.Width(), g.Height(), g.TreasureCount(), len(levelData.NavMesh.Nodes))
	return level, nil
}
