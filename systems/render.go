package systems

import (
	"fmt"
	"image/color"

	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// toScreen converts a world position (y up) to screen space (y down), with
// the level's bottom-left corner at the bottom-left of the level area.
func toScreen(level *components.LevelData, v math2.Vec2) (float32, float32) {
	left := cfg.Grid.OffsetX - cfg.Grid.TileWidth/2
	bottom := cfg.Grid.OffsetY - cfg.Grid.TileHeight/2
	top := bottom + float64(level.Grid.Height())*cfg.Grid.TileHeight
	return float32(v.X - left), float32(top - v.Y)
}

func fillBox(screen *ebiten.Image, level *components.LevelData, center math2.Vec2, w, h float64, c color.Color) {
	x, y := toScreen(level, center)
	vector.FillRect(screen, x-float32(w/2), y-float32(h/2), float32(w), float32(h), c, false)
}

// DrawLevel draws every non-empty cell in its kind's color. Overridden cells
// are outlined so wedged guards are visible.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	level := levelOf(ecs)
	if level == nil {
		return
	}
	screen.Fill(cfg.Viewer.BackgroundColor)

	tw, th := cfg.Grid.TileWidth, cfg.Grid.TileHeight
	for y := 0; y < level.Grid.Height(); y++ {
		for x := 0; x < level.Grid.Width(); x++ {
			p := grid.Pos{X: x, Y: y}
			center := cfg.Grid.ToWorld(p)
			switch kind := level.Grid.At(p).Kind; kind {
			case grid.Blocker:
				fillBox(screen, level, center, tw-1, th-1, cfg.Viewer.KindColors["blocker"])
			case grid.Ladder:
				fillBox(screen, level, math2.NewVec2(center.X-tw/3, center.Y), 2, th, cfg.Viewer.KindColors["ladder"])
				fillBox(screen, level, math2.NewVec2(center.X+tw/3, center.Y), 2, th, cfg.Viewer.KindColors["ladder"])
			case grid.Rope:
				fillBox(screen, level, math2.NewVec2(center.X, center.Y+th/3), tw, 2, cfg.Viewer.KindColors["rope"])
			}
			if level.Grid.HasOverride(p) {
				fillBox(screen, level, center, tw, 1, cfg.Red)
			}
		}
	}

	// false bricks look solid but are not
	tags.FalseBrick.Each(ecs.World, func(e *donburi.Entry) {
		center := cfg.Grid.ToWorld(components.GridTransform.Get(e).Pos)
		fillBox(screen, level, center, tw-1, th-1, cfg.Viewer.KindColors["blocker"])
	})
}

// DrawActors draws treasure and characters as colored boxes sized by their
// overlap extents.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	level := levelOf(ecs)
	if level == nil {
		return
	}

	components.Overlaps.Each(ecs.World, func(e *donburi.Entry) {
		overlaps := components.Overlaps.Get(e)
		if !overlaps.Active || !e.HasComponent(components.Transform) {
			return
		}

		var c color.Color
		switch {
		case e.HasComponent(tags.Treasure):
			c = cfg.Viewer.TreasureColor
		case e.HasComponent(components.Runner):
			c = cfg.Viewer.RunnerColor
		case e.HasComponent(components.Guard):
			c = cfg.Viewer.GuardColor
		default:
			return
		}
		if e.HasComponent(components.Killed) {
			c = cfg.Gray
		}
		position := components.Transform.Get(e).Position
		fillBox(screen, level, position, overlaps.Width, overlaps.Height, c)
		if marker, ok := fallMarker(e); ok {
			fillBox(screen, level, marker, 2, 2, cfg.Viewer.BackgroundColor)
		}
	})
}

// fallMarker places a notch on the side a falling character was heading when
// the fall began. Straight drops get no notch.
func fallMarker(e *donburi.Entry) (math2.Vec2, bool) {
	if !e.HasComponent(components.Falling) || !e.HasComponent(components.Movement) {
		return math2.Vec2{}, false
	}
	drift := components.Movement.Get(e).FallDrift
	if drift == 0 {
		return math2.Vec2{}, false
	}
	position := components.Transform.Get(e).Position
	width := components.Overlaps.Get(e).Width
	return math2.NewVec2(position.X+drift*(width/2-1), position.Y), true
}

// DrawDebug draws guard and bot routes when enabled, plus a status line.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	level := levelOf(ecs)
	if level == nil {
		return
	}

	if cfg.Viewer.ShowPaths {
		components.PathFollower.Each(ecs.World, func(e *donburi.Entry) {
			for _, p := range components.PathFollower.Get(e).Waypoints {
				fillBox(screen, level, cfg.Grid.ToWorld(p), 4, 4, cfg.Viewer.PathColor)
			}
		})
		components.Bot.Each(ecs.World, func(e *donburi.Entry) {
			for _, p := range components.Bot.Get(e).Waypoints {
				fillBox(screen, level, cfg.Grid.ToWorld(p), 4, 4, cfg.Viewer.RunnerColor)
			}
		})
	}

	status := fmt.Sprintf("%s  tick %d  treasure %d/%d", level.Name, level.Tick, level.Collected, level.Grid.TreasureCount())
	switch {
	case level.Complete:
		status += "  COMPLETE"
	case level.ExitOpen:
		status += "  exit open"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, screen.Bounds().Dy()-16)
}
