package config

import (
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// ToWorld returns the world position of a cell's center.
func (g GridConfig) ToWorld(p grid.Pos) math.Vec2 {
	return math.NewVec2(
		gamemath.CellCenter(p.X, g.TileWidth, g.OffsetX),
		gamemath.CellCenter(p.Y, g.TileHeight, g.OffsetY),
	)
}

// ToCell returns the cell whose center is nearest to v.
func (g GridConfig) ToCell(v math.Vec2) grid.Pos {
	return grid.Pos{
		X: gamemath.CellOf(v.X, g.TileWidth, g.OffsetX),
		Y: gamemath.CellOf(v.Y, g.TileHeight, g.OffsetY),
	}
}

// Snap returns v moved onto the nearest cell center.
func (g GridConfig) Snap(v math.Vec2) math.Vec2 {
	return math.NewVec2(
		gamemath.SnapToGrid(v.X, g.TileWidth, g.OffsetX),
		gamemath.SnapToGrid(v.Y, g.TileHeight, g.OffsetY),
	)
}
