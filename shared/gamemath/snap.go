package gamemath

import "math"

// SnapToGrid rounds p to the nearest tile center, given the tile size and the
// world offset of cell 0.
func SnapToGrid(p, tile, offset float64) float64 {
	return math.Round((p-offset)/tile)*tile + offset
}

// CellOf returns the cell index containing world coordinate p.
func CellOf(p, tile, offset float64) int {
	return int(math.Round((p - offset) / tile))
}

// CellCenter is the inverse of CellOf.
func CellCenter(cell int, tile, offset float64) float64 {
	return float64(cell)*tile + offset
}
