// Package leveldata decodes level documents (JSON cell lists, classic row
// strings and Tiled maps). It is pure data: no ECS or collision types.
package leveldata

import "errors"

// ErrMissingDimensions is returned for documents without a usable rectangle.
var ErrMissingDimensions = errors.New("leveldata: level document is missing its dimensions")

// TileType is the tag a level document carries on a non-empty cell.
type TileType string

const (
	Brick        TileType = "blocker"
	SolidBrick   TileType = "solid-blocker"
	Ladder       TileType = "ladder"
	Rope         TileType = "rope"
	FalseBrick   TileType = "false-brick"
	HiddenLadder TileType = "hidden-ladder"
	Treasure     TileType = "treasure"
	GuardSpawn   TileType = "guard-spawn"
	PlayerSpawn  TileType = "player-spawn"
)

var validTypes = map[TileType]bool{
	Brick:        true,
	SolidBrick:   true,
	Ladder:       true,
	Rope:         true,
	FalseBrick:   true,
	HiddenLadder: true,
	Treasure:     true,
	GuardSpawn:   true,
	PlayerSpawn:  true,
}

func (t TileType) Valid() bool {
	return validTypes[t]
}

// Document is a decoded level: a Width×Height rectangle whose non-empty
// cells carry a tag. Origin is bottom-left, y grows upward.
type Document struct {
	Name   string `json:"name,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []Cell `json:"cells"`
}

// Cell is one tagged position of a Document.
type Cell struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Type TileType `json:"type"`
}

// CellsOf returns the cells carrying the given tag, in document order.
func (d *Document) CellsOf(t TileType) []Cell {
	var out []Cell
	for _, c := range d.Cells {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Validate reports a fatal load error for documents without dimensions.
func (d *Document) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return ErrMissingDimensions
	}
	return nil
}
