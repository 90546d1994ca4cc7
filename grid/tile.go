package grid

import "github.com/yohamta/donburi"

// Kind is the traversability class of a cell.
type Kind int

const (
	None Kind = iota
	Blocker
	Ladder
	Rope
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Blocker:
		return "Blocker"
	case Ladder:
		return "Ladder"
	case Rope:
		return "Rope"
	}
	return "Unknown"
}

// Pos is an integer cell coordinate. Origin is bottom-left, y grows upward.
type Pos struct {
	X, Y int
}

func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Pos) Sub(o Pos) Pos {
	return Pos{X: p.X - o.X, Y: p.Y - o.Y}
}

var (
	Up    = Pos{X: 0, Y: 1}
	Down  = Pos{X: 0, Y: -1}
	Left  = Pos{X: -1, Y: 0}
	Right = Pos{X: 1, Y: 0}
)

// Tile is the effective view of one cell.
type Tile struct {
	Pos    Pos
	Kind   Kind
	Entity donburi.Entity // donburi.Null when the cell holds nothing
}

// HasEntity reports whether a tile entity (brick, treasure...) is bound to the cell.
func (t Tile) HasEntity() bool {
	return t.Entity != donburi.Null
}

// TilesAround is the neighbourhood movement, AI and burn logic inspect.
type TilesAround struct {
	Above      Tile
	Below      Tile
	Left       Tile
	Right      Tile
	On         Tile
	BelowLeft  Tile
	BelowRight Tile
}
