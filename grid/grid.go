// Package grid holds the authoritative tile classification of a level and the
// temporary blocking overrides layered on top of it.
package grid

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/dakitten2358/loderunner/shared/leveldata"
	"github.com/yohamta/donburi"
)

var ErrInvalidSize = errors.New("grid: width and height must be positive")

// Grid is the level's tile array. It is not safe for concurrent mutation; the
// simulation pipeline serialises every write.
type Grid struct {
	width, height int

	tiles     []Kind
	entities  []donburi.Entity
	overrides map[Pos]Kind

	treasures int
	respawns  []Pos
	rng       *rand.Rand
	revision  uint64
}

// New returns an empty width×height grid.
func New(width, height int, seed int64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	g := &Grid{
		width:     width,
		height:    height,
		tiles:     make([]Kind, width*height),
		entities:  make([]donburi.Entity, width*height),
		overrides: make(map[Pos]Kind),
		rng:       rand.New(rand.NewSource(seed)),
	}
	for i := range g.entities {
		g.entities[i] = donburi.Null
	}
	return g, nil
}

// FromDocument builds a grid from a decoded level document and counts its
// treasures. Unknown tags and cells outside the rectangle are skipped.
func FromDocument(doc *leveldata.Document, seed int64) (*Grid, error) {
	if doc == nil {
		return nil, leveldata.ErrMissingDimensions
	}
	g, err := New(doc.Width, doc.Height, seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", leveldata.ErrMissingDimensions, err)
	}

	tagged := make(map[Pos]bool, len(doc.Cells))
	var guardSpawns []Pos
	for _, c := range doc.Cells {
		pos := Pos{X: c.X, Y: c.Y}
		if !g.InBounds(pos) {
			log.Printf("[grid] warning: cell %v outside %dx%d level, skipped", pos, g.width, g.height)
			continue
		}
		if !c.Type.Valid() {
			log.Printf("[grid] warning: unrecognized tile tag %q at %v, treated as empty", c.Type, pos)
			continue
		}
		tagged[pos] = true
		g.tiles[g.index(pos)] = KindOf(c.Type)
		switch c.Type {
		case leveldata.Treasure:
			g.treasures++
		case leveldata.GuardSpawn:
			guardSpawns = append(guardSpawns, pos)
		}
	}

	top := g.height - 1
	for x := 0; x < g.width; x++ {
		pos := Pos{X: x, Y: top}
		if !tagged[pos] && g.tiles[g.index(pos)] == None {
			g.respawns = append(g.respawns, pos)
		}
	}
	if len(g.respawns) == 0 {
		g.respawns = guardSpawns
	}
	return g, nil
}

// KindOf maps a document tag to its traversability class.
func KindOf(t leveldata.TileType) Kind {
	switch t {
	case leveldata.Brick, leveldata.SolidBrick:
		return Blocker
	case leveldata.Ladder:
		return Ladder
	case leveldata.Rope:
		return Rope
	}
	return None
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Revision increases on every mutation. Derived data (the nav mesh) compares
// against it to detect staleness.
func (g *Grid) Revision() uint64 { return g.revision }

func (g *Grid) InBounds(pos Pos) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

func (g *Grid) index(pos Pos) int {
	return pos.Y*g.width + pos.X
}

func (g *Grid) kind(pos Pos) Kind {
	if !g.InBounds(pos) {
		// open sky above, solid everywhere else
		if pos.Y >= g.height {
			return None
		}
		return Blocker
	}
	if _, ok := g.overrides[pos]; ok {
		return Blocker
	}
	return g.tiles[g.index(pos)]
}

// At returns the effective tile at pos.
func (g *Grid) At(pos Pos) Tile {
	t := Tile{Pos: pos, Kind: g.kind(pos), Entity: donburi.Null}
	if g.InBounds(pos) {
		t.Entity = g.entities[g.index(pos)]
	}
	return t
}

// Around returns the neighbourhood of pos. Nothing is cached.
func (g *Grid) Around(pos Pos) TilesAround {
	return TilesAround{
		Above:      g.At(pos.Add(Up)),
		Below:      g.At(pos.Add(Down)),
		Left:       g.At(pos.Add(Left)),
		Right:      g.At(pos.Add(Right)),
		On:         g.At(pos),
		BelowLeft:  g.At(pos.Add(Down).Add(Left)),
		BelowRight: g.At(pos.Add(Down).Add(Right)),
	}
}

// Set permanently changes the base kind of a cell.
func (g *Grid) Set(pos Pos, kind Kind) {
	if !g.InBounds(pos) {
		return
	}
	i := g.index(pos)
	if g.tiles[i] == kind {
		return
	}
	g.tiles[i] = kind
	g.revision++
}

// SetOverride layers a temporary block over a cell. The cell reads Blocker
// regardless of kind or of its base kind until ResetOverride.
func (g *Grid) SetOverride(pos Pos, kind Kind) {
	if !g.InBounds(pos) {
		return
	}
	g.overrides[pos] = kind
	g.revision++
}

func (g *Grid) ResetOverride(pos Pos) {
	if _, ok := g.overrides[pos]; !ok {
		return
	}
	delete(g.overrides, pos)
	g.revision++
}

func (g *Grid) HasOverride(pos Pos) bool {
	_, ok := g.overrides[pos]
	return ok
}

func (g *Grid) SetEntity(pos Pos, e donburi.Entity) {
	if g.InBounds(pos) {
		g.entities[g.index(pos)] = e
	}
}

func (g *Grid) ClearEntity(pos Pos) {
	g.SetEntity(pos, donburi.Null)
}

func (g *Grid) TreasureCount() int { return g.treasures }

// Respawns returns a copy of the precomputed respawn cells.
func (g *Grid) Respawns() []Pos {
	return append([]Pos(nil), g.respawns...)
}

// RandomRespawn picks uniformly among the respawn cells.
func (g *Grid) RandomRespawn() (Pos, bool) {
	if len(g.respawns) == 0 {
		return Pos{}, false
	}
	return g.respawns[g.rng.Intn(len(g.respawns))], true
}
