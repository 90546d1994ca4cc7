// Package nav builds a walkability graph from a level grid and searches it
// with A*.
package nav

import "github.com/dakitten2358/loderunner/grid"

// Node is one walkable cell and the indices of the nodes reachable from it.
type Node struct {
	Pos   grid.Pos
	Links []int
}

// Mesh is a snapshot of a grid's walkable cells. It does not observe later
// grid mutations; compare Revision with the grid's to detect staleness.
type Mesh struct {
	Nodes    []Node
	index    map[grid.Pos]int
	revision uint64
}

type Options struct {
	// RequireFooting links an empty cell sideways only when the cell below
	// is a blocker or a ladder.
	RequireFooting bool
}

// Build creates one node per non-blocking cell, scanning rows bottom-up.
//
//   - None: below, then left/right (subject to RequireFooting)
//   - Rope: left, right, below
//   - Ladder: left, right, above, below
//
// Links to blocking or out-of-grid cells are dropped.
func Build(g *grid.Grid, opts Options) *Mesh {
	m := &Mesh{
		index:    make(map[grid.Pos]int),
		revision: g.Revision(),
	}

	raw := make([][]grid.Pos, 0, g.Width()*g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			pos := grid.Pos{X: x, Y: y}
			tiles := g.Around(pos)

			var links []grid.Pos
			add := func(t grid.Tile) {
				if t.Kind != grid.Blocker {
					links = append(links, t.Pos)
				}
			}

			switch tiles.On.Kind {
			case grid.Blocker:
				continue
			case grid.None:
				add(tiles.Below)
				footing := tiles.Below.Kind == grid.Blocker || tiles.Below.Kind == grid.Ladder
				if footing || !opts.RequireFooting {
					add(tiles.Left)
					add(tiles.Right)
				}
			case grid.Rope:
				add(tiles.Left)
				add(tiles.Right)
				add(tiles.Below)
			case grid.Ladder:
				add(tiles.Left)
				add(tiles.Right)
				add(tiles.Above)
				add(tiles.Below)
			}

			m.index[pos] = len(m.Nodes)
			m.Nodes = append(m.Nodes, Node{Pos: pos})
			raw = append(raw, links)
		}
	}

	for i, links := range raw {
		for _, p := range links {
			if j, ok := m.index[p]; ok {
				m.Nodes[i].Links = append(m.Nodes[i].Links, j)
			}
		}
	}

	return m
}

// IndexOf returns the node index for a cell.
func (m *Mesh) IndexOf(p grid.Pos) (int, bool) {
	i, ok := m.index[p]
	return i, ok
}

// Revision is the grid revision the mesh was built from.
func (m *Mesh) Revision() uint64 {
	return m.revision
}

// Stale reports whether g has been mutated since the mesh was built.
func (m *Mesh) Stale(g *grid.Grid) bool {
	return m == nil || m.revision != g.Revision()
}

// Linked reports whether there is a direct edge from a to b.
func (m *Mesh) Linked(a, b grid.Pos) bool {
	i, ok := m.index[a]
	if !ok {
		return false
	}
	for _, j := range m.Nodes[i].Links {
		if m.Nodes[j].Pos == b {
			return true
		}
	}
	return false
}
