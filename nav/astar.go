package nav

import (
	"errors"
	"math"
	"sort"

	"github.com/dakitten2358/loderunner/grid"
)

var ErrPathNotFound = errors.New("nav: no path between cells")

// Distance is the Euclidean distance between two cells, in cells.
func Distance(a, b grid.Pos) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// FindPath searches the mesh from one cell to another. The returned path
// excludes from and ends with to; it is empty when from == to. Every edge
// costs 1 and the heuristic is the Euclidean distance in cells.
//
// The open list is kept as a slice, stably sorted by f-score each iteration,
// with the head removed by swapping in the last element. This fixes the
// tie-break order, so equal-length routes always resolve the same way.
func (m *Mesh) FindPath(from, to grid.Pos) ([]grid.Pos, error) {
	start, ok := m.index[from]
	if !ok {
		return nil, ErrPathNotFound
	}

	n := len(m.Nodes)
	gScore := make([]float64, n)
	fScore := make([]float64, n)
	cameFrom := make([]int, n)
	open := make([]bool, n)
	for i := range gScore {
		gScore[i] = math.Inf(1)
		fScore[i] = math.Inf(1)
		cameFrom[i] = -1
	}
	gScore[start] = 0
	fScore[start] = Distance(from, to)

	openSet := []int{start}
	open[start] = true

	for len(openSet) > 0 {
		sort.SliceStable(openSet, func(a, b int) bool {
			return fScore[openSet[a]] < fScore[openSet[b]]
		})

		current := openSet[0]
		last := len(openSet) - 1
		openSet[0] = openSet[last]
		openSet = openSet[:last]
		open[current] = false

		if m.Nodes[current].Pos == to {
			return m.reconstruct(cameFrom, current), nil
		}

		for _, next := range m.Nodes[current].Links {
			tentative := gScore[current] + 1
			if tentative < gScore[next] {
				cameFrom[next] = current
				gScore[next] = tentative
				fScore[next] = tentative + Distance(m.Nodes[next].Pos, to)
				if !open[next] {
					openSet = append(openSet, next)
					open[next] = true
				}
			}
		}
	}

	return nil, ErrPathNotFound
}

func (m *Mesh) reconstruct(cameFrom []int, goal int) []grid.Pos {
	var path []grid.Pos
	for c := goal; cameFrom[c] != -1; c = cameFrom[c] {
		path = append(path, m.Nodes[c].Pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
