package systems

import (
	"math"

	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/nav"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var targetQuery = donburi.NewQuery(filter.And(
	filter.Contains(components.Runner, components.GridTransform),
	filter.Not(filter.Contains(components.Killed)),
))

// RefreshNavMesh returns the level's navmesh, rebuilding it first when the
// grid has been mutated since the last build (bricks burnt or restored,
// guards wedged in holes).
func RefreshNavMesh(level *components.LevelData) *nav.Mesh {
	if level.NavMesh.Stale(level.Grid) {
		level.NavMesh = nav.Build(level.Grid, nav.Options{RequireFooting: cfg.Nav.RequireFooting})
	}
	return level.NavMesh
}

// nearestRunner returns the cell of the closest live runner.
func nearestRunner(w donburi.World, from grid.Pos) (grid.Pos, bool) {
	var (
		best     grid.Pos
		found    bool
		bestDist = math.Inf(1)
	)
	targetQuery.Each(w, func(e *donburi.Entry) {
		p := components.GridTransform.Get(e).Pos
		dist := nav.Distance(from, p)
		if dist < bestDist {
			bestDist = dist
			best = p
			found = true
		}
	})
	return best, found
}
