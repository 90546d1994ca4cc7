package systems

import (
	"github.com/dakitten2358/loderunner/components"
	"github.com/dakitten2358/loderunner/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var overlapQuery = donburi.NewQuery(filter.Contains(components.Overlaps, components.Transform))

// UpdateOverlaps rebuilds every overlap list. Each pair is tested on both axes
// against the smaller of the two footprints, so a character never overlaps
// its same-row neighbour just because one of them is wide. O(n²) in the
// number of records.
func UpdateOverlaps(ecs *ecs.ECS) {
	var overlapEntries []*donburi.Entry
	overlapQuery.Each(ecs.World, func(e *donburi.Entry) {
		components.Overlaps.Get(e).Entities = components.Overlaps.Get(e).Entities[:0]
		overlapEntries = append(overlapEntries, e)
	})

	for i := 0; i < len(overlapEntries); i++ {
		a := overlapEntries[i]
		ao := components.Overlaps.Get(a)
		if !ao.Active {
			continue
		}
		ap := components.Transform.Get(a).Position

		for j := i + 1; j < len(overlapEntries); j++ {
			b := overlapEntries[j]
			bo := components.Overlaps.Get(b)
			if !bo.Active {
				continue
			}
			bp := components.Transform.Get(b).Position

			touchX, _ := gamemath.RangesTouch(ap.X, bp.X, min(ao.Width, bo.Width))
			touchY, _ := gamemath.RangesTouch(ap.Y, bp.Y, min(ao.Height, bo.Height))
			if touchX && touchY {
				ao.Entities = append(ao.Entities, b.Entity())
				bo.Entities = append(bo.Entities, a.Entity())
			}
		}
	}
}
