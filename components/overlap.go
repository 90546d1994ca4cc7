package components

import "github.com/yohamta/donburi"

// OverlapsData is rebuilt every tick by the overlap pass. Inactive records
// (respawning guards, carried treasure) never overlap anything.
type OverlapsData struct {
	Entities []donburi.Entity
	Width    float64
	Height   float64
	Active   bool
}

func (o *OverlapsData) Contains(e donburi.Entity) bool {
	for _, other := range o.Entities {
		if other == e {
			return true
		}
	}
	return false
}

var Overlaps = donburi.NewComponentType[OverlapsData]()
