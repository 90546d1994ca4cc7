package components

import "github.com/yohamta/donburi"

type BurnState int

const (
	NotBurning BurnState = iota
	StartingBurn
	Burning
	Burnt
	Rebuilding
)

func (s BurnState) String() string {
	switch s {
	case NotBurning:
		return "NotBurning"
	case StartingBurn:
		return "StartingBurn"
	case Burning:
		return "Burning"
	case Burnt:
		return "Burnt"
	case Rebuilding:
		return "Rebuilding"
	}
	return "Unknown"
}

// BurnableData is a brick that can be burned out of the grid and rebuilds
// itself. Elapsed runs from the trigger; the StartingBurn tick already counts.
type BurnableData struct {
	State   BurnState
	Elapsed float64
}

var Burnable = donburi.NewComponentType[BurnableData]()
