package components

import "github.com/yohamta/donburi"

type GuardData struct {
	// Carrying is the treasure entity held by the guard, or donburi.Null.
	Carrying     donburi.Entity
	RespawnTimer float64
	Respawning   bool
}

var Guard = donburi.NewComponentType[GuardData]()
