package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	// Speed is the fraction of the gap to the player closed per second.
	Speed float64
	Size  float64
	Wave  int // wave that spawned this enemy
}

var Enemy = donburi.NewComponentType[EnemyData]()
