package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed float64
	Size  float64 // contact radius
}

var Player = donburi.NewComponentType[PlayerData]()
