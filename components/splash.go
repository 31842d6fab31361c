package components

import "github.com/yohamta/donburi"

type SplashData struct {
	Elapsed float64
}

var Splash = donburi.NewComponentType[SplashData]()
