package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Enemy     = donburi.NewTag().SetName("Enemy")
	EndScreen = donburi.NewTag().SetName("EndScreen")
)

// Resolv tags for contact broadphase
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
