package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is an entity position in world units (y up, arena centre at origin).
type TransformData struct {
	Position math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()
