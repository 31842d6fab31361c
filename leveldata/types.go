// Package leveldata parses arena layouts from Tiled maps.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// ArenaLayout is an arena read from a TMX map, in world units
// (y up, origin at the centre of the map).
type ArenaLayout struct {
	Name   string
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
	SpawnX float64
	SpawnY float64

	MapWidth  int
	MapHeight int
}
