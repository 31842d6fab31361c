package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/glowswarm/config"
	"github.com/lafriks/go-tiled"
)

const (
	arenaGroup = "Arena"
	boundsName = "bounds"
	spawnGroup = "PlayerSpawn"
)

var (
	ErrNoBounds       = errors.New("arena bounds object not found")
	ErrInvalidBounds  = errors.New("arena bounds are degenerate")
	ErrSpawnOutOfArea = errors.New("player spawn lies outside the arena")
)

// LoadArena parses a TMX file from fsys. The map must contain an object group
// "Arena" with a rectangle named "bounds"; an optional "PlayerSpawn" group
// supplies the start point, otherwise the arena centre is used.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaLayout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &ArenaLayout{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	halfW := float64(layout.MapWidth) / 2
	halfH := float64(layout.MapHeight) / 2

	// TMX pixels are y down from the top-left corner.
	toWorld := func(x, y float64) (float64, float64) {
		return x - halfW, halfH - y
	}

	var foundBounds, foundSpawn bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case arenaGroup:
			for _, o := range og.Objects {
				if o.Name != boundsName {
					continue
				}
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("%s: %w (%vx%v)", tmxPath, ErrInvalidBounds, o.Width, o.Height)
				}
				layout.Left, layout.Top = toWorld(o.X, o.Y)
				layout.Right, layout.Bottom = toWorld(o.X+o.Width, o.Y+o.Height)
				foundBounds = true
			}
		case spawnGroup:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			layout.SpawnX, layout.SpawnY = toWorld(o.X, o.Y)
			foundSpawn = true
		}
	}

	if !foundBounds {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoBounds)
	}
	if !foundSpawn {
		layout.SpawnX = (layout.Left + layout.Right) / 2
		layout.SpawnY = (layout.Bottom + layout.Top) / 2
	}
	if layout.SpawnX < layout.Left || layout.SpawnX > layout.Right ||
		layout.SpawnY < layout.Bottom || layout.SpawnY > layout.Top {
		return nil, fmt.Errorf("%s: %w (%v, %v)", tmxPath, ErrSpawnOutOfArea, layout.SpawnX, layout.SpawnY)
	}

	return layout, nil
}

// Apply copies the layout into the global arena and player configuration.
func (l *ArenaLayout) Apply() {
	cfg.Arena.Left = l.Left
	cfg.Arena.Right = l.Right
	cfg.Arena.Bottom = l.Bottom
	cfg.Arena.Top = l.Top
	cfg.Player.StartX = l.SpawnX
	cfg.Player.StartY = l.SpawnY
}
