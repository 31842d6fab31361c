package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/glowswarm/leveldata"
)

var (
	//go:embed maps/*.tmx
	mapFS embed.FS
)

// DefaultArena is the embedded arena map.
const DefaultArena = "maps/arena.tmx"

// LoadArena reads the embedded arena, or a TMX file on disk when path is set.
func LoadArena(path string) (*leveldata.ArenaLayout, error) {
	if path == "" {
		return leveldata.LoadArena(mapFS, DefaultArena)
	}
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	layout, err := leveldata.LoadArena(os.DirFS(dir), file)
	if err != nil {
		return nil, fmt.Errorf("arena override: %w", err)
	}
	return layout, nil
}
