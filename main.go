package main

import (
	"flag"
	"log"

	"github.com/automoto/glowswarm/assets"
	"github.com/automoto/glowswarm/config"
	"github.com/automoto/glowswarm/fonts"
	"github.com/automoto/glowswarm/scenes"
	"github.com/automoto/glowswarm/sound"
	"github.com/automoto/glowswarm/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func loadFonts() error {
	if err := fonts.LoadFontWithSize(fonts.Body, goregular.TTF, 16); err != nil {
		return err
	}
	if err := fonts.LoadFontWithSize(fonts.Bold, gobold.TTF, 20); err != nil {
		return err
	}
	if err := fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 40); err != nil {
		return err
	}
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12); err != nil {
		return err
	}
	return fonts.LoadSource(goregular.TTF)
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay constants")
	arenaPath := flag.String("arena", "", "TMX file to use instead of the built-in arena")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "Random seed for enemy spawns (0 = time based)")
	flag.BoolVar(&config.Debug.SkipSplash, "skip-splash", false, "Start on the main menu")
	flag.Parse()

	layout, err := assets.LoadArena(*arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}
	layout.Apply()

	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning.Apply()
	}

	if err := loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile shaders, glow disabled: %v", err)
	}
	sound.Preload()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings := systems.LoadSettings()

	if err := ebiten.RunGame(scenes.NewDirector(settings)); err != nil {
		log.Fatal(err)
	}
}
