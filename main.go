package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilemap/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "config file in config/ (or an absolute path)")
	mapPath := flag.String("map", "", "map file to load, overriding the config")
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *mapPath != "" {
		cfg.Map.Dir, cfg.Map.File = filepath.Split(*mapPath)
		if cfg.Map.Dir == "" {
			cfg.Map.Dir = "."
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(cfg, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
