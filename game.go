package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilemap/assets"
	"github.com/milk9111/tilemap/config"
	"github.com/milk9111/tilemap/ecs"
	"github.com/milk9111/tilemap/ecs/entity"
	"github.com/milk9111/tilemap/ecs/render"
	"github.com/milk9111/tilemap/ecs/system"
)

type Game struct {
	cfg   *config.Config
	debug bool

	world    *ecs.World
	loader   *assets.Loader
	progress *assets.ProgressCounter
	device   *render.EbitenDevice
	frame    system.Frame
	pipeline *system.Pipeline
	camera   *system.CameraSystem
	tilemap  *entity.Tilemap
	watcher  *config.Watcher

	frames int
	draws  int
	paused bool

	overlay *Overlay
	pauseUI *ebitenui.UI
}

func NewGame(cfg *config.Config, debug bool) (*Game, error) {
	device, err := render.NewEbitenDevice()
	if err != nil {
		return nil, err
	}

	loader := assets.NewLoader(render.EbitenBackend{})
	g := &Game{
		cfg:      cfg,
		debug:    debug,
		world:    ecs.NewWorld(),
		loader:   loader,
		progress: &assets.ProgressCounter{},
		device:   device,
		frame: system.Frame{
			Meshes:   loader.Meshes,
			Textures: loader.Textures,
			Defaults: assets.NewMaterialDefaults(loader),
		},
		pipeline: system.PipelineFromLayers(cfg.Passes, cfg.Consolidated),
		camera:   system.NewCameraSystem(2),
	}

	if _, err := entity.NewCamera(g.world, cfg.Camera); err != nil {
		return nil, err
	}

	// A broken map leaves an empty scene; hot reload can still bring it back.
	g.tilemap, _ = entity.InitialiseTilemap(g.world, g.loader, g.progress, cfg.Map.Dir, cfg.Map.File)

	if cfg.HotReload {
		w, err := config.NewWatcher(cfg.Map.Dir)
		if err != nil {
			log.Printf("tilemap: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.overlay = NewOverlay()
	g.pauseUI = NewPauseUI(g, cfg.Window.Width, cfg.Window.Height)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if n := g.loader.Process(); n > 0 && g.debug {
		log.Printf("tilemap: uploaded %d textures", n)
	}
	g.drainWatcher()
	dx, dy := panInput()
	g.camera.Update(g.world, dx, dy)

	if g.debug {
		finished, total := g.progress.Progress()
		g.overlay.SetText(fmt.Sprintf("FPS: %.2f  draws: %d  assets: %d/%d  failed: %d",
			ebiten.ActualFPS(), g.draws, finished, total, g.progress.NumFailed()))
		g.overlay.Update()
	}
	return nil
}

func panInput() (dx, dy float32) {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	// World y grows upwards.
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy--
	}
	return dx, dy
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("tilemap: %s changed, reloading %s", path, g.cfg.Map.File)
			g.tilemap, _ = entity.ReloadTilemap(g.world, g.loader, g.progress, g.tilemap, g.cfg.Map.Dir, g.cfg.Map.File)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("tilemap: watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.device.Begin(screen)
	g.draws = g.pipeline.Run(g.world, g.frame, g.device)

	if g.debug {
		g.overlay.Draw(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.loader.Wait()
}
