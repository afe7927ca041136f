package entity

import (
	"fmt"
	"log"
	"path/filepath"
	"sync/atomic"

	"github.com/milk9111/tilemap/assets"
	"github.com/milk9111/tilemap/ecs"
	"github.com/milk9111/tilemap/ecs/component"
	"github.com/milk9111/tilemap/levels"
	"github.com/milk9111/tilemap/tilemap"
)

var nextMapID atomic.Uint64

// Tilemap records what InitialiseTilemap created so the map can be torn down
// or reloaded as a unit.
type Tilemap struct {
	ID       uint64
	Path     string
	Entities []ecs.Entity
	Mesh     assets.Handle
	Texture  assets.Handle
	Layers   []string
}

// InitialiseTilemap loads mapFile from baseDir, compiles every layer and
// spawns one drawable entity per layer. On failure nothing is added to the
// world: the error is logged and returned.
func InitialiseTilemap(w *ecs.World, loader *assets.Loader, progress *assets.ProgressCounter, baseDir, mapFile string) (*Tilemap, error) {
	path := filepath.Join(baseDir, mapFile)
	parsed, err := levels.Load(path)
	if err != nil {
		log.Printf("tilemap: %v", err)
		return nil, err
	}
	tm, err := SpawnTilemap(w, loader, progress, parsed, filepath.Dir(path))
	if err != nil {
		log.Printf("tilemap: %s: %v", path, err)
		return nil, err
	}
	return tm, nil
}

// SpawnTilemap compiles an already parsed map. Tileset images are resolved
// against baseDir.
func SpawnTilemap(w *ecs.World, loader *assets.Loader, progress *assets.ProgressCounter, parsed *levels.ParsedMap, baseDir string) (*Tilemap, error) {
	desc, err := parsed.Descriptor()
	if err != nil {
		return nil, err
	}
	ts, err := parsed.TileSetInfo()
	if err != nil {
		return nil, err
	}
	compiled, err := tilemap.CompileMap(desc, ts)
	if err != nil {
		return nil, err
	}

	tm := &Tilemap{
		ID:   nextMapID.Add(1),
		Path: parsed.Path,
		Mesh: loader.LoadMeshFromData(compiled.Mesh),
	}
	tm.Texture = loader.LoadTexture(assets.ResolvePath(baseDir, ts.Image), progress)

	for _, layer := range compiled.Layers {
		e, err := spawnLayer(w, tm, layer)
		if err != nil {
			DestroyTilemap(w, loader, tm)
			return nil, fmt.Errorf("layer %q: %w", layer.Name, err)
		}
		tm.Entities = append(tm.Entities, e)
		tm.Layers = append(tm.Layers, layer.Name)
	}
	return tm, nil
}

func spawnLayer(w *ecs.World, tm *Tilemap, layer *tilemap.CompiledLayer) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Translation: layer.Translation,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.MeshRefComponent.Kind(), &component.MeshRef{Handle: tm.Mesh}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("add mesh: %w", err)
	}
	if err := ecs.Add(w, e, component.MaterialComponent.Kind(), &component.Material{Albedo: tm.Texture}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("add material: %w", err)
	}
	if err := ecs.Add(w, e, component.TilemapDimensionsComponent.Kind(), &component.TilemapDimensions{
		Width:  layer.WorldSize.Width,
		Height: layer.WorldSize.Height,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("add tilemap dimensions: %w", err)
	}
	if err := ecs.Add(w, e, component.TilesheetDimensionsComponent.Kind(), &component.TilesheetDimensions{
		Width:  layer.TilesheetSize.Width,
		Height: layer.TilesheetSize.Height,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("add tilesheet dimensions: %w", err)
	}
	if err := ecs.Add(w, e, component.TilemapLayerComponent.Kind(), &component.TilemapLayer{
		Name:  layer.Name,
		Tiles: layer.Tiles,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("add tilemap layer: %w", err)
	}
	if err := ecs.Add(w, e, component.TilemapOwnerComponent.Kind(), &component.TilemapOwner{MapID: tm.ID}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("add owner: %w", err)
	}
	return e, nil
}

// DestroyTilemap removes the map's entities and releases its mesh and texture.
func DestroyTilemap(w *ecs.World, loader *assets.Loader, tm *Tilemap) {
	if tm == nil {
		return
	}
	for _, e := range tm.Entities {
		ecs.DestroyEntity(w, e)
	}
	tm.Entities = nil
	if loader != nil {
		loader.Meshes.Release(tm.Mesh)
		loader.Textures.Release(tm.Texture)
	}
}

// ReloadTilemap loads the map again and swaps it in for old. When the new
// file fails to load, old is left untouched.
func ReloadTilemap(w *ecs.World, loader *assets.Loader, progress *assets.ProgressCounter, old *Tilemap, baseDir, mapFile string) (*Tilemap, error) {
	tm, err := InitialiseTilemap(w, loader, progress, baseDir, mapFile)
	if err != nil {
		return old, err
	}
	DestroyTilemap(w, loader, old)
	return tm, nil
}
