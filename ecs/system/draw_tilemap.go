package system

import (
	"log"

	"github.com/milk9111/tilemap/assets"
	"github.com/milk9111/tilemap/ecs"
	"github.com/milk9111/tilemap/ecs/component"
	"github.com/milk9111/tilemap/ecs/render"
)

// Frame is the resource state a pass reads while drawing.
type Frame struct {
	Meshes   *assets.Storage[render.Mesh]
	Textures *assets.Storage[render.Texture]
	Defaults assets.MaterialDefaults
}

// Pass draws part of the world onto a device and reports how many draw calls
// it issued.
type Pass interface {
	Run(w *ecs.World, frame Frame, dev render.Device) int
}

// DrawTilemapPass draws every tilemap layer whose name is LayerName.
type DrawTilemapPass struct {
	LayerName string
}

func NewDrawTilemapPass(layerName string) *DrawTilemapPass {
	return &DrawTilemapPass{LayerName: layerName}
}

func (p *DrawTilemapPass) Run(w *ecs.World, frame Frame, dev render.Device) int {
	if p == nil || w == nil || dev == nil {
		return 0
	}
	cam, _ := SelectCamera(w)

	draws := 0
	ecs.ForEach(w, component.TilemapLayerComponent.Kind(), func(e ecs.Entity, layer *component.TilemapLayer) {
		if layer.Name != p.LayerName {
			return
		}
		if drawLayer(w, e, layer, cam, frame, dev) {
			draws++
		}
	})
	return draws
}

// OrderedTilemapPass draws several layers in list order with a single scan of
// the world.
type OrderedTilemapPass struct {
	Layers []string
}

func NewOrderedTilemapPass(layers ...string) *OrderedTilemapPass {
	return &OrderedTilemapPass{Layers: layers}
}

func (p *OrderedTilemapPass) Run(w *ecs.World, frame Frame, dev render.Device) int {
	if p == nil || w == nil || dev == nil || len(p.Layers) == 0 {
		return 0
	}
	cam, _ := SelectCamera(w)

	type entry struct {
		e     ecs.Entity
		layer *component.TilemapLayer
	}
	buckets := make(map[string][]entry, len(p.Layers))
	for _, name := range p.Layers {
		buckets[name] = nil
	}
	ecs.ForEach(w, component.TilemapLayerComponent.Kind(), func(e ecs.Entity, layer *component.TilemapLayer) {
		if b, ok := buckets[layer.Name]; ok {
			buckets[layer.Name] = append(b, entry{e: e, layer: layer})
		}
	})

	draws := 0
	for _, name := range p.Layers {
		for _, it := range buckets[name] {
			if drawLayer(w, it.e, it.layer, cam, frame, dev) {
				draws++
			}
		}
		// A name listed twice is drawn once.
		delete(buckets, name)
	}
	return draws
}

func drawLayer(w *ecs.World, e ecs.Entity, layer *component.TilemapLayer, cam CameraView, frame Frame, dev render.Device) bool {
	meshRef, ok := ecs.Get(w, e, component.MeshRefComponent.Kind())
	if !ok || frame.Meshes == nil {
		return false
	}
	mesh, ok := frame.Meshes.Get(meshRef.Handle)
	if !ok {
		return false
	}
	tex, ok := layerTexture(w, e, frame)
	if !ok {
		return false
	}
	dims, ok := ecs.Get(w, e, component.TilemapDimensionsComponent.Kind())
	if !ok {
		return false
	}
	sheet, ok := ecs.Get(w, e, component.TilesheetDimensionsComponent.Kind())
	if !ok {
		return false
	}
	var model component.Transform
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		model = *t
	}

	if err := dev.UploadTiles(layer.Tiles.Cells()); err != nil {
		log.Printf("tilemap: layer %q: %v", layer.Name, err)
		return false
	}
	dev.BindTexture(tex)
	dev.SetUniforms(render.Uniforms{
		Proj:          cam.Projection,
		View:          cam.View,
		Model:         model.Matrix(),
		WorldSize:     [2]float32{float32(dims.Width), float32(dims.Height)},
		TilesheetSize: [2]float32{float32(sheet.Width), float32(sheet.Height)},
	})
	dev.Draw(mesh)
	return true
}

// layerTexture returns the layer's albedo, or the default albedo while the
// layer's own texture is still loading.
func layerTexture(w *ecs.World, e ecs.Entity, frame Frame) (render.Texture, bool) {
	if frame.Textures == nil {
		return nil, false
	}
	if mat, ok := ecs.Get(w, e, component.MaterialComponent.Kind()); ok {
		if tex, ok := frame.Textures.Get(mat.Albedo); ok {
			return tex, true
		}
	}
	return frame.Textures.Get(frame.Defaults.Albedo)
}
