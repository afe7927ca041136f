package render

import (
	"errors"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/tilemap/tilemap"
)

var ErrTileBufferOverflow = errors.New("render: tile buffer exceeds capacity")

// Texture is an uploaded image the device can sample.
type Texture interface {
	Size() (width, height int)
}

// Mesh is an uploaded triangle list.
type Mesh interface {
	IndexCount() int
}

// Uniforms is the per-draw constant data of the tile shader.
type Uniforms struct {
	Proj  mgl32.Mat4
	View  mgl32.Mat4
	Model mgl32.Mat4
	// WorldSize is the map size in tiles.
	WorldSize [2]float32
	// TilesheetSize is the atlas size in tiles.
	TilesheetSize [2]float32
}

// Device receives the draw commands of one frame. Calls are made from the
// render thread only.
type Device interface {
	BindTexture(tex Texture)
	// UploadTiles copies one layer's encoded cells into the shader-visible tile
	// buffer. More than tilemap.Capacity cells is an error.
	UploadTiles(cells []tilemap.TileCell) error
	SetUniforms(u Uniforms)
	// Draw issues one draw call using the state set since the previous Draw.
	Draw(mesh Mesh)
}

// Backend creates GPU resources from CPU-side data.
type Backend interface {
	NewTexture(img image.Image) Texture
	NewMesh(mesh *tilemap.Mesh) Mesh
}
