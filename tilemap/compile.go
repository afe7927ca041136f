package tilemap

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zyedidia/generic/mapset"
)

// TileLayer is one named grid of raw tile identifiers. 0 is an empty cell; any
// other value is a 1-based index into the tileset atlas.
type TileLayer struct {
	Name  string
	Tiles [][]uint32
}

// TileMapDescriptor is a parsed map: its size in tiles, tile size in pixels and
// layers in file order.
type TileMapDescriptor struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Layers     []TileLayer
}

// PixelSize returns the map extent in pixels.
func (d TileMapDescriptor) PixelSize() (w, h int) {
	return d.Width * d.TileWidth, d.Height * d.TileHeight
}

// Validate checks that every layer matches the map size and that layer names
// are unique.
func (d TileMapDescriptor) Validate() error {
	if d.Width <= 0 || d.Height <= 0 || d.TileWidth <= 0 || d.TileHeight <= 0 {
		return fmt.Errorf("%w: map %dx%d, tile %dx%d", ErrInvalidDimensions, d.Width, d.Height, d.TileWidth, d.TileHeight)
	}
	names := mapset.New[string]()
	for _, layer := range d.Layers {
		if names.Has(layer.Name) {
			return fmt.Errorf("%w: %q", ErrDuplicateLayer, layer.Name)
		}
		names.Put(layer.Name)
		if err := d.checkGrid(layer); err != nil {
			return err
		}
	}
	return nil
}

func (d TileMapDescriptor) checkGrid(layer TileLayer) error {
	if len(layer.Tiles) != d.Height {
		return fmt.Errorf("%w: layer %q has %d rows, want %d", ErrGridMismatch, layer.Name, len(layer.Tiles), d.Height)
	}
	for y, row := range layer.Tiles {
		if len(row) != d.Width {
			return fmt.Errorf("%w: layer %q row %d has %d cells, want %d", ErrGridMismatch, layer.Name, y, len(row), d.Width)
		}
	}
	return nil
}

// Size2 is a width/height pair measured in tiles.
type Size2 struct {
	Width  int
	Height int
}

// Vec2 returns the size as the float pair uploaded to the shader.
func (s Size2) Vec2() [2]float32 {
	return [2]float32{float32(s.Width), float32(s.Height)}
}

// CompiledLayer is everything the draw pass needs for one layer. It is built
// once when the map loads and is read-only afterwards.
type CompiledLayer struct {
	Name string
	// Mesh is shared with every other layer of the same map.
	Mesh *Mesh
	// Material is the tileset image path the layer samples.
	Material    string
	Translation mgl32.Vec3
	Tiles       EncodedTileBuffer

	WorldSize     Size2
	TilesheetSize Size2
}

// Model returns the layer's local-to-world matrix.
func (l *CompiledLayer) Model() mgl32.Mat4 {
	return mgl32.Translate3D(l.Translation.X(), l.Translation.Y(), l.Translation.Z())
}

// CompileLayer encodes one layer against the tileset and packages it with the
// shared mesh. The quad is moved by half the map's pixel size so the map
// covers the positive quadrant with its bottom-left corner at the origin.
func CompileLayer(desc TileMapDescriptor, layer TileLayer, ts TileSetInfo, mesh *Mesh) (*CompiledLayer, error) {
	cols, rows, err := ts.Grid()
	if err != nil {
		return nil, &CompileError{Layer: layer.Name, Err: err}
	}
	if err := desc.checkGrid(layer); err != nil {
		return nil, &CompileError{Layer: layer.Name, Err: err}
	}
	tiles, err := EncodeLayer(layer.Tiles, cols, rows)
	if err != nil {
		return nil, &CompileError{Layer: layer.Name, Err: err}
	}

	pw, ph := desc.PixelSize()
	return &CompiledLayer{
		Name:          layer.Name,
		Mesh:          mesh,
		Material:      ts.Image,
		Translation:   mgl32.Vec3{float32(pw) / 2, float32(ph) / 2, 0},
		Tiles:         tiles,
		WorldSize:     Size2{Width: desc.Width, Height: desc.Height},
		TilesheetSize: Size2{Width: cols, Height: rows},
	}, nil
}

// CompiledMap is the result of compiling every layer of one map.
type CompiledMap struct {
	Mesh    *Mesh
	TileSet TileSetInfo
	Layers  []*CompiledLayer
}

// CompileMap validates the descriptor, builds the shared mesh and compiles every
// layer. It returns either all layers or an error, never a partial set.
func CompileMap(desc TileMapDescriptor, ts TileSetInfo) (*CompiledMap, error) {
	if _, _, err := ts.Grid(); err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if desc.Width*desc.Height > Capacity {
		return nil, fmt.Errorf("%w: %dx%d map has %d cells, limit is %d",
			ErrCapacityExceeded, desc.Width, desc.Height, desc.Width*desc.Height, Capacity)
	}

	mesh, err := GeneratePlane(desc.TileWidth, desc.TileHeight, desc.Width, desc.Height)
	if err != nil {
		return nil, err
	}

	out := &CompiledMap{Mesh: mesh, TileSet: ts, Layers: make([]*CompiledLayer, 0, len(desc.Layers))}
	for _, layer := range desc.Layers {
		compiled, err := CompileLayer(desc, layer, ts, mesh)
		if err != nil {
			return nil, err
		}
		out.Layers = append(out.Layers, compiled)
	}
	return out, nil
}
